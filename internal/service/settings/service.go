package settings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/settings/models"
)

// Service сервис для работы с настройками бронирования
type Service struct {
	settingsRepo SettingsRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Get возвращает текущие настройки
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}
	return models.FromDomainSettings(settings), nil
}

// Update применяет переданные ключи целиком или не применяет ни одного
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	keys := make([]string, 0, len(req.Values))
	for key := range req.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	s.logger.Info("Update: keys=%v", keys)

	// 1. Валидируем входные данные
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no settings given", ErrInvalidInput)
	}
	var probe domain.Settings
	for _, key := range keys {
		if err := probe.Set(key, req.Values[key]); err != nil {
			s.logger.Warn("Update: validation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	var result *domain.Settings
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Сохраняем ключи
		for _, key := range keys {
			if err := s.settingsRepo.Upsert(txCtx, key, req.Values[key]); err != nil {
				return err
			}
		}

		// 3. Перечитываем итоговые настройки
		var err error
		result, err = s.settingsRepo.Get(txCtx)
		if err != nil {
			return err
		}
		return result.Validate()
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			s.logger.Warn("Update: rejected: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("Update: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: failed to save settings: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated %d settings", len(keys))
	return models.FromDomainSettings(result), nil
}
