package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// Service сервис администрирования расписания
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// ListZones возвращает все зоны
func (s *Service) ListZones(ctx context.Context) ([]*models.ZoneResponse, error) {
	zones, err := s.scheduleRepo.ListZones(ctx)
	if err != nil {
		return nil, s.repoError("ListZones", err, ErrZoneNotFound)
	}

	result := make([]*models.ZoneResponse, 0, len(zones))
	for _, z := range zones {
		result = append(result, models.FromDomainZone(z))
	}
	return result, nil
}

// GetZone возвращает зону по ID
func (s *Service) GetZone(ctx context.Context, id int64) (*models.ZoneResponse, error) {
	zone, err := s.scheduleRepo.GetZone(ctx, id)
	if err != nil {
		return nil, s.repoError("GetZone", err, ErrZoneNotFound)
	}
	return models.FromDomainZone(zone), nil
}

// CreateZone создает зону
func (s *Service) CreateZone(ctx context.Context, req *models.ZoneRequest) (*models.ZoneResponse, error) {
	s.logger.Info("CreateZone: name=%q", req.Name)

	if err := validateZoneName(req.Name); err != nil {
		return nil, err
	}

	zone, err := s.scheduleRepo.CreateZone(ctx, &domain.Zone{Name: req.Name, Color: req.Color})
	if err != nil {
		return nil, s.repoError("CreateZone", err, ErrZoneNotFound)
	}

	s.logger.Info("CreateZone: created zone id=%d", zone.ID)
	return models.FromDomainZone(zone), nil
}

// UpdateZone меняет имя и цвет зоны. Зону visio переименовать нельзя
func (s *Service) UpdateZone(ctx context.Context, id int64, req *models.ZoneRequest) (*models.ZoneResponse, error) {
	s.logger.Info("UpdateZone: id=%d, name=%q", id, req.Name)

	// 1. Валидация входных данных
	if err := validateZoneName(req.Name); err != nil {
		return nil, err
	}

	// 2. Проверяем существование зоны
	existing, err := s.scheduleRepo.GetZone(ctx, id)
	if err != nil {
		return nil, s.repoError("UpdateZone", err, ErrZoneNotFound)
	}
	renamed := &domain.Zone{ID: id, Name: req.Name}
	if existing.IsVisio() && !renamed.IsVisio() {
		return nil, fmt.Errorf("%w: the %q zone cannot be renamed", ErrInvalidInput, domain.VisioZoneName)
	}

	// 3. Обновляем
	zone, err := s.scheduleRepo.UpdateZone(ctx, &domain.Zone{ID: id, Name: req.Name, Color: req.Color})
	if err != nil {
		return nil, s.repoError("UpdateZone", err, ErrZoneNotFound)
	}
	return models.FromDomainZone(zone), nil
}

// DeleteZone удаляет зону, на которую ничего не ссылается
func (s *Service) DeleteZone(ctx context.Context, id int64) error {
	s.logger.Info("DeleteZone: id=%d", id)

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.scheduleRepo.GetZone(txCtx, id); err != nil {
			return s.repoError("DeleteZone", err, ErrZoneNotFound)
		}

		inUse, err := s.scheduleRepo.ZoneInUse(txCtx, id)
		if err != nil {
			return s.repoError("DeleteZone", err, ErrZoneNotFound)
		}
		if inUse {
			s.logger.Warn("DeleteZone: zone id=%d is in use", id)
			return fmt.Errorf("%w: zone %d", ErrZoneInUse, id)
		}

		if err := s.scheduleRepo.DeleteZone(txCtx, id); err != nil {
			return s.repoError("DeleteZone", err, ErrZoneNotFound)
		}
		return nil
	})
}

// repoError переводит ошибку репозитория в ошибку сервиса
func (s *Service) repoError(op string, err error, notFound error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("%w: %s", notFound, op)
	case errors.Is(err, domain.ErrValidation):
		return fmt.Errorf("%w: %s - %v", ErrInvalidInput, op, err)
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
	}
}

func validateZoneName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: zone name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxZoneNameLength {
		return fmt.Errorf("%w: zone name longer than %d characters", ErrInvalidInput, domain.MaxZoneNameLength)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
