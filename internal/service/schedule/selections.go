package schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// ListSelections возвращает выборы зон сотрудников
func (s *Service) ListSelections(ctx context.Context, req *models.ListRequest) ([]*models.SelectionResponse, error) {
	selections, err := s.scheduleRepo.ListSelections(ctx, req.ToDomainFilter())
	if err != nil {
		return nil, s.repoError("ListSelections", err, ErrSelectionNotFound)
	}

	result := make([]*models.SelectionResponse, 0, len(selections))
	for _, sel := range selections {
		result = append(result, models.FromDomainSelection(sel))
	}
	return result, nil
}

// GetSelection возвращает выбор зоны сотрудника на дату
func (s *Service) GetSelection(ctx context.Context, staffID int64, date string) (*models.SelectionResponse, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return nil, invalid(err)
	}

	sel, err := s.scheduleRepo.GetSelection(ctx, staffID, day)
	if err != nil {
		return nil, s.repoError("GetSelection", err, ErrSelectionNotFound)
	}
	return models.FromDomainSelection(sel), nil
}

// SetSelection фиксирует физическую зону сотрудника на день
func (s *Service) SetSelection(ctx context.Context, req *models.SelectionRequest) (*models.SelectionResponse, error) {
	s.logger.Info("SetSelection: staff=%d, date=%s, zone=%d", req.StaffID, req.Date, req.ZoneID)

	// 1. Валидация входных данных
	day, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, invalid(err)
	}

	var result *domain.ZoneSelection
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Сотрудник и зона должны существовать
		if _, err := s.scheduleRepo.GetStaff(txCtx, req.StaffID); err != nil {
			return s.repoError("SetSelection", err, ErrStaffNotFound)
		}
		zone, err := s.scheduleRepo.GetZone(txCtx, req.ZoneID)
		if err != nil {
			return s.repoError("SetSelection", err, ErrZoneNotFound)
		}
		if zone.IsVisio() {
			return fmt.Errorf("%w: the %q zone cannot be selected for a day", ErrInvalidInput, domain.VisioZoneName)
		}

		// 3. Сохраняем выбор
		result, err = s.scheduleRepo.UpsertSelection(txCtx, &domain.ZoneSelection{StaffID: req.StaffID, Date: day, ZoneID: req.ZoneID})
		if err != nil {
			return s.repoError("SetSelection", err, ErrSelectionNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return models.FromDomainSelection(result), nil
}

// DeleteSelection снимает выбор зоны сотрудника на дату
func (s *Service) DeleteSelection(ctx context.Context, staffID int64, date string) error {
	s.logger.Info("DeleteSelection: staff=%d, date=%s", staffID, date)

	day, err := models.ParseDate(date)
	if err != nil {
		return invalid(err)
	}
	if err := s.scheduleRepo.DeleteSelection(ctx, staffID, day); err != nil {
		return s.repoError("DeleteSelection", err, ErrSelectionNotFound)
	}
	return nil
}
