package schedule

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// ListStaff возвращает всех сотрудников
func (s *Service) ListStaff(ctx context.Context) ([]*models.StaffResponse, error) {
	staff, err := s.scheduleRepo.ListStaff(ctx)
	if err != nil {
		return nil, s.repoError("ListStaff", err, ErrStaffNotFound)
	}

	result := make([]*models.StaffResponse, 0, len(staff))
	for _, st := range staff {
		result = append(result, models.FromDomainStaff(st))
	}
	return result, nil
}

// CreateStaff создает сотрудника
func (s *Service) CreateStaff(ctx context.Context, req *models.StaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("CreateStaff: name=%q", req.Name)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: staff name is required", ErrInvalidInput)
	}
	if req.Email != nil {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return nil, fmt.Errorf("%w: invalid email %q", ErrInvalidInput, *req.Email)
		}
	}

	created, err := s.scheduleRepo.CreateStaff(ctx, &domain.Staff{Name: name, Email: req.Email})
	if err != nil {
		return nil, s.repoError("CreateStaff", err, ErrStaffNotFound)
	}
	return models.FromDomainStaff(created), nil
}
