package schedule

import (
	"context"

	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// ListAssignments возвращает назначения сотрудников на зоны
func (s *Service) ListAssignments(ctx context.Context, req *models.ListRequest) ([]*models.AssignmentResponse, error) {
	assignments, err := s.scheduleRepo.ListAssignments(ctx, req.ToDomainFilter())
	if err != nil {
		return nil, s.repoError("ListAssignments", err, ErrAssignmentNotFound)
	}

	result := make([]*models.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, models.FromDomainAssignment(a))
	}
	return result, nil
}

// GetAssignment возвращает назначение по ID
func (s *Service) GetAssignment(ctx context.Context, id int64) (*models.AssignmentResponse, error) {
	a, err := s.scheduleRepo.GetAssignment(ctx, id)
	if err != nil {
		return nil, s.repoError("GetAssignment", err, ErrAssignmentNotFound)
	}
	return models.FromDomainAssignment(a), nil
}

// CreateAssignment назначает сотрудника на зону в день недели
func (s *Service) CreateAssignment(ctx context.Context, req *models.AssignmentRequest) (*models.AssignmentResponse, error) {
	s.logger.Info("CreateAssignment: staff=%d, zone=%d, weekday=%d, %s-%s",
		req.StaffID, req.ZoneID, req.Weekday, req.StartTime, req.EndTime)

	a, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}

	created, err := s.scheduleRepo.CreateAssignment(ctx, a)
	if err != nil {
		return nil, s.repoError("CreateAssignment", err, ErrAssignmentNotFound)
	}
	return models.FromDomainAssignment(created), nil
}

// UpdateAssignment изменяет назначение
func (s *Service) UpdateAssignment(ctx context.Context, id int64, req *models.AssignmentRequest) (*models.AssignmentResponse, error) {
	s.logger.Info("UpdateAssignment: id=%d", id)

	a, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}
	a.ID = id

	updated, err := s.scheduleRepo.UpdateAssignment(ctx, a)
	if err != nil {
		return nil, s.repoError("UpdateAssignment", err, ErrAssignmentNotFound)
	}
	return models.FromDomainAssignment(updated), nil
}

// DeleteAssignment удаляет назначение
func (s *Service) DeleteAssignment(ctx context.Context, id int64) error {
	s.logger.Info("DeleteAssignment: id=%d", id)

	if err := s.scheduleRepo.DeleteAssignment(ctx, id); err != nil {
		return s.repoError("DeleteAssignment", err, ErrAssignmentNotFound)
	}
	return nil
}
