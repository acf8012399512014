package schedule

import (
	"context"

	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// ListExceptions возвращает исключения зон, в том числе за период
func (s *Service) ListExceptions(ctx context.Context, req *models.ListRequest) ([]*models.ExceptionResponse, error) {
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return nil, invalidRange()
	}

	exceptions, err := s.scheduleRepo.ListExceptions(ctx, req.ToDomainFilter())
	if err != nil {
		return nil, s.repoError("ListExceptions", err, ErrExceptionNotFound)
	}

	result := make([]*models.ExceptionResponse, 0, len(exceptions))
	for _, e := range exceptions {
		result = append(result, models.FromDomainException(e))
	}
	return result, nil
}

// GetException возвращает исключение по ID
func (s *Service) GetException(ctx context.Context, id int64) (*models.ExceptionResponse, error) {
	exc, err := s.scheduleRepo.GetException(ctx, id)
	if err != nil {
		return nil, s.repoError("GetException", err, ErrExceptionNotFound)
	}
	return models.FromDomainException(exc), nil
}

// CreateException создает исключение на дату
func (s *Service) CreateException(ctx context.Context, req *models.ExceptionRequest) (*models.ExceptionResponse, error) {
	s.logger.Info("CreateException: zone=%d, date=%s, %s-%s", req.ZoneID, req.Date, req.StartTime, req.EndTime)

	exc, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}

	created, err := s.scheduleRepo.CreateException(ctx, exc)
	if err != nil {
		return nil, s.repoError("CreateException", err, ErrExceptionNotFound)
	}
	return models.FromDomainException(created), nil
}

// UpdateException изменяет исключение
func (s *Service) UpdateException(ctx context.Context, id int64, req *models.ExceptionRequest) (*models.ExceptionResponse, error) {
	s.logger.Info("UpdateException: id=%d", id)

	exc, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}
	exc.ID = id

	updated, err := s.scheduleRepo.UpdateException(ctx, exc)
	if err != nil {
		return nil, s.repoError("UpdateException", err, ErrExceptionNotFound)
	}
	return models.FromDomainException(updated), nil
}

// DeleteException удаляет исключение
func (s *Service) DeleteException(ctx context.Context, id int64) error {
	s.logger.Info("DeleteException: id=%d", id)

	if err := s.scheduleRepo.DeleteException(ctx, id); err != nil {
		return s.repoError("DeleteException", err, ErrExceptionNotFound)
	}
	return nil
}
