package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/events"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/bookings/models"
)

// Service сервис для работы со встречами
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         MetricsRecorder
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса встреч. metrics может быть nil
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает встречу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt, s.location), nil
}

// List получает встречи за период, опционально по сотруднику
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := "List: fetching appointments"
	if req.From != nil && req.To != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.From.Format(time.RFC3339), req.To.Format(time.RFC3339))
	}
	if req.StaffID != nil {
		logMsg += fmt.Sprintf(", staff=%d", *req.StaffID)
	}
	s.logger.Info(logMsg)

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("List: invalid time range")
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidTimeRange)
	}
	if req.StaffID != nil && *req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts, s.location), nil
}

// Cancel отменяет встречу безусловно: запись удаляется, её ключ идемпотентности освобождается
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	var cancelled *domain.Appointment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.appointmentRepo.Delete(txCtx, id); err != nil {
			return err
		}
		cancelled = appt
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.RecordBooking("cancelled", string(cancelled.MeetingMode))
	}
	event := events.NewBookingEvent(events.TypeBookingCancelled, cancelled, s.timeProvider.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Cancel: failed to publish event for appointment id=%d: %v", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}
