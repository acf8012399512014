package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/events"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/sqlutil"
	"github.com/m04kA/SMC-ZoneBooking/pkg/keylock"
)

// Результаты для метрики bookings_total
const (
	resultCreated  = "created"
	resultReplayed = "replayed"
	resultRejected = "rejected"
	resultConflict = "conflict"
	resultError    = "error"
)

// UseCase use case для создания встречи
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	locker          StaffLocker
	cache           IdempotencyCache
	publisher       EventPublisher
	metrics         MetricsRecorder
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	locker StaffLocker,
	cache IdempotencyCache,
	publisher EventPublisher,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		settingsRepo:    settingsRepo,
		txManager:       txManager,
		locker:          locker,
		cache:           cache,
		publisher:       publisher,
		metrics:         metrics,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания встречи.
// Запись сериализуется блокировкой сотрудников и сериализуемой транзакцией
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: start=%s, end=%s, staff=%v, zone=%v/%q, mode=%s, key=%q",
		req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339),
		derefID(req.StaffID), derefID(req.ZoneID), req.ZoneName, req.Mode, req.IdempotencyKey)

	resp, err := uc.execute(ctx, req)
	uc.recordBooking(req.Mode, resp, err)
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Повтор запроса с тем же ключом
	fp, err := fingerprint(req)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to fingerprint request: %v", err)
		return nil, fmt.Errorf("%w: fingerprint: %v", ErrInternal, err)
	}
	existing, err := uc.replay(ctx, req.IdempotencyKey, fp)
	if err != nil {
		uc.logger.Warn("CreateBooking: idempotency check failed for key=%q: %v", req.IdempotencyKey, err)
		return nil, err
	}
	if existing != nil {
		uc.logger.Info("CreateBooking: replaying appointment id=%d for key=%q", existing.ID, req.IdempotencyKey)
		return &Response{Appointment: existing, Replayed: true}, nil
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Настройки, зона и сотрудники, которые работают в это время
	bc, err := uc.prepare(ctx, req, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: request rejected: %v", err)
		return nil, err
	}

	// 5. Блокируем календари кандидатов
	lockStart := time.Now()
	unlock, err := uc.locker.Acquire(ctx, bc.candidates...)
	if err != nil {
		uc.recordLockWait("timeout", time.Since(lockStart))
		if errors.Is(err, keylock.ErrTimeout) {
			uc.logger.Warn("CreateBooking: lock timeout for staff %v: %v", bc.candidates, err)
			return nil, fmt.Errorf("%w: %v", ErrBusy, err)
		}
		return nil, fmt.Errorf("%w: acquire lock: %v", ErrInternal, err)
	}
	defer unlock()
	uc.recordLockWait("acquired", time.Since(lockStart))

	var (
		result *domain.Appointment
		record domain.IdempotencyRecord
	)

	// 6. Проверка правил и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Встречи дня с блокировкой строк, зона, правила
		p, err := uc.evaluate(txCtx, bc)
		if err != nil {
			return err
		}

		// 6.2. Создаем встречу
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			Start:          bc.start,
			End:            bc.end,
			ZoneID:         p.zoneID,
			StaffID:        p.staffID,
			MeetingMode:    bc.mode,
			ClientName:     req.ClientName,
			ClientEmail:    req.ClientEmail,
			ClientPhone:    req.ClientPhone,
			Summary:        req.Summary,
			Notes:          req.Notes,
			RestaurantName: req.RestaurantName,
			City:           req.City,
			Attendees:      req.Attendees,
			IdempotencyKey: req.IdempotencyKey,
		})
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return fmt.Errorf("%w: %v", ErrSlotTaken, err)
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 6.3. Сохраняем ключ идемпотентности
		record = domain.IdempotencyRecord{Key: req.IdempotencyKey, Fingerprint: fp, AppointmentID: created.ID}
		if err := uc.appointmentRepo.SaveIdempotency(txCtx, &record); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return fmt.Errorf("%w: %v", ErrSlotTaken, err)
			}
			return fmt.Errorf("%w: failed to save idempotency key: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if sqlutil.IsSerializationFailure(err) {
			err = fmt.Errorf("%w: %v", ErrSlotTaken, err)
		}
		uc.logger.Warn("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d, staff=%d, zone=%d",
		result.ID, result.StaffID, result.ZoneID)

	// 7. После коммита: кэш ключа и событие
	uc.cache.Add(record.Key, record)
	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.TypeBookingCreated, result, now)); err != nil {
		uc.logger.Error("CreateBooking: failed to publish event for appointment id=%d: %v", result.ID, err)
	}

	return &Response{Appointment: result}, nil
}

// Preflight выполняет те же проверки, что и Execute, но ничего не записывает
func (uc *UseCase) Preflight(ctx context.Context, req *Request) (*PreflightResponse, error) {
	uc.logger.Info("PreflightBooking: start=%s, staff=%v, mode=%s",
		req.Start.Format(time.RFC3339), derefID(req.StaffID), req.Mode)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PreflightBooking: validation failed: %v", err)
		return nil, err
	}

	bc, err := uc.prepare(ctx, req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Info("PreflightBooking: rejected: %v", err)
		return nil, err
	}

	p, err := uc.evaluate(ctx, bc)
	if err != nil {
		uc.logger.Info("PreflightBooking: rejected: %v", err)
		return nil, err
	}

	return &PreflightResponse{
		Start:      bc.start,
		End:        bc.end,
		StaffID:    p.staffID,
		ZoneID:     p.zoneID,
		Zones:      p.resolution.Zones,
		Locked:     p.resolution.Locked,
		LockReason: p.resolution.Reason,
	}, nil
}

func (uc *UseCase) recordBooking(mode domain.MeetingMode, resp *Response, err error) {
	if uc.metrics == nil {
		return
	}
	result := resultCreated
	switch {
	case err == nil && resp.Replayed:
		result = resultReplayed
	case err == nil:
	case errors.Is(err, domain.ErrConflict):
		result = resultConflict
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrCapacity),
		errors.Is(err, domain.ErrSpacing), errors.Is(err, domain.ErrNotFound):
		result = resultRejected
	default:
		result = resultError
	}
	uc.metrics.RecordBooking(result, string(mode))
}

func (uc *UseCase) recordLockWait(result string, d time.Duration) {
	if uc.metrics != nil {
		uc.metrics.RecordLockWait(result, d)
	}
}

func derefID(id *int64) interface{} {
	if id == nil {
		return "any"
	}
	return *id
}
