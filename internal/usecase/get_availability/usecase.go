package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/engine/availability"
	"github.com/m04kA/SMC-ZoneBooking/internal/engine/slots"
)

// UseCase use case для получения свободного времени и слотов
type UseCase struct {
	settingsRepo    SettingsRepository
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	metrics         MetricsRecorder
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(
	settingsRepo SettingsRepository,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo:    settingsRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
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

// Execute вычисляет доступность заново на каждый запрос, без кэша.
// Диапазон обрезается окном записи [сегодня, сегодня + window_days]
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: from=%s, to=%s, staff=%v, zone=%v, mode=%q, form=%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat),
		derefID(req.StaffID), derefID(req.ZoneID), req.Mode, req.Form)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}
	if uc.metrics != nil {
		uc.metrics.RecordAvailabilityRequest(string(req.Form))
	}

	now := uc.timeProvider.Now()

	// 2. Настройки
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 3. Окно записи
	today := domain.DateOf(now, uc.location)
	from := maxTime(req.From, today)
	to := minTime(req.To, today.AddDate(0, 0, settings.Window()+1))
	resp := &Response{From: from, To: to, Form: req.Form, Mode: req.Mode,
		Intervals: []domain.FreeInterval{}, Slots: []domain.SlotCandidate{}}
	if !from.Before(to) {
		uc.logger.Info("GetAvailability: range outside booking window of %d days", settings.Window())
		return resp, nil
	}

	// 4. Зона
	if req.ZoneID != nil {
		zone, err := uc.scheduleRepo.GetZone(ctx, *req.ZoneID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				uc.logger.Warn("GetAvailability: zone id=%d not found", *req.ZoneID)
				return nil, ErrZoneNotFound
			}
			uc.logger.Error("GetAvailability: failed to get zone id=%d: %v", *req.ZoneID, err)
			return nil, fmt.Errorf("%w: failed to get zone: %v", ErrInternal, err)
		}
		if err := checkModeZone(req.Mode, zone); err != nil {
			uc.logger.Warn("GetAvailability: %v", err)
			return nil, err
		}
	}

	// 5. Сотрудники
	staffIDs, err := uc.staffIDs(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}
	if len(staffIDs) == 0 {
		return resp, nil
	}

	// 6. Расписание и встречи
	sched, err := uc.loadSchedule(ctx, req.StaffID, from, to)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	rangeStart, _ := domain.DayBounds(from, uc.location)
	rangeEnd, _ := domain.DayBounds(to, uc.location)
	appts, err := uc.appointmentRepo.List(ctx, domain.AppointmentFilter{
		StaffIDs: staffIDs,
		From:     &rangeStart,
		To:       &rangeEnd,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 7. Свободное время по каждому сотруднику
	var free []domain.FreeInterval
	for _, staffID := range staffIDs {
		days := availability.Expand(availability.EligibilityInput{
			StaffID:     staffID,
			From:        from,
			To:          to,
			Location:    uc.location,
			ZoneID:      req.ZoneID,
			Assignments: sched.assignments,
			WeeklyRules: sched.rules,
			Exceptions:  sched.exceptions,
		})
		merged := availability.Merge(staffID, days, availability.AppointmentIntervals(staffID, appts))
		free = append(free, availability.Flatten(merged)...)
	}

	if req.Form == FormMerged {
		resp.Intervals = append(resp.Intervals, free...)
		uc.logger.Info("GetAvailability: %d free intervals for %d staff", len(resp.Intervals), len(staffIDs))
		return resp, nil
	}

	// 8. Слоты
	params := slots.ParamsFromSettings(settings, req.Mode, now, req.ZoneID)
	resp.Slots = append(resp.Slots, slots.Collect(free, params)...)
	uc.logger.Info("GetAvailability: %d slot candidates for %d staff", len(resp.Slots), len(staffIDs))

	return resp, nil
}

func (uc *UseCase) staffIDs(ctx context.Context, staffID *int64) ([]int64, error) {
	if staffID != nil {
		if _, err := uc.scheduleRepo.GetStaff(ctx, *staffID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				uc.logger.Warn("GetAvailability: staff id=%d not found", *staffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("GetAvailability: failed to get staff id=%d: %v", *staffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		return []int64{*staffID}, nil
	}

	staff, err := uc.scheduleRepo.ListStaff(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	ids := make([]int64, 0, len(staff))
	for _, s := range staff {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

type schedule struct {
	assignments []*domain.StaffZoneAssignment
	rules       []*domain.WeeklyRule
	exceptions  []*domain.DateException
}

func (uc *UseCase) loadSchedule(ctx context.Context, staffID *int64, from, to time.Time) (*schedule, error) {
	assignments, err := uc.scheduleRepo.ListAssignments(ctx, domain.ScheduleFilter{StaffID: staffID})
	if err != nil {
		return nil, err
	}
	rules, err := uc.scheduleRepo.ListRules(ctx, domain.ScheduleFilter{})
	if err != nil {
		return nil, err
	}
	last := to.AddDate(0, 0, -1)
	exceptions, err := uc.scheduleRepo.ListExceptions(ctx, domain.ScheduleFilter{From: &from, To: &last})
	if err != nil {
		return nil, err
	}
	return &schedule{assignments: assignments, rules: rules, exceptions: exceptions}, nil
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func derefID(id *int64) interface{} {
	if id == nil {
		return "any"
	}
	return *id
}
