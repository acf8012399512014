package get_zone_options

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/engine/zones"
)

// UseCase use case для определения зон слота
type UseCase struct {
	settingsRepo    SettingsRepository
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settingsRepo SettingsRepository,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo:    settingsRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		location:        location,
		logger:          logger,
	}
}

// Execute возвращает зоны, которые можно выбрать для слота сотрудника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetZoneOptions: staff=%d, start=%s, mode=%q", req.StaffID, req.Start.Format(time.RFC3339), req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetZoneOptions: validation failed: %v", err)
		return nil, err
	}

	// 2. Сотрудник
	if _, err := uc.scheduleRepo.GetStaff(ctx, req.StaffID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("GetZoneOptions: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetZoneOptions: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 3. Настройки и длительность
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetZoneOptions: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	end := req.End
	if end.IsZero() {
		end = req.Start.Add(time.Duration(settings.DurationFor(req.Mode)) * time.Minute)
	}

	// 4. Зоны, назначения, встречи дня и выбор зоны на день
	date := domain.DateOf(req.Start, uc.location)
	in, err := uc.loadInput(ctx, req.StaffID, date)
	if err != nil {
		uc.logger.Error("GetZoneOptions: failed to load data: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	in.Start = req.Start
	in.End = end
	in.Mode = req.Mode
	in.NominalZone = req.ZoneID
	in.Location = uc.location
	in.HalfDayBoundaryHour = settings.HalfDayBoundary()

	// 5. Определяем зоны
	res := zones.Resolve(*in)
	uc.logger.Info("GetZoneOptions: %d zones, locked=%t, reason=%q", len(res.Zones), res.Locked, res.Reason)

	return &Response{
		Start:         req.Start,
		End:           end,
		Zones:         res.Zones,
		Locked:        res.Locked,
		Reason:        res.Reason,
		AppointmentID: res.AppointmentID,
	}, nil
}

func (uc *UseCase) loadInput(ctx context.Context, staffID int64, date time.Time) (*zones.Input, error) {
	all, err := uc.scheduleRepo.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zones: %v", err)
	}

	assignments, err := uc.scheduleRepo.ListAssignments(ctx, domain.ScheduleFilter{StaffID: &staffID})
	if err != nil {
		return nil, fmt.Errorf("list assignments: %v", err)
	}

	dayStart, dayEnd := domain.DayBounds(date, uc.location)
	appts, err := uc.appointmentRepo.List(ctx, domain.AppointmentFilter{
		StaffIDs: []int64{staffID},
		From:     &dayStart,
		To:       &dayEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("list appointments: %v", err)
	}

	selection, err := uc.scheduleRepo.GetSelection(ctx, staffID, date)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get zone selection: %v", err)
		}
		selection = nil
	}

	return &zones.Input{
		StaffID:      staffID,
		Appointments: appts,
		Assignments:  assignments,
		Zones:        all,
		Selection:    selection,
	}, nil
}
