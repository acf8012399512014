package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/engine/availability"
	"github.com/m04kA/SMC-ZoneBooking/internal/engine/constraints"
	"github.com/m04kA/SMC-ZoneBooking/internal/engine/zones"
)

// bookingContext данные запроса, не зависящие от конкурентных записей
type bookingContext struct {
	settings    *domain.Settings
	start       time.Time
	end         time.Time
	date        time.Time // локальная дата начала, полночь UTC
	mode        domain.MeetingMode
	zones       []*domain.Zone
	requested   *domain.Zone
	candidates  []int64
	assignments []*domain.StaffZoneAssignment
}

// prepare загружает настройки и расписание и отбирает сотрудников, работающих в это время
func (uc *UseCase) prepare(ctx context.Context, req *Request, now time.Time) (*bookingContext, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	bc := &bookingContext{
		settings: settings,
		start:    req.Start,
		end:      req.End,
		date:     domain.DateOf(req.Start, uc.location),
		mode:     req.Mode,
	}
	if bc.end.IsZero() {
		bc.end = bc.start.Add(time.Duration(settings.DurationFor(req.Mode)) * time.Minute)
	}

	if err := validateBookingTime(bc.start, now, settings, uc.location); err != nil {
		return nil, err
	}

	bc.zones, err = uc.scheduleRepo.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list zones: %v", ErrInternal, err)
	}
	bc.requested, err = resolveRequestedZone(req, bc.zones)
	if err != nil {
		return nil, err
	}

	staffIDs, err := uc.staffIDs(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}

	bc.assignments, err = uc.scheduleRepo.ListAssignments(ctx, domain.ScheduleFilter{StaffID: req.StaffID})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
	}
	rules, err := uc.scheduleRepo.ListRules(ctx, domain.ScheduleFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list rules: %v", ErrInternal, err)
	}
	exceptions, err := uc.scheduleRepo.ListExceptions(ctx, domain.ScheduleFilter{From: &bc.date, To: &bc.date})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list exceptions: %v", ErrInternal, err)
	}

	// Очная встреча в явно указанной зоне требует назначения именно в эту зону
	var zoneFilter *int64
	if bc.mode == domain.ModePhysical && bc.requested != nil {
		zoneFilter = &bc.requested.ID
	}

	for _, staffID := range staffIDs {
		days := availability.Expand(availability.EligibilityInput{
			StaffID:     staffID,
			From:        bc.date,
			To:          bc.date.AddDate(0, 0, 1),
			Location:    uc.location,
			ZoneID:      zoneFilter,
			Assignments: bc.assignments,
			WeeklyRules: rules,
			Exceptions:  exceptions,
		})
		if len(days) == 1 && availability.Covers(days[0].Intervals, bc.start, bc.end) {
			bc.candidates = append(bc.candidates, staffID)
		}
	}

	if len(bc.candidates) == 0 {
		return nil, fmt.Errorf("%w: %s - %s", ErrStaffNotAvailable,
			bc.start.In(uc.location).Format(time.RFC3339), bc.end.In(uc.location).Format(time.RFC3339))
	}

	return bc, nil
}

func (uc *UseCase) staffIDs(ctx context.Context, staffID *int64) ([]int64, error) {
	if staffID != nil {
		if _, err := uc.scheduleRepo.GetStaff(ctx, *staffID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: id=%d", ErrStaffNotFound, *staffID)
			}
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		return []int64{*staffID}, nil
	}

	staff, err := uc.scheduleRepo.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	ids := make([]int64, 0, len(staff))
	for _, s := range staff {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

// evaluate выбирает сотрудника и зону по текущим встречам дня.
// В транзакции встречи читаются с блокировкой строк
func (uc *UseCase) evaluate(ctx context.Context, bc *bookingContext) (*plan, error) {
	dayStart, dayEnd := domain.DayBounds(bc.date, uc.location)
	appts, err := uc.appointmentRepo.List(ctx, domain.AppointmentFilter{
		StaffIDs: bc.candidates,
		From:     &dayStart,
		To:       &dayEnd,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("%w: %v", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	selections, err := uc.scheduleRepo.ListSelections(ctx, domain.ScheduleFilter{From: &bc.date, To: &bc.date})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list zone selections: %v", ErrInternal, err)
	}
	selectionByStaff := make(map[int64]*domain.ZoneSelection, len(selections))
	for _, s := range selections {
		selectionByStaff[s.StaffID] = s
	}

	// 1. Лимит очных встреч на половину дня, независимо от пересечений
	candidates := bc.candidates
	if bc.mode == domain.ModePhysical {
		capacityIn := constraints.Input{
			Start:        bc.start,
			End:          bc.end,
			Mode:         bc.mode,
			Appointments: appts,
			Rules:        constraints.RulesFromSettings(bc.settings, uc.location),
		}
		candidates = make([]int64, 0, len(bc.candidates))
		var capacityViolation *domain.Violation
		for _, staffID := range bc.candidates {
			if v := constraints.CapacityViolation(capacityIn, staffID); v != nil {
				if capacityViolation == nil {
					capacityViolation = v
				}
				continue
			}
			candidates = append(candidates, staffID)
		}
		if len(candidates) == 0 {
			return nil, capacityViolation
		}
	}

	// 2. Сотрудники, у которых время уже занято
	free := make([]int64, 0, len(candidates))
	for _, staffID := range candidates {
		if constraints.Overlapping(appts, staffID, bc.start, bc.end) == nil {
			free = append(free, staffID)
		}
	}
	if len(free) == 0 {
		return nil, ErrSlotTaken
	}

	// 3. Буферы вокруг соседних встреч
	before := time.Duration(bc.settings.BufferBeforeFor(bc.mode)) * time.Minute
	after := time.Duration(bc.settings.BufferAfterFor(bc.mode)) * time.Minute
	buffered := make([]int64, 0, len(free))
	var bufferViolation *domain.Violation
	for _, staffID := range free {
		if v := checkBuffers(appts, staffID, bc.start, bc.end, before, after); v != nil {
			if bufferViolation == nil {
				bufferViolation = v
			}
			continue
		}
		buffered = append(buffered, staffID)
	}
	if len(buffered) == 0 {
		return nil, bufferViolation
	}

	// 4. Зона
	resolutions := make(map[int64]zones.Resolution, len(buffered))
	zoneByStaff := make(map[int64]int64, len(buffered))
	zoned := make([]int64, 0, len(buffered))
	var zoneErr error
	for _, staffID := range buffered {
		in := zones.Input{
			Start:               bc.start,
			End:                 bc.end,
			StaffID:             staffID,
			Mode:                bc.mode,
			Appointments:        appts,
			Assignments:         bc.assignments,
			Zones:               bc.zones,
			Selection:           selectionByStaff[staffID],
			Location:            uc.location,
			HalfDayBoundaryHour: bc.settings.HalfDayBoundary(),
		}
		if bc.requested != nil {
			in.NominalZone = &bc.requested.ID
		}
		res := zones.Resolve(in)

		switch {
		case bc.requested != nil && res.Contains(bc.requested.ID):
			zoneByStaff[staffID] = bc.requested.ID
		case bc.requested == nil && len(res.Zones) > 0:
			zoneByStaff[staffID] = res.Zones[0].ID
		default:
			if zoneErr == nil {
				zoneErr = zoneRejection(staffID, res)
			}
			continue
		}
		resolutions[staffID] = res
		zoned = append(zoned, staffID)
	}
	if len(zoned) == 0 {
		return nil, zoneErr
	}

	// 5. Ёмкость и интервалы между встречами
	eligible, err := constraints.Validate(constraints.Input{
		Start:        bc.start,
		End:          bc.end,
		Mode:         bc.mode,
		Candidates:   zoned,
		Appointments: appts,
		Rules:        constraints.RulesFromSettings(bc.settings, uc.location),
	})
	if err != nil {
		return nil, err
	}

	// 6. Наименее загруженный сотрудник
	staffID, _ := constraints.LeastLoaded(eligible, constraints.DayLoad(appts))

	return &plan{
		staffID:    staffID,
		zoneID:     zoneByStaff[staffID],
		resolution: resolutions[staffID],
	}, nil
}

// checkBuffers: предыдущая встреча должна закончиться не позже start-before,
// следующая начаться не раньше end+after
func checkBuffers(appts []*domain.Appointment, staffID int64, start, end time.Time, before, after time.Duration) *domain.Violation {
	for _, a := range appts {
		if a.StaffID != staffID {
			continue
		}
		if !a.End.After(start) && start.Sub(a.End) < before {
			return &domain.Violation{
				Kind:    domain.ErrSpacing,
				StaffID: staffID,
				Reason:  fmt.Sprintf("appointment %d ends less than %s before start", a.ID, before),
			}
		}
		if !a.Start.Before(end) && a.Start.Sub(end) < after {
			return &domain.Violation{
				Kind:    domain.ErrSpacing,
				StaffID: staffID,
				Reason:  fmt.Sprintf("appointment %d starts less than %s after end", a.ID, after),
			}
		}
	}
	return nil
}

func zoneRejection(staffID int64, res zones.Resolution) error {
	if res.Locked && len(res.Zones) > 0 {
		return fmt.Errorf("%w: staff=%d is in zone %q (%s)", ErrZoneLocked, staffID, res.Zones[0].Name, res.Reason)
	}
	return fmt.Errorf("%w: staff=%d has no zone for this slot", ErrStaffNotAvailable, staffID)
}
