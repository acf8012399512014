package get_day_layout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/engine/layout"
	"github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_availability"
)

const minutesPerDay = 24 * 60

// UseCase use case для раскладки встреч дня по дорожкам
type UseCase struct {
	appointmentRepo AppointmentRepository
	availability    AvailabilityProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availability AvailabilityProvider,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		availability:    availability,
		location:        location,
		logger:          logger,
	}
}

// Execute раскладывает события дня по дорожкам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayLayout: date=%s, byStaff=%t, includeFree=%t",
		req.Date.Format(domain.DateFormat), req.ByStaff, req.IncludeFree)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StaffID != nil && *req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	dayStart, dayEnd := domain.DayBounds(req.Date, uc.location)
	filter := domain.AppointmentFilter{From: &dayStart, To: &dayEnd}
	if req.StaffID != nil {
		filter.StaffIDs = []int64{*req.StaffID}
	}

	// 2. Встречи дня
	appts, err := uc.appointmentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDayLayout: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	events := make([]Event, 0, len(appts))
	for _, a := range appts {
		id := a.ID
		zoneID := a.ZoneID
		events = append(events, Event{
			ID:            "appointment-" + strconv.FormatInt(a.ID, 10),
			Kind:          KindAppointment,
			AppointmentID: &id,
			StaffID:       a.StaffID,
			ZoneID:        &zoneID,
			MeetingMode:   a.MeetingMode,
			ClientName:    a.ClientName,
			Start:         a.Start,
			End:           a.End,
		})
	}

	// 3. Свободные интервалы
	if req.IncludeFree {
		free, err := uc.availability.Execute(ctx, &get_availability.Request{
			From:    req.Date,
			To:      req.Date.AddDate(0, 0, 1),
			StaffID: req.StaffID,
			Form:    get_availability.FormMerged,
		})
		if err != nil {
			uc.logger.Warn("GetDayLayout: failed to get free intervals: %v", err)
			return nil, err
		}
		for i, f := range free.Intervals {
			events = append(events, Event{
				ID:      fmt.Sprintf("free-%d-%d", f.StaffID, i),
				Kind:    KindFree,
				StaffID: f.StaffID,
				Start:   f.Start,
				End:     f.End,
			})
		}
	}

	// 4. Раскладка по дорожкам
	byID := make(map[string]Event, len(events))
	input := make([]layout.Event, 0, len(events))
	for _, e := range events {
		byID[e.ID] = e
		le := layout.Event{ID: e.ID, Start: e.Start, End: e.End}
		if req.ByStaff {
			staffID := e.StaffID
			le.Track = &staffID
		}
		input = append(input, le)
	}

	resp := &Response{Date: req.Date, Events: make([]Event, 0, len(events))}
	for _, p := range layout.Pack(input) {
		e := byID[p.ID]
		e.Lane = p.Lane
		e.LanesCount = p.LanesCount
		e.StartMin = minuteOfDay(e.Start, dayStart, dayEnd, uc.location)
		e.EndMin = minuteOfDay(e.End, dayStart, dayEnd, uc.location)
		resp.LanesCount = p.LanesCount
		resp.Events = append(resp.Events, e)
	}

	uc.logger.Info("GetDayLayout: %d events in %d lanes", len(resp.Events), resp.LanesCount)
	return resp, nil
}

// minuteOfDay минуты по местным часам от начала дня, обрезанные до [0, 1440]
func minuteOfDay(t, dayStart, dayEnd time.Time, loc *time.Location) int {
	switch {
	case t.Before(dayStart):
		return 0
	case !t.Before(dayEnd):
		return minutesPerDay
	}
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}
