package get_day_layout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_availability"
	"github.com/m04kA/SMC-ZoneBooking/pkg/logger"
)

type stubAppointments struct {
	appts  []*domain.Appointment
	filter domain.AppointmentFilter
	err    error
}

func (s *stubAppointments) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	s.filter = filter
	return s.appts, s.err
}

type stubAvailability struct {
	resp *get_availability.Response
	req  *get_availability.Request
}

func (s *stubAvailability) Execute(_ context.Context, req *get_availability.Request) (*get_availability.Response, error) {
	s.req = req
	return s.resp, nil
}

var day = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2026, 10, 19, hour, min, 0, 0, time.UTC)
}

func appointment(id, staffID int64, start, end time.Time) *domain.Appointment {
	return &domain.Appointment{ID: id, StaffID: staffID, ZoneID: 1, Start: start, End: end, MeetingMode: domain.ModePhysical}
}

func lanes(resp *Response) map[string]int {
	out := make(map[string]int, len(resp.Events))
	for _, e := range resp.Events {
		out[e.ID] = e.Lane
	}
	return out
}

func TestExecute_GreedyLanes(t *testing.T) {
	repo := &stubAppointments{appts: []*domain.Appointment{
		appointment(1, 1, at(9, 0), at(10, 0)),
		appointment(2, 2, at(9, 30), at(10, 30)),
		appointment(3, 1, at(10, 0), at(11, 0)),
	}}
	uc := NewUseCase(repo, &stubAvailability{}, time.UTC, logger.Discard())

	resp, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.LanesCount)
	assert.Equal(t, map[string]int{"appointment-1": 0, "appointment-2": 1, "appointment-3": 0}, lanes(resp))
	for _, e := range resp.Events {
		assert.Equal(t, 2, e.LanesCount, "lanes count is day-wide")
	}
	assert.Equal(t, 540, resp.Events[0].StartMin)
	assert.Equal(t, 600, resp.Events[0].EndMin)
	assert.Nil(t, repo.filter.StaffIDs)
}

func TestExecute_ByStaffWithFreeIntervals(t *testing.T) {
	repo := &stubAppointments{appts: []*domain.Appointment{
		appointment(1, 3, at(9, 0), at(10, 0)),
		appointment(2, 5, at(14, 0), at(15, 0)),
	}}
	avail := &stubAvailability{resp: &get_availability.Response{Intervals: []domain.FreeInterval{
		{StaffID: 5, Start: at(9, 0), End: at(12, 0)},
	}}}
	uc := NewUseCase(repo, avail, time.UTC, logger.Discard())

	resp, err := uc.Execute(context.Background(), &Request{Date: day, ByStaff: true, IncludeFree: true})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.LanesCount)
	assert.Equal(t, map[string]int{"appointment-1": 0, "appointment-2": 1, "free-5-0": 1}, lanes(resp))
	assert.Equal(t, get_availability.FormMerged, avail.req.Form)
	assert.True(t, avail.req.To.Equal(day.AddDate(0, 0, 1)))
}

func TestExecute_ClipsToDay(t *testing.T) {
	repo := &stubAppointments{appts: []*domain.Appointment{
		appointment(1, 1, at(23, 0), at(23, 0).Add(2*time.Hour)),
	}}
	uc := NewUseCase(repo, &stubAvailability{}, time.UTC, logger.Discard())

	resp, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, 23*60, resp.Events[0].StartMin)
	assert.Equal(t, minutesPerDay, resp.Events[0].EndMin)
}

func TestExecute_Errors(t *testing.T) {
	uc := NewUseCase(&stubAppointments{err: errors.New("boom")}, &stubAvailability{}, time.UTC, logger.Discard())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: day})
	assert.ErrorIs(t, err, ErrInternal)
}
