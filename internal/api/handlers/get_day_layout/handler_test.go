package get_day_layout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	getDayLayout "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_day_layout"
	"github.com/m04kA/SMC-ZoneBooking/pkg/logger"
)

type stubUseCase struct {
	got  *getDayLayout.Request
	resp *getDayLayout.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getDayLayout.Request) (*getDayLayout.Response, error) {
	s.got = req
	return s.resp, s.err
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Layout(t *testing.T) {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	apptID := int64(5)
	uc := &stubUseCase{resp: &getDayLayout.Response{
		Date:       day,
		LanesCount: 2,
		Events: []getDayLayout.Event{
			{ID: "appt-5", Kind: getDayLayout.KindAppointment, AppointmentID: &apptID, StaffID: 1,
				MeetingMode: domain.ModeVisio, Start: start, End: start.Add(30 * time.Minute),
				StartMin: 540, EndMin: 570, Lane: 0, LanesCount: 2},
			{ID: "free-1-0", Kind: getDayLayout.KindFree, StaffID: 2,
				Start: start, End: start.Add(time.Hour), StartMin: 540, EndMin: 600, Lane: 1, LanesCount: 2},
		},
	}}
	h := NewHandler(uc, time.UTC, logger.Discard())

	rec := get(h, "/api/v1/layout?date=2026-10-19&byStaff=true&free=1&staffId=1")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, day, uc.got.Date)
	assert.True(t, uc.got.ByStaff)
	assert.True(t, uc.got.IncludeFree)
	require.NotNil(t, uc.got.StaffID)
	assert.Equal(t, int64(1), *uc.got.StaffID)

	var resp LayoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-10-19", resp.Date)
	assert.Equal(t, 2, resp.LanesCount)
	require.Len(t, resp.Events, 2)
	assert.Equal(t, "appointment", resp.Events[0].Kind)
	assert.Equal(t, "visio", resp.Events[0].MeetingMode)
	assert.Equal(t, "free", resp.Events[1].Kind)
	assert.Nil(t, resp.Events[1].AppointmentID)
	assert.Equal(t, 1, resp.Events[1].Lane)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "missing date", target: "/api/v1/layout", status: http.StatusBadRequest},
		{name: "bad date", target: "/api/v1/layout?date=19/10/2026", status: http.StatusBadRequest},
		{name: "bad byStaff", target: "/api/v1/layout?date=2026-10-19&byStaff=maybe", status: http.StatusBadRequest},
		{name: "invalid input", target: "/api/v1/layout?date=2026-10-19", err: getDayLayout.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", target: "/api/v1/layout?date=2026-10-19", err: getDayLayout.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, time.UTC, logger.Discard())
			assert.Equal(t, tt.status, get(h, tt.target).Code)
		})
	}
}
