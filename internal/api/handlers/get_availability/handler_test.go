package get_availability

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
	getAvailability "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_availability"
	"github.com/m04kA/SMC-ZoneBooking/pkg/logger"
)

type stubUseCase struct {
	got  *getAvailability.Request
	resp *getAvailability.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	s.got = req
	return s.resp, s.err
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Slots(t *testing.T) {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &getAvailability.Response{
		From: day, To: day.AddDate(0, 0, 1), Form: getAvailability.FormSlots, Mode: domain.ModePhysical,
		Slots: []domain.SlotCandidate{{Start: start, End: start.Add(30 * time.Minute), StaffIDs: []int64{1, 2}}},
	}}
	h := NewHandler(uc, time.UTC, logger.Discard())

	rec := get(h, "/api/v1/availability?from=2026-10-19&staffId=1&zone=3&mode=physique&only=slots")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, day, uc.got.From)
	assert.Equal(t, day.AddDate(0, 0, 1), uc.got.To)
	assert.Equal(t, int64(1), *uc.got.StaffID)
	assert.Equal(t, int64(3), *uc.got.ZoneID)
	assert.Equal(t, domain.ModePhysical, uc.got.Mode)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-10-19", resp.From)
	assert.Equal(t, "2026-10-19", resp.To)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, []int64{1, 2}, resp.Slots[0].StaffIDs)
}

func TestHandler_InclusiveTo(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailability.Response{Form: getAvailability.FormMerged}}
	h := NewHandler(uc, time.UTC, logger.Discard())

	require.Equal(t, http.StatusOK, get(h, "/api/v1/availability?from=2026-10-19&to=2026-10-25&only=merged").Code)
	assert.Equal(t, time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC), uc.got.To)
	assert.Equal(t, getAvailability.FormMerged, uc.got.Form)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "missing from", target: "/api/v1/availability", status: http.StatusBadRequest},
		{name: "bad staff", target: "/api/v1/availability?from=2026-10-19&staffId=x", status: http.StatusBadRequest},
		{name: "range too long", target: "/api/v1/availability?from=2026-10-19", err: getAvailability.ErrRangeTooLong, status: http.StatusBadRequest},
		{name: "staff not found", target: "/api/v1/availability?from=2026-10-19", err: getAvailability.ErrStaffNotFound, status: http.StatusNotFound},
		{name: "zone not found", target: "/api/v1/availability?from=2026-10-19", err: getAvailability.ErrZoneNotFound, status: http.StatusNotFound},
		{name: "internal", target: "/api/v1/availability?from=2026-10-19", err: getAvailability.ErrInternal, status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, time.UTC, logger.Discard())
			assert.Equal(t, tt.status, get(h, tt.target).Code)
		})
	}
}
