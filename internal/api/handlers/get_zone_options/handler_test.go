package get_zone_options

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/engine/zones"
	getZoneOptions "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_zone_options"
	"github.com/m04kA/SMC-ZoneBooking/pkg/logger"
)

type stubUseCase struct {
	got  *getZoneOptions.Request
	resp *getZoneOptions.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getZoneOptions.Request) (*getZoneOptions.Response, error) {
	s.got = req
	return s.resp, s.err
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_LockedZone(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	apptID := int64(42)
	uc := &stubUseCase{resp: &getZoneOptions.Response{
		Start:         start,
		End:           start.Add(time.Hour),
		Zones:         []*domain.Zone{{ID: 3, Name: "Nord"}},
		Locked:        true,
		Reason:        zones.LockHalfDay,
		AppointmentID: &apptID,
	}}
	h := NewHandler(uc, time.UTC, logger.Discard())

	rec := get(h, "/api/v1/zone-options?start=2026-10-19T09:00:00Z&staffId=7&mode=physique&zoneId=3")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, start, uc.got.Start)
	assert.True(t, uc.got.End.IsZero())
	assert.Equal(t, int64(7), uc.got.StaffID)
	assert.Equal(t, domain.ModePhysical, uc.got.Mode)
	require.NotNil(t, uc.got.ZoneID)
	assert.Equal(t, int64(3), *uc.got.ZoneID)

	var resp ZoneOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Locked)
	assert.Equal(t, string(zones.LockHalfDay), resp.Reason)
	require.Len(t, resp.Zones, 1)
	assert.Equal(t, "Nord", resp.Zones[0].Name)
	assert.False(t, resp.Zones[0].IsVisio)
	require.NotNil(t, resp.AppointmentID)
	assert.Equal(t, apptID, *resp.AppointmentID)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "missing start", target: "/api/v1/zone-options?staffId=1", status: http.StatusBadRequest},
		{name: "bad end", target: "/api/v1/zone-options?start=2026-10-19T09:00:00Z&end=soon", status: http.StatusBadRequest},
		{name: "bad zone", target: "/api/v1/zone-options?start=2026-10-19T09:00:00Z&zoneId=x", status: http.StatusBadRequest},
		{name: "invalid input", target: "/api/v1/zone-options?start=2026-10-19T09:00:00Z", err: getZoneOptions.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "staff not found", target: "/api/v1/zone-options?start=2026-10-19T09:00:00Z&staffId=9", err: getZoneOptions.ErrStaffNotFound, status: http.StatusNotFound},
		{name: "internal", target: "/api/v1/zone-options?start=2026-10-19T09:00:00Z&staffId=1", err: fmt.Errorf("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, time.UTC, logger.Discard())
			assert.Equal(t, tt.status, get(h, tt.target).Code)
		})
	}
}
