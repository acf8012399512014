package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/service/bookings"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-ZoneBooking/pkg/logger"
)

type stubService struct {
	appointments map[int64]*models.AppointmentResponse
}

func (s *stubService) GetByID(_ context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, ok := s.appointments[id]
	if !ok {
		return nil, bookings.ErrAppointmentNotFound
	}
	return appt, nil
}

func TestHandler(t *testing.T) {
	svc := &stubService{appointments: map[int64]*models.AppointmentResponse{
		7: {ID: 7, StaffID: 2, ZoneID: 3, MeetingMode: "physique", DurationMinutes: 60},
	}}

	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}", NewHandler(svc, logger.Discard()).Handle).Methods(http.MethodGet)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{name: "found", target: "/bookings/7", status: http.StatusOK},
		{name: "not found", target: "/bookings/8", status: http.StatusNotFound},
		{name: "bad id", target: "/bookings/abc", status: http.StatusBadRequest},
		{name: "zero id", target: "/bookings/0", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.Equal(t, tt.status, rec.Code)

			if tt.status == http.StatusOK {
				var resp models.AppointmentResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, int64(7), resp.ID)
				assert.Equal(t, 60, resp.DurationMinutes)
			}
		})
	}
}
