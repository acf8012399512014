package list_bookings

import (
	"context"

	"github.com/m04kA/SMC-ZoneBooking/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
