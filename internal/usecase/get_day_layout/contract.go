package get_day_layout

import (
	"context"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_availability"
)

// AppointmentRepository интерфейс чтения встреч
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// AvailabilityProvider свободное время сотрудников (use case get_availability)
type AvailabilityProvider interface {
	Execute(ctx context.Context, req *get_availability.Request) (*get_availability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
