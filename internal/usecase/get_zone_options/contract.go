package get_zone_options

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// ScheduleRepository интерфейс чтения расписания
type ScheduleRepository interface {
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
	ListZones(ctx context.Context) ([]*domain.Zone, error)
	ListAssignments(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.StaffZoneAssignment, error)
	GetSelection(ctx context.Context, staffID int64, date time.Time) (*domain.ZoneSelection, error)
}

// AppointmentRepository интерфейс чтения встреч
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
