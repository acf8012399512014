package get_availability

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
	ListStaff(ctx context.Context) ([]*domain.Staff, error)
	GetZone(ctx context.Context, id int64) (*domain.Zone, error)
	ListAssignments(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.StaffZoneAssignment, error)
	ListRules(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.WeeklyRule, error)
	ListExceptions(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.DateException, error)
}

// AppointmentRepository интерфейс чтения встреч
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// MetricsRecorder интерфейс для метрик запросов доступности
type MetricsRecorder interface {
	RecordAvailabilityRequest(form string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
