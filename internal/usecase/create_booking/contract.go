package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/events"
)

// AppointmentRepository интерфейс репозитория встреч
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	GetIdempotency(ctx context.Context, key string) (*domain.IdempotencyRecord, error)
	SaveIdempotency(ctx context.Context, rec *domain.IdempotencyRecord) error
}

// ScheduleRepository интерфейс чтения расписания
type ScheduleRepository interface {
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
	ListStaff(ctx context.Context) ([]*domain.Staff, error)
	ListZones(ctx context.Context) ([]*domain.Zone, error)
	ListAssignments(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.StaffZoneAssignment, error)
	ListRules(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.WeeklyRule, error)
	ListExceptions(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.DateException, error)
	ListSelections(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ZoneSelection, error)
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// StaffLocker блокировки записи по сотрудникам
type StaffLocker interface {
	Acquire(ctx context.Context, keys ...int64) (func(), error)
}

// IdempotencyCache кэш ключей идемпотентности (hashicorp/golang-lru)
type IdempotencyCache interface {
	Get(key string) (domain.IdempotencyRecord, bool)
	Add(key string, value domain.IdempotencyRecord) bool
	Remove(key string) bool
}

// EventPublisher публикация событий о встречах
type EventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
}

// MetricsRecorder интерфейс метрик записи
type MetricsRecorder interface {
	RecordBooking(result, mode string)
	RecordLockWait(result string, duration time.Duration)
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
