package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// ScheduleRepository интерфейс для работы с расписанием
type ScheduleRepository interface {
	CreateZone(ctx context.Context, zone *domain.Zone) (*domain.Zone, error)
	GetZone(ctx context.Context, id int64) (*domain.Zone, error)
	ListZones(ctx context.Context) ([]*domain.Zone, error)
	UpdateZone(ctx context.Context, zone *domain.Zone) (*domain.Zone, error)
	DeleteZone(ctx context.Context, id int64) error
	ZoneInUse(ctx context.Context, id int64) (bool, error)

	CreateRule(ctx context.Context, rule *domain.WeeklyRule) (*domain.WeeklyRule, error)
	GetRule(ctx context.Context, id int64) (*domain.WeeklyRule, error)
	ListRules(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.WeeklyRule, error)
	UpdateRule(ctx context.Context, rule *domain.WeeklyRule) (*domain.WeeklyRule, error)
	DeleteRule(ctx context.Context, id int64) error
	DeleteRulesForWeekdays(ctx context.Context, zoneID int64, weekdays []time.Weekday) (int64, error)

	CreateException(ctx context.Context, exc *domain.DateException) (*domain.DateException, error)
	GetException(ctx context.Context, id int64) (*domain.DateException, error)
	ListExceptions(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.DateException, error)
	UpdateException(ctx context.Context, exc *domain.DateException) (*domain.DateException, error)
	DeleteException(ctx context.Context, id int64) error

	CreateAssignment(ctx context.Context, a *domain.StaffZoneAssignment) (*domain.StaffZoneAssignment, error)
	GetAssignment(ctx context.Context, id int64) (*domain.StaffZoneAssignment, error)
	ListAssignments(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.StaffZoneAssignment, error)
	UpdateAssignment(ctx context.Context, a *domain.StaffZoneAssignment) (*domain.StaffZoneAssignment, error)
	DeleteAssignment(ctx context.Context, id int64) error

	CreateStaff(ctx context.Context, s *domain.Staff) (*domain.Staff, error)
	GetStaff(ctx context.Context, id int64) (*domain.Staff, error)
	ListStaff(ctx context.Context) ([]*domain.Staff, error)

	UpsertSelection(ctx context.Context, sel *domain.ZoneSelection) (*domain.ZoneSelection, error)
	GetSelection(ctx context.Context, staffID int64, date time.Time) (*domain.ZoneSelection, error)
	ListSelections(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ZoneSelection, error)
	DeleteSelection(ctx context.Context, staffID int64, date time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
