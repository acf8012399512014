package get_day_layout

import (
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// EventKind тип события в колонке дня
type EventKind string

const (
	KindAppointment EventKind = "appointment"
	KindFree        EventKind = "free"
)

// Request модель запроса раскладки дня
type Request struct {
	Date        time.Time // календарная дата, полночь UTC
	ByStaff     bool      // одна дорожка на сотрудника
	StaffID     *int64
	IncludeFree bool // добавить свободные интервалы
}

// Event событие с позицией в колонке дня
type Event struct {
	ID            string
	Kind          EventKind
	AppointmentID *int64
	StaffID       int64
	ZoneID        *int64
	MeetingMode   domain.MeetingMode
	ClientName    string
	Start         time.Time
	End           time.Time
	StartMin      int // минуты от локальной полуночи
	EndMin        int
	Lane          int
	LanesCount    int
}

// Response раскладка дня
type Response struct {
	Date       time.Time
	LanesCount int
	Events     []Event
}
