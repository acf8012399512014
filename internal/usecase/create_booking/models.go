package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/engine/zones"
)

// Request модель запроса на создание встречи
type Request struct {
	Start    time.Time
	End      time.Time // нулевое значение = длительность по умолчанию для режима
	StaffID  *int64    // nil = любой подходящий сотрудник
	ZoneID   *int64
	ZoneName string // альтернатива ZoneID
	Mode     domain.MeetingMode

	ClientName     string
	ClientEmail    *string
	ClientPhone    *string
	Summary        *string
	Notes          *string
	RestaurantName *string
	City           *string
	Attendees      []string

	IdempotencyKey string // пусто = сгенерировать
}

// Response модель ответа с созданной встречей
type Response struct {
	Appointment *domain.Appointment
	Replayed    bool // ответ на повтор запроса с тем же ключом
}

// PreflightResponse результат проверки без записи
type PreflightResponse struct {
	Start      time.Time
	End        time.Time
	StaffID    int64
	ZoneID     int64
	Zones      []*domain.Zone
	Locked     bool
	LockReason zones.LockReason
}

// plan итог оценки запроса: кто и в какой зоне примет встречу
type plan struct {
	staffID    int64
	zoneID     int64
	resolution zones.Resolution
}
