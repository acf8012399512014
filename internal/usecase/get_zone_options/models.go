package get_zone_options

import (
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/engine/zones"
)

// Request модель запроса зон для слота
type Request struct {
	Start   time.Time
	End     time.Time // нулевое значение = длительность по умолчанию для режима
	StaffID int64
	Mode    domain.MeetingMode
	ZoneID  *int64 // зона слота, если известна
}

// Response зоны, доступные для слота, и причина блокировки
type Response struct {
	Start         time.Time
	End           time.Time
	Zones         []*domain.Zone
	Locked        bool
	Reason        zones.LockReason
	AppointmentID *int64
}
