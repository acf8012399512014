package events

import (
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// Типы событий, они же routing key
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
)

// BookingEvent событие жизненного цикла встречи
type BookingEvent struct {
	Type          string    `json:"type"`
	AppointmentID int64     `json:"appointment_id"`
	StaffID       int64     `json:"staff_id"`
	ZoneID        int64     `json:"zone_id"`
	MeetingMode   string    `json:"meeting_mode"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	ClientName    string    `json:"client_name"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewBookingEvent собирает событие по встрече
func NewBookingEvent(eventType string, appt *domain.Appointment, now time.Time) BookingEvent {
	return BookingEvent{
		Type:          eventType,
		AppointmentID: appt.ID,
		StaffID:       appt.StaffID,
		ZoneID:        appt.ZoneID,
		MeetingMode:   string(appt.MeetingMode),
		Start:         appt.Start.UTC(),
		End:           appt.End.UTC(),
		ClientName:    appt.ClientName,
		OccurredAt:    now.UTC(),
	}
}
