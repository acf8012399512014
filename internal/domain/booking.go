package domain

import (
	"time"
)

// MeetingMode is either in person or remote
type MeetingMode string

const (
	ModePhysical MeetingMode = "physique"
	ModeVisio    MeetingMode = "visio"
)

// Valid returns true for a known meeting mode
func (m MeetingMode) Valid() bool {
	return m == ModePhysical || m == ModeVisio
}

// Appointment is a confirmed booking of a staff member.
// No two appointments of the same staff member overlap.
type Appointment struct {
	ID             int64
	Start          time.Time
	End            time.Time
	ZoneID         int64
	StaffID        int64
	MeetingMode    MeetingMode
	ClientName     string
	ClientEmail    *string
	ClientPhone    *string
	Summary        *string
	Notes          *string
	RestaurantName *string
	City           *string
	Attendees      []string
	IdempotencyKey string

	CreatedAt time.Time
}

// IsPhysical returns true for in-person appointments
func (a *Appointment) IsPhysical() bool {
	return a.MeetingMode == ModePhysical
}

// Overlaps reports strict overlap with [start, end); touching boundaries do not overlap
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.Start.Before(end) && start.Before(a.End)
}

// Duration returns the appointment length
func (a *Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// AppointmentFilter selects appointments
type AppointmentFilter struct {
	StaffIDs []int64
	From     *time.Time // appointments ending after From
	To       *time.Time // appointments starting before To
}

// IdempotencyRecord binds a caller-supplied key to the appointment it produced
type IdempotencyRecord struct {
	Key           string
	Fingerprint   string
	AppointmentID int64
	CreatedAt     time.Time
}
