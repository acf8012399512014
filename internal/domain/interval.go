package domain

import "time"

// FreeInterval is a bookable window of one staff member on one day.
// AfterBooking / BeforeBooking mark boundaries produced by an existing appointment.
type FreeInterval struct {
	StaffID       int64
	Start         time.Time
	End           time.Time
	AfterBooking  bool
	BeforeBooking bool
}

// Duration returns the interval length
func (f FreeInterval) Duration() time.Duration {
	return f.End.Sub(f.Start)
}

// SlotCandidate is an offered start/end pair
type SlotCandidate struct {
	Start     time.Time
	End       time.Time
	ZoneID    *int64
	StaffIDs  []int64
	VisioOnly bool // the free interval is too short for an in-person meeting
}
