package availability

import (
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// DayEligibility is the raw eligible time of a staff member on one calendar date
type DayEligibility struct {
	Date      time.Time // midnight UTC
	Intervals []Interval
}

// DayFree is the free time of a staff member on one calendar date
type DayFree struct {
	Date time.Time
	Free []domain.FreeInterval
}

// Merge unions the eligible intervals of every day and subtracts the booked time.
// Appointments always win over rules.
func Merge(staffID int64, days []DayEligibility, booked []Interval) []DayFree {
	busy := Union(booked)

	out := make([]DayFree, 0, len(days))
	for _, day := range days {
		free := Subtract(day.Intervals, busy)

		intervals := make([]domain.FreeInterval, 0, len(free))
		for _, iv := range free {
			intervals = append(intervals, domain.FreeInterval{
				StaffID:       staffID,
				Start:         iv.Start,
				End:           iv.End,
				AfterBooking:  endsAt(busy, iv.Start),
				BeforeBooking: startsAt(busy, iv.End),
			})
		}
		out = append(out, DayFree{Date: day.Date, Free: intervals})
	}
	return out
}

// Flatten returns the free intervals of all days in order
func Flatten(days []DayFree) []domain.FreeInterval {
	var out []domain.FreeInterval
	for _, d := range days {
		out = append(out, d.Free...)
	}
	return out
}

// AppointmentIntervals converts appointments of one staff member to busy intervals
func AppointmentIntervals(staffID int64, appointments []*domain.Appointment) []Interval {
	out := make([]Interval, 0, len(appointments))
	for _, a := range appointments {
		if a.StaffID != staffID {
			continue
		}
		out = append(out, Interval{Start: a.Start, End: a.End})
	}
	return out
}

func endsAt(busy []Interval, t time.Time) bool {
	for _, b := range busy {
		if b.End.Equal(t) {
			return true
		}
	}
	return false
}

func startsAt(busy []Interval, t time.Time) bool {
	for _, b := range busy {
		if b.Start.Equal(t) {
			return true
		}
	}
	return false
}
