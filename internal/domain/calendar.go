package domain

import "time"

// HalfDay is the morning or afternoon part of a local calendar day
type HalfDay int

const (
	Morning HalfDay = iota
	Afternoon
)

func (h HalfDay) String() string {
	if h == Morning {
		return "morning"
	}
	return "afternoon"
}

// HalfDayOf returns the half-day of t in loc; hours before boundaryHour are morning
func HalfDayOf(t time.Time, loc *time.Location, boundaryHour int) HalfDay {
	if t.In(loc).Hour() < boundaryHour {
		return Morning
	}
	return Afternoon
}

// DateOf returns the local calendar date of t as midnight UTC
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameLocalDay reports whether a and b fall on the same calendar date in loc
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	return DateOf(a, loc).Equal(DateOf(b, loc))
}

// SameHalfDay reports whether a and b fall in the same local half-day
func SameHalfDay(a, b time.Time, loc *time.Location, boundaryHour int) bool {
	return SameLocalDay(a, b, loc) && HalfDayOf(a, loc, boundaryHour) == HalfDayOf(b, loc, boundaryHour)
}

// DayBounds returns [00:00, next 00:00) of the calendar date in loc
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
