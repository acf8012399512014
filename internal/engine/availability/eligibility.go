package availability

import (
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// EligibilityInput describes the schedule rows needed to expand eligibility of one staff member
type EligibilityInput struct {
	StaffID  int64
	From     time.Time // first calendar date, inclusive
	To       time.Time // last calendar date, exclusive
	Location *time.Location
	ZoneID   *int64 // restrict to a single zone

	Assignments []*domain.StaffZoneAssignment
	WeeklyRules []*domain.WeeklyRule
	Exceptions  []*domain.DateException
}

// Expand computes the eligible intervals of a staff member for every date of the range.
// On each date an assignment contributes its hours intersected with the opening hours
// of its zone: the exceptions of (zone, date) if any exist, the weekly rules otherwise.
func Expand(in EligibilityInput) []DayEligibility {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	exceptions := make(map[exceptionKey][]*domain.DateException)
	for _, e := range in.Exceptions {
		key := exceptionKey{zoneID: e.ZoneID, date: dateKey(e.Date)}
		exceptions[key] = append(exceptions[key], e)
	}

	var days []DayEligibility
	for d := dateOnly(in.From); d.Before(dateOnly(in.To)); d = d.AddDate(0, 0, 1) {
		day := DayEligibility{Date: d}

		for _, a := range in.Assignments {
			if a.StaffID != in.StaffID || a.Weekday != d.Weekday() {
				continue
			}
			if in.ZoneID != nil && a.ZoneID != *in.ZoneID {
				continue
			}

			assigned := Interval{Start: a.StartTime.On(d, loc), End: a.EndTime.On(d, loc)}
			if !assigned.Valid() {
				continue
			}

			for _, open := range zoneOpening(a.ZoneID, d, loc, in.WeeklyRules, exceptions) {
				if iv, ok := Intersect(assigned, open); ok {
					day.Intervals = append(day.Intervals, iv)
				}
			}
		}

		day.Intervals = Union(day.Intervals)
		days = append(days, day)
	}
	return days
}

type exceptionKey struct {
	zoneID int64
	date   string
}

func zoneOpening(
	zoneID int64,
	date time.Time,
	loc *time.Location,
	rules []*domain.WeeklyRule,
	exceptions map[exceptionKey][]*domain.DateException,
) []Interval {
	var out []Interval

	if overrides, ok := exceptions[exceptionKey{zoneID: zoneID, date: dateKey(date)}]; ok {
		for _, e := range overrides {
			out = append(out, Interval{Start: e.StartTime.On(date, loc), End: e.EndTime.On(date, loc)})
		}
		return Union(out)
	}

	for _, r := range rules {
		if r.ZoneID != zoneID || r.Weekday != date.Weekday() {
			continue
		}
		out = append(out, Interval{Start: r.StartTime.On(date, loc), End: r.EndTime.On(date, loc)})
	}
	return Union(out)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}
