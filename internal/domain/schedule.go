package domain

import (
	"time"

	"github.com/m04kA/SMC-ZoneBooking/pkg/types"
)

// WeeklyRule opens a zone on a weekday between StartTime and EndTime.
// Several rules for the same zone and weekday combine by union.
type WeeklyRule struct {
	ID        int64
	ZoneID    int64
	Weekday   time.Weekday // 0 = Sunday
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
}

// DateException overrides the weekly pattern of a zone for one calendar date.
// When at least one exception exists for (zone, date), weekly rules are ignored that day.
type DateException struct {
	ID        int64
	ZoneID    int64
	Date      time.Time // calendar date, midnight UTC
	StartTime types.TimeString
	EndTime   types.TimeString
	Note      *string
	CreatedAt time.Time
}

// StaffZoneAssignment declares that a staff member may serve a zone on a weekday
// between StartTime and EndTime.
type StaffZoneAssignment struct {
	ID        int64
	StaffID   int64
	ZoneID    int64
	Weekday   time.Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
}

// Staff is an internal salesperson who takes appointments
type Staff struct {
	ID        int64
	Name      string
	Email     *string
	CreatedAt time.Time
}

// ZoneSelection is the server-side zone choice of a staff member for one day.
// It locks physical bookings of that day to the selected zone.
type ZoneSelection struct {
	StaffID   int64
	Date      time.Time // calendar date, midnight UTC
	ZoneID    int64
	UpdatedAt time.Time
}

// TimeRangeValid reports whether start is strictly before end
func TimeRangeValid(start, end types.TimeString) bool {
	return start.Validate() == nil && end.Validate() == nil && start.IsBefore(end)
}

// ScheduleFilter selects rows of the schedule tables
type ScheduleFilter struct {
	ZoneID  *int64
	StaffID *int64
	From    *time.Time // inclusive calendar date
	To      *time.Time // inclusive calendar date
}
