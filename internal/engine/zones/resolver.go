package zones

import (
	"cmp"
	"slices"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// LockReason explains why a single zone was imposed
type LockReason string

const (
	LockNone          LockReason = ""
	LockOverlap       LockReason = "overlapping_appointment"
	LockHalfDay       LockReason = "half_day_appointment"
	LockZoneSelection LockReason = "zone_selection"
	LockVisio         LockReason = "visio"
)

// Input is everything the resolver needs for one slot and one staff member
type Input struct {
	Start   time.Time
	End     time.Time
	StaffID int64
	Mode    domain.MeetingMode

	// Appointments of the day; other staff members are ignored
	Appointments []*domain.Appointment
	Assignments  []*domain.StaffZoneAssignment
	Zones        []*domain.Zone
	Selection    *domain.ZoneSelection
	NominalZone  *int64

	Location            *time.Location
	HalfDayBoundaryHour int
}

// Resolution is the ordered set of zones offered for the slot
type Resolution struct {
	Zones         []*domain.Zone
	Locked        bool
	Reason        LockReason
	AppointmentID *int64 // the appointment that imposed the lock
}

// Contains reports whether the zone id is among the offered zones
func (r Resolution) Contains(zoneID int64) bool {
	for _, z := range r.Zones {
		if z.ID == zoneID {
			return true
		}
	}
	return false
}

// Resolve determines which zones may be booked for a slot.
//
// For physical meetings a physical appointment of the staff member overlapping the
// slot locks its zone; otherwise a physical appointment anywhere in the same half-day
// does; otherwise the day's zone selection does. Without a lock the staff member's
// zones for the weekday are offered, falling back to the nominal zone.
// The visio zone is never offered for a physical meeting.
func Resolve(in Input) Resolution {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	byID := domain.ZoneIndex(in.Zones)

	if in.Mode == domain.ModeVisio {
		if visio := domain.FindVisioZone(in.Zones); visio != nil {
			return Resolution{Zones: []*domain.Zone{visio}, Locked: true, Reason: LockVisio}
		}
		return Resolution{Zones: weekdayZones(in, loc, byID, false)}
	}

	physical := staffPhysical(in.Appointments, in.StaffID)

	for _, a := range physical {
		if a.Overlaps(in.Start, in.End) {
			if res, ok := locked(byID, a.ZoneID, LockOverlap, &a.ID); ok {
				return res
			}
		}
	}

	for _, a := range physical {
		if domain.SameHalfDay(a.Start, in.Start, loc, in.HalfDayBoundaryHour) {
			if res, ok := locked(byID, a.ZoneID, LockHalfDay, &a.ID); ok {
				return res
			}
		}
	}

	if sel := in.Selection; sel != nil && sel.StaffID == in.StaffID && sel.Date.Equal(domain.DateOf(in.Start, loc)) {
		if res, ok := locked(byID, sel.ZoneID, LockZoneSelection, nil); ok {
			return res
		}
	}

	if offered := weekdayZones(in, loc, byID, true); len(offered) > 0 {
		return Resolution{Zones: offered}
	}

	if in.NominalZone != nil {
		if z, ok := byID[*in.NominalZone]; ok && !z.IsVisio() {
			return Resolution{Zones: []*domain.Zone{z}}
		}
	}
	return Resolution{Zones: []*domain.Zone{}}
}

func locked(byID map[int64]*domain.Zone, zoneID int64, reason LockReason, appointmentID *int64) (Resolution, bool) {
	z, ok := byID[zoneID]
	// визио-зона не может заблокировать очную встречу
	if !ok || z.IsVisio() {
		return Resolution{}, false
	}
	res := Resolution{Zones: []*domain.Zone{z}, Locked: true, Reason: reason}
	if appointmentID != nil {
		id := *appointmentID
		res.AppointmentID = &id
	}
	return res, true
}

func staffPhysical(appointments []*domain.Appointment, staffID int64) []*domain.Appointment {
	out := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.StaffID == staffID && a.IsPhysical() {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Appointment) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func weekdayZones(in Input, loc *time.Location, byID map[int64]*domain.Zone, excludeVisio bool) []*domain.Zone {
	weekday := in.Start.In(loc).Weekday()

	seen := make(map[int64]bool)
	out := make([]*domain.Zone, 0)
	for _, a := range in.Assignments {
		if a.StaffID != in.StaffID || a.Weekday != weekday || seen[a.ZoneID] {
			continue
		}
		z, ok := byID[a.ZoneID]
		if !ok || (excludeVisio && z.IsVisio()) {
			continue
		}
		seen[a.ZoneID] = true
		out = append(out, z)
	}

	slices.SortFunc(out, func(a, b *domain.Zone) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
