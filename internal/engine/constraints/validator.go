package constraints

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// ErrNoCandidates no staff member was proposed for validation
var ErrNoCandidates = fmt.Errorf("%w: constraints: no candidate staff", domain.ErrValidation)

// Rules are the numeric limits applied by Validate
type Rules struct {
	VisioGap            time.Duration
	PhysicalSecondGap   time.Duration
	PhysicalCapacity    int
	HalfDayBoundaryHour int
	Location            *time.Location
}

// RulesFromSettings resolves the limits from settings
func RulesFromSettings(s *domain.Settings, loc *time.Location) Rules {
	return Rules{
		VisioGap:            time.Duration(s.VisioGap()) * time.Minute,
		PhysicalSecondGap:   time.Duration(s.PhysicalSecondGap()) * time.Minute,
		PhysicalCapacity:    s.PhysicalCapacity(),
		HalfDayBoundaryHour: s.HalfDayBoundary(),
		Location:            loc,
	}
}

// Input is a proposed booking and the existing appointments of the day
type Input struct {
	Start      time.Time
	End        time.Time
	Mode       domain.MeetingMode
	Candidates []int64
	// Appointments of the candidates on the day of Start
	Appointments []*domain.Appointment
	Rules        Rules
}

// Validate returns the candidates that satisfy the spacing and capacity rules, in
// ascending order. When none qualifies it returns a *domain.Violation: capacity if
// every candidate is at capacity, spacing otherwise. Validate never mutates its input.
func Validate(in Input) ([]int64, error) {
	candidates := slices.Clone(in.Candidates)
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	loc := in.Rules.Location
	if loc == nil {
		loc = time.UTC
	}

	var (
		eligible   []int64
		violations []*domain.Violation
	)
	for _, staffID := range candidates {
		var v *domain.Violation
		if in.Mode == domain.ModeVisio {
			v = checkVisio(in, staffID)
		} else {
			v = checkPhysical(in, staffID, loc)
		}

		if v != nil {
			violations = append(violations, v)
			continue
		}
		eligible = append(eligible, staffID)
	}

	if len(eligible) > 0 {
		return eligible, nil
	}
	return nil, pickViolation(violations)
}

// checkVisio: a prior appointment ending within [start - gap, start] disqualifies the staff member
func checkVisio(in Input, staffID int64) *domain.Violation {
	windowStart := in.Start.Add(-in.Rules.VisioGap)
	for _, a := range in.Appointments {
		if a.StaffID != staffID {
			continue
		}
		if !a.End.Before(windowStart) && !a.End.After(in.Start) {
			return &domain.Violation{
				Kind:    domain.ErrSpacing,
				StaffID: staffID,
				Reason: fmt.Sprintf("appointment %d ends at %s, less than %s before %s",
					a.ID, a.End.In(locOrUTC(in.Rules.Location)).Format(domain.TimeFormat), in.Rules.VisioGap,
					in.Start.In(locOrUTC(in.Rules.Location)).Format(domain.TimeFormat)),
			}
		}
	}
	return nil
}

// CapacityViolation reports a capacity violation when staffID already holds the half-day
// limit of in-person appointments around in.Start. Time overlap plays no part in it.
func CapacityViolation(in Input, staffID int64) *domain.Violation {
	loc := locOrUTC(in.Rules.Location)
	sameHalf := physicalSameHalf(in, staffID, loc)
	if len(sameHalf) < in.Rules.PhysicalCapacity {
		return nil
	}
	return &domain.Violation{
		Kind:    domain.ErrCapacity,
		StaffID: staffID,
		Reason: fmt.Sprintf("%d in-person appointments already booked this %s (limit %d)",
			len(sameHalf), domain.HalfDayOf(in.Start, loc, in.Rules.HalfDayBoundaryHour), in.Rules.PhysicalCapacity),
	}
}

func physicalSameHalf(in Input, staffID int64, loc *time.Location) []*domain.Appointment {
	var sameHalf []*domain.Appointment
	for _, a := range in.Appointments {
		if a.StaffID == staffID && a.IsPhysical() &&
			domain.SameHalfDay(a.Start, in.Start, loc, in.Rules.HalfDayBoundaryHour) {
			sameHalf = append(sameHalf, a)
		}
	}
	return sameHalf
}

// checkPhysical applies the half-day capacity and the second-meeting gap
func checkPhysical(in Input, staffID int64, loc *time.Location) *domain.Violation {
	if v := CapacityViolation(in, staffID); v != nil {
		return v
	}
	sameHalf := physicalSameHalf(in, staffID, loc)

	if len(sameHalf) == 1 {
		prior := sameHalf[0]
		if in.Start.After(prior.End) && in.Start.Sub(prior.End) < in.Rules.PhysicalSecondGap {
			return &domain.Violation{
				Kind:    domain.ErrSpacing,
				StaffID: staffID,
				Reason: fmt.Sprintf("second in-person appointment needs %s after %s, got %s",
					in.Rules.PhysicalSecondGap, prior.End.In(loc).Format(domain.TimeFormat), in.Start.Sub(prior.End)),
			}
		}
	}
	return nil
}

func pickViolation(violations []*domain.Violation) error {
	for _, v := range violations {
		if !errors.Is(v, domain.ErrCapacity) {
			return v
		}
	}
	return violations[0]
}

func locOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

// Overlapping returns the appointment of staffID that strictly overlaps [start, end), or nil
func Overlapping(appointments []*domain.Appointment, staffID int64, start, end time.Time) *domain.Appointment {
	for _, a := range appointments {
		if a.StaffID == staffID && a.Overlaps(start, end) {
			return a
		}
	}
	return nil
}

// DayLoad counts the appointments of each staff member
func DayLoad(appointments []*domain.Appointment) map[int64]int {
	load := make(map[int64]int)
	for _, a := range appointments {
		load[a.StaffID]++
	}
	return load
}

// LeastLoaded picks the candidate with the fewest appointments; ties go to the lowest id
func LeastLoaded(candidates []int64, load map[int64]int) (int64, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	best := candidates[0]
	for _, id := range candidates[1:] {
		if load[id] < load[best] || (load[id] == load[best] && id < best) {
			best = id
		}
	}
	return best, true
}
