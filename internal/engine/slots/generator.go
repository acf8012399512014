package slots

import (
	"iter"
	"slices"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

// Params configures slot generation for one query
type Params struct {
	// Mode of the requested meeting; empty means "any mode"
	Mode domain.MeetingMode

	Step             time.Duration
	Duration         time.Duration
	PhysicalDuration time.Duration
	VisioDuration    time.Duration
	BufferBefore     time.Duration
	BufferAfter      time.Duration
	Notice           time.Duration
	Now              time.Time
	ZoneID           *int64
}

// ParamsFromSettings resolves generation parameters for a mode through the settings fallback chain
func ParamsFromSettings(s *domain.Settings, mode domain.MeetingMode, now time.Time, zoneID *int64) Params {
	durationMode := mode
	if !mode.Valid() {
		durationMode = ""
	}

	p := Params{
		Mode:             mode,
		Step:             minutes(s.Step()),
		PhysicalDuration: minutes(s.DurationFor(domain.ModePhysical)),
		VisioDuration:    minutes(s.DurationFor(domain.ModeVisio)),
		BufferBefore:     minutes(s.BufferBeforeFor(durationMode)),
		BufferAfter:      minutes(s.BufferAfterFor(durationMode)),
		Notice:           minutes(s.Notice()),
		Now:              now,
		ZoneID:           zoneID,
	}

	switch mode {
	case domain.ModePhysical:
		p.Duration = p.PhysicalDuration
	case domain.ModeVisio:
		p.Duration = p.VisioDuration
	default:
		p.Duration = minutes(defaultDuration(s))
	}
	return p
}

func defaultDuration(s *domain.Settings) int {
	if s.DefaultDurationMin != nil {
		return *s.DefaultDurationMin
	}
	return domain.DefaultDurationMinutes
}

func minutes(m int) time.Duration {
	return time.Duration(m) * time.Minute
}

// Generate lazily yields the candidates of one free interval. The sequence is finite
// and may be iterated any number of times.
//
// Starts lie on the step grid anchored at the interval start. An interval shorter
// than the physical duration is still offered, flagged visio-only, with the visio
// duration. Otherwise the last start leaves room for a full in-person meeting.
func Generate(free domain.FreeInterval, p Params) iter.Seq[domain.SlotCandidate] {
	return func(yield func(domain.SlotCandidate) bool) {
		if p.Step <= 0 || !free.Start.Before(free.End) {
			return
		}

		duration := p.Duration
		fit := duration
		visioOnly := p.PhysicalDuration > 0 && free.Duration() < p.PhysicalDuration

		switch {
		case visioOnly:
			if p.Mode == domain.ModePhysical {
				return
			}
			duration = p.VisioDuration
			fit = duration
		case p.Mode != domain.ModeVisio && p.PhysicalDuration > fit:
			fit = p.PhysicalDuration
		}
		if duration <= 0 {
			return
		}

		earliest := free.Start
		if free.AfterBooking {
			earliest = earliest.Add(p.BufferBefore)
		}
		if minStart := p.Now.Add(p.Notice); !p.Now.IsZero() && minStart.After(earliest) {
			earliest = minStart
		}

		latestEnd := free.End
		if free.BeforeBooking {
			latestEnd = latestEnd.Add(-p.BufferAfter)
		}

		start := free.Start
		if earliest.After(start) {
			steps := (earliest.Sub(start) + p.Step - 1) / p.Step
			start = start.Add(steps * p.Step)
		}

		for ; !start.Add(fit).After(latestEnd); start = start.Add(p.Step) {
			candidate := domain.SlotCandidate{
				Start:     start,
				End:       start.Add(duration),
				ZoneID:    p.ZoneID,
				StaffIDs:  []int64{free.StaffID},
				VisioOnly: visioOnly,
			}
			if !yield(candidate) {
				return
			}
		}
	}
}

type slotKey struct {
	start, end int64
	visioOnly  bool
}

// Collect generates candidates for all intervals and merges identical slots of
// different staff members into one candidate, ordered by start time
func Collect(free []domain.FreeInterval, p Params) []domain.SlotCandidate {
	index := make(map[slotKey]int)
	var out []domain.SlotCandidate

	for _, f := range free {
		for c := range Generate(f, p) {
			key := slotKey{start: c.Start.UnixNano(), end: c.End.UnixNano(), visioOnly: c.VisioOnly}
			if i, ok := index[key]; ok {
				if !slices.Contains(out[i].StaffIDs, f.StaffID) {
					out[i].StaffIDs = append(out[i].StaffIDs, f.StaffID)
				}
				continue
			}
			index[key] = len(out)
			out = append(out, c)
		}
	}

	for i := range out {
		slices.Sort(out[i].StaffIDs)
	}
	slices.SortStableFunc(out, func(a, b domain.SlotCandidate) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		if c := a.End.Compare(b.End); c != 0 {
			return c
		}
		switch {
		case a.VisioOnly == b.VisioOnly:
			return 0
		case !a.VisioOnly:
			return -1
		default:
			return 1
		}
	})
	return out
}
