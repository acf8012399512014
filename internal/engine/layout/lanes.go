package layout

import (
	"cmp"
	"slices"
	"time"
)

// Event is something to place on a day column
type Event struct {
	ID    string
	Start time.Time
	End   time.Time
	// Track pins the event to a fixed lane (staff id); nil means free placement
	Track *int64
}

// Placed is an event with its lane assignment
type Placed struct {
	Event
	Lane       int
	LanesCount int
}

// Pack assigns lanes to the events of a day.
//
// Tracked events take fixed lanes, one per distinct track in ascending order.
// Untracked events sorted by (start, end) go greedily into lanes after the tracks:
// the first such lane whose last event ends no later than the event start, which
// minimises the number of extra lanes. LanesCount is the number of lanes of the
// whole day. Output follows the (start, end, id) order.
func Pack(events []Event) []Placed {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b Event) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		if c := a.End.Compare(b.End); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	tracks := trackLanes(sorted)
	out := make([]Placed, 0, len(sorted))
	var laneEnds []time.Time

	for _, e := range sorted {
		if e.Track != nil {
			lane, _ := slices.BinarySearch(tracks, *e.Track)
			out = append(out, Placed{Event: e, Lane: lane})
			continue
		}

		lane := -1
		for i, end := range laneEnds {
			if !end.After(e.Start) {
				lane = i
				break
			}
		}
		if lane == -1 {
			lane = len(laneEnds)
			laneEnds = append(laneEnds, e.End)
		} else {
			laneEnds[lane] = e.End
		}
		out = append(out, Placed{Event: e, Lane: len(tracks) + lane})
	}

	for i := range out {
		out[i].LanesCount = len(tracks) + len(laneEnds)
	}
	return out
}

// trackLanes returns the distinct tracks in ascending order
func trackLanes(events []Event) []int64 {
	tracks := make([]int64, 0, len(events))
	for _, e := range events {
		if e.Track != nil {
			tracks = append(tracks, *e.Track)
		}
	}
	slices.Sort(tracks)
	return slices.Compact(tracks)
}
