package availability

import (
	"slices"
	"time"
)

// Interval is a half-open time range [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the interval has positive length
func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}

// Contains reports whether [start, end) lies inside the interval
func (i Interval) Contains(start, end time.Time) bool {
	return !start.Before(i.Start) && !end.After(i.End)
}

func compareIntervals(a, b Interval) int {
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	return a.End.Compare(b.End)
}

// Union merges overlapping and touching intervals.
// Zero-length and inverted intervals are discarded, duplicates collapse.
func Union(intervals []Interval) []Interval {
	valid := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Valid() {
			valid = append(valid, iv)
		}
	}
	slices.SortFunc(valid, compareIntervals)

	out := make([]Interval, 0, len(valid))
	for _, iv := range valid {
		if n := len(out); n > 0 && !iv.Start.After(out[n-1].End) {
			if iv.End.After(out[n-1].End) {
				out[n-1].End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Subtract removes busy time from spans. Both inputs may be unsorted;
// busy intervals partially outside the spans are clipped.
func Subtract(spans, busy []Interval) []Interval {
	spans = Union(spans)
	busy = Union(busy)

	out := make([]Interval, 0, len(spans))
	j := 0
	for _, span := range spans {
		// занятость, закончившаяся до начала отрезка, больше не нужна
		for j < len(busy) && !busy[j].End.After(span.Start) {
			j++
		}

		cur := span.Start
		for k := j; k < len(busy) && busy[k].Start.Before(span.End); k++ {
			if busy[k].Start.After(cur) {
				out = append(out, Interval{Start: cur, End: busy[k].Start})
			}
			if busy[k].End.After(cur) {
				cur = busy[k].End
			}
		}
		if cur.Before(span.End) {
			out = append(out, Interval{Start: cur, End: span.End})
		}
	}
	return out
}

// Intersect returns the overlap of a and b, if any
func Intersect(a, b Interval) (Interval, bool) {
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}
	iv := Interval{Start: start, End: end}
	return iv, iv.Valid()
}

// Covers reports whether [start, end) fits entirely in one of the intervals
func Covers(intervals []Interval, start, end time.Time) bool {
	for _, iv := range Union(intervals) {
		if iv.Contains(start, end) {
			return true
		}
	}
	return false
}
