package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/pkg/types"
)

var monday = time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)

func at(hhmm string) time.Time {
	return types.MustTimeString(hhmm).On(monday, time.UTC)
}

func iv(from, to string) Interval {
	return Interval{Start: at(from), End: at(to)}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{
			name: "overlapping and touching merge",
			in:   []Interval{iv("10:00", "12:00"), iv("09:00", "10:00"), iv("11:00", "13:00")},
			want: []Interval{iv("09:00", "13:00")},
		},
		{
			name: "duplicates collapse",
			in:   []Interval{iv("09:00", "10:00"), iv("09:00", "10:00")},
			want: []Interval{iv("09:00", "10:00")},
		},
		{
			name: "zero length and inverted are dropped",
			in:   []Interval{iv("09:00", "09:00"), iv("12:00", "11:00"), iv("14:00", "15:00")},
			want: []Interval{iv("14:00", "15:00")},
		},
		{
			name: "disjoint stay sorted",
			in:   []Interval{iv("14:00", "15:00"), iv("09:00", "10:00")},
			want: []Interval{iv("09:00", "10:00"), iv("14:00", "15:00")},
		},
		{
			name: "empty",
			in:   nil,
			want: []Interval{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Union(tt.in))
		})
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name  string
		spans []Interval
		busy  []Interval
		want  []Interval
	}{
		{
			name:  "hole in the middle",
			spans: []Interval{iv("09:00", "18:00")},
			busy:  []Interval{iv("10:00", "10:30")},
			want:  []Interval{iv("09:00", "10:00"), iv("10:30", "18:00")},
		},
		{
			name:  "busy partially outside span",
			spans: []Interval{iv("09:00", "12:00")},
			busy:  []Interval{iv("08:00", "09:30"), iv("11:30", "13:00")},
			want:  []Interval{iv("09:30", "11:30")},
		},
		{
			name:  "busy covers everything",
			spans: []Interval{iv("09:00", "12:00")},
			busy:  []Interval{iv("08:00", "13:00")},
			want:  []Interval{},
		},
		{
			name:  "busy spanning two spans",
			spans: []Interval{iv("09:00", "11:00"), iv("14:00", "16:00")},
			busy:  []Interval{iv("10:00", "15:00")},
			want:  []Interval{iv("09:00", "10:00"), iv("15:00", "16:00")},
		},
		{
			name:  "back to back appointments",
			spans: []Interval{iv("09:00", "12:00")},
			busy:  []Interval{iv("10:00", "10:30"), iv("10:30", "11:00")},
			want:  []Interval{iv("09:00", "10:00"), iv("11:00", "12:00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subtract(tt.spans, tt.busy))
		})
	}
}

func TestMerge_ExcludesEveryAppointmentInstant(t *testing.T) {
	days := []DayEligibility{{
		Date:      monday,
		Intervals: []Interval{iv("09:00", "12:00"), iv("11:00", "18:00"), iv("11:00", "18:00")},
	}}
	booked := []Interval{iv("10:00", "10:30"), iv("13:00", "14:00"), iv("17:30", "19:00")}

	got := Merge(1, days, booked)
	require.Len(t, got, 1)
	free := got[0].Free

	// отсортированы и не пересекаются
	for i := 1; i < len(free); i++ {
		assert.False(t, free[i].Start.Before(free[i-1].End))
	}

	// ни одна минута занятости не попадает в свободное время
	for _, b := range booked {
		for m := b.Start; m.Before(b.End); m = m.Add(time.Minute) {
			for _, f := range free {
				inside := !m.Before(f.Start) && m.Before(f.End)
				assert.False(t, inside, "instant %s offered", m.Format(domain.TimeFormat))
			}
		}
	}

	assert.Equal(t, []domain.FreeInterval{
		{StaffID: 1, Start: at("09:00"), End: at("10:00"), BeforeBooking: true},
		{StaffID: 1, Start: at("10:30"), End: at("13:00"), AfterBooking: true, BeforeBooking: true},
		{StaffID: 1, Start: at("14:00"), End: at("17:30"), AfterBooking: true, BeforeBooking: true},
	}, free)
}

func TestCovers(t *testing.T) {
	intervals := []Interval{iv("09:00", "10:00"), iv("10:00", "12:00")}

	assert.True(t, Covers(intervals, at("09:30"), at("10:30")))
	assert.False(t, Covers(intervals, at("11:30"), at("12:30")))
}
