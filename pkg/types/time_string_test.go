package types

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hh:mm", input: "09:30", want: "09:30"},
		{name: "postgres time", input: "18:00:00", want: "18:00"},
		{name: "spaces", input: " 07:05 ", want: "07:05"},
		{name: "garbage", input: "9h30", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
		{name: "end of day", input: "24:00", want: EndOfDay},
		{name: "postgres end of day", input: "24:00:00", want: EndOfDay},
		{name: "past end of day", input: "24:30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	_, err = TimeString("23:50").AddMinutes(15)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	got, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, EndOfDay, got)
	assert.Equal(t, 1440, got.Minutes())

	_, err = EndOfDay.AddMinutes(1)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_On(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	date := time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC)
	got := TimeString("13:00").On(date, loc)

	assert.Equal(t, 13, got.Hour())
	assert.Equal(t, 30, got.Day())
	assert.Equal(t, loc, got.Location())

	midnight := EndOfDay.On(date, loc)
	assert.True(t, midnight.Equal(time.Date(2025, time.March, 31, 0, 0, 0, 0, loc)))
	assert.True(t, TimeString("23:00").IsBefore(EndOfDay))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
