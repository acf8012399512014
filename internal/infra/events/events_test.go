package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

func TestNewBookingEvent(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	appt := &domain.Appointment{
		ID:          7,
		StaffID:     2,
		ZoneID:      3,
		MeetingMode: domain.ModeVisio,
		Start:       time.Date(2025, 1, 6, 10, 0, 0, 0, paris),
		End:         time.Date(2025, 1, 6, 10, 30, 0, 0, paris),
		ClientName:  "Chez Paul",
	}

	ev := NewBookingEvent(TypeBookingCreated, appt, time.Date(2025, 1, 1, 8, 0, 0, 0, paris))
	assert.Equal(t, TypeBookingCreated, ev.Type)
	assert.Equal(t, int64(7), ev.AppointmentID)
	assert.Equal(t, time.UTC, ev.Start.Location())
	assert.Equal(t, 9, ev.Start.Hour())

	raw, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"meeting_mode":"visio"`)
	assert.Contains(t, string(raw), `"start":"2025-01-06T09:00:00Z"`)
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.Publish(context.Background(), BookingEvent{Type: TypeBookingCancelled}))
	assert.NoError(t, p.Close())
}
