package get_zone_options

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/engine/zones"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/settings"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-ZoneBooking/pkg/logger"
	"github.com/m04kA/SMC-ZoneBooking/pkg/types"
)

func zoneNames(list []*domain.Zone) []string {
	out := make([]string, 0, len(list))
	for _, z := range list {
		out = append(out, z.Name)
	}
	return out
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	db, qb := storagetest.Open(t)
	sched := schedule.NewRepository(db, qb)
	bookings := booking.NewRepository(db, qb)
	uc := NewUseCase(settings.NewRepository(db, qb), sched, bookings, loc, logger.Discard())

	staff, err := sched.CreateStaff(ctx, &domain.Staff{Name: "Alice"})
	require.NoError(t, err)
	zoneIDs := map[string]int64{}
	for _, name := range []string{"Paris", "Lyon", "Visio"} {
		z, err := sched.CreateZone(ctx, &domain.Zone{Name: name})
		require.NoError(t, err)
		zoneIDs[name] = z.ID
		_, err = sched.CreateAssignment(ctx, &domain.StaffZoneAssignment{
			StaffID: staff.ID, ZoneID: z.ID, Weekday: time.Monday,
			StartTime: types.MustTimeString("09:00"), EndTime: types.MustTimeString("18:00"),
		})
		require.NoError(t, err)
	}

	at := func(hour, min int) time.Time { return time.Date(2026, 10, 19, hour, min, 0, 0, loc) }

	resp, err := uc.Execute(ctx, &Request{Start: at(9, 0), StaffID: staff.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lyon", "Paris"}, zoneNames(resp.Zones), "visio is never offered for in-person meetings")
	assert.False(t, resp.Locked)
	assert.True(t, resp.End.Equal(at(9, 30)))

	appt, err := bookings.Create(ctx, &domain.Appointment{
		Start: at(9, 0), End: at(10, 0), ZoneID: zoneIDs["Paris"], StaffID: staff.ID,
		MeetingMode: domain.ModePhysical, ClientName: "Le Bistrot",
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		req    *Request
		zones  []string
		reason zones.LockReason
	}{
		{"overlapping appointment", &Request{Start: at(9, 30), StaffID: staff.ID}, []string{"Paris"}, zones.LockOverlap},
		{"same half-day", &Request{Start: at(11, 0), StaffID: staff.ID}, []string{"Paris"}, zones.LockHalfDay},
		{"afternoon is free", &Request{Start: at(14, 0), StaffID: staff.ID}, []string{"Lyon", "Paris"}, zones.LockNone},
		{"visio", &Request{Start: at(11, 0), StaffID: staff.ID, Mode: domain.ModeVisio}, []string{"Visio"}, zones.LockVisio},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.zones, zoneNames(resp.Zones))
			assert.Equal(t, tt.reason, resp.Reason)
		})
	}

	resp, err = uc.Execute(ctx, &Request{Start: at(11, 0), StaffID: staff.ID})
	require.NoError(t, err)
	require.NotNil(t, resp.AppointmentID)
	assert.Equal(t, appt.ID, *resp.AppointmentID)

	_, err = sched.UpsertSelection(ctx, &domain.ZoneSelection{
		StaffID: staff.ID, Date: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), ZoneID: zoneIDs["Lyon"],
	})
	require.NoError(t, err)
	resp, err = uc.Execute(ctx, &Request{Start: at(14, 0), StaffID: staff.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lyon"}, zoneNames(resp.Zones))
	assert.Equal(t, zones.LockZoneSelection, resp.Reason)

	_, err = uc.Execute(ctx, &Request{Start: at(9, 0), StaffID: 99})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = uc.Execute(ctx, &Request{Start: at(9, 0)})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
