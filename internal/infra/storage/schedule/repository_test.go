package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage"
	"github.com/m04kA/SMC-ZoneBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ZoneBooking/pkg/ptr"
	"github.com/m04kA/SMC-ZoneBooking/pkg/types"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := storage.Open(context.Background(), storage.Options{Driver: psqlbuilder.SQLite, Migrate: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db, psqlbuilder.New(psqlbuilder.SQLite))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_Zones(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	paris, err := repo.CreateZone(ctx, &domain.Zone{Name: " Paris ", Color: ptr.Ptr("#ff0000")})
	require.NoError(t, err)
	assert.Equal(t, "Paris", paris.Name)

	_, err = repo.CreateZone(ctx, &domain.Zone{Name: "paris"})
	assert.ErrorIs(t, err, ErrDuplicateZone, "names are unique case-insensitively")

	_, err = repo.CreateZone(ctx, &domain.Zone{Name: "Lyon"})
	require.NoError(t, err)

	zones, err := repo.ListZones(ctx)
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Equal(t, "Lyon", zones[0].Name)

	paris.Name = "Paris Centre"
	updated, err := repo.UpdateZone(ctx, paris)
	require.NoError(t, err)
	assert.Equal(t, "Paris Centre", updated.Name)
	assert.Equal(t, "#ff0000", ptr.Deref(updated.Color, ""))

	_, err = repo.UpdateZone(ctx, &domain.Zone{ID: 99, Name: "x"})
	assert.ErrorIs(t, err, ErrZoneNotFound)

	_, err = repo.GetZone(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_DeleteZoneInUse(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	zone, err := repo.CreateZone(ctx, &domain.Zone{Name: "Paris"})
	require.NoError(t, err)
	rule, err := repo.CreateRule(ctx, &domain.WeeklyRule{
		ZoneID: zone.ID, Weekday: time.Monday,
		StartTime: types.MustTimeString("09:00"), EndTime: types.MustTimeString("18:00"),
	})
	require.NoError(t, err)

	inUse, err := repo.ZoneInUse(ctx, zone.ID)
	require.NoError(t, err)
	assert.True(t, inUse)
	assert.ErrorIs(t, repo.DeleteZone(ctx, zone.ID), ErrZoneInUse)

	require.NoError(t, repo.DeleteRule(ctx, rule.ID))
	inUse, err = repo.ZoneInUse(ctx, zone.ID)
	require.NoError(t, err)
	assert.False(t, inUse)
	require.NoError(t, repo.DeleteZone(ctx, zone.ID))
	assert.ErrorIs(t, repo.DeleteZone(ctx, zone.ID), ErrZoneNotFound)
}

func TestRepository_Rules(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	zone, err := repo.CreateZone(ctx, &domain.Zone{Name: "Paris"})
	require.NoError(t, err)

	for _, wd := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday} {
		_, err := repo.CreateRule(ctx, &domain.WeeklyRule{
			ZoneID: zone.ID, Weekday: wd,
			StartTime: types.MustTimeString("09:00"), EndTime: types.MustTimeString("12:00"),
		})
		require.NoError(t, err)
	}

	_, err = repo.CreateRule(ctx, &domain.WeeklyRule{
		ZoneID: 99, Weekday: time.Monday,
		StartTime: types.MustTimeString("09:00"), EndTime: types.MustTimeString("12:00"),
	})
	assert.ErrorIs(t, err, ErrReference)

	rules, err := repo.ListRules(ctx, domain.ScheduleFilter{ZoneID: &zone.ID})
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, time.Monday, rules[0].Weekday)
	assert.Equal(t, types.TimeString("09:00"), rules[0].StartTime)

	rules[0].EndTime = types.MustTimeString("18:00")
	updated, err := repo.UpdateRule(ctx, rules[0])
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), updated.EndTime)

	removed, err := repo.DeleteRulesForWeekdays(ctx, zone.ID, []time.Weekday{time.Monday, time.Tuesday})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	rules, err = repo.ListRules(ctx, domain.ScheduleFilter{})
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, time.Wednesday, rules[0].Weekday)
}

func TestRepository_Exceptions(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	zone, err := repo.CreateZone(ctx, &domain.Zone{Name: "Paris"})
	require.NoError(t, err)

	for _, d := range []time.Time{date(2025, 1, 6), date(2025, 1, 7), date(2025, 1, 20)} {
		_, err := repo.CreateException(ctx, &domain.DateException{
			ZoneID: zone.ID, Date: d,
			StartTime: types.MustTimeString("10:00"), EndTime: types.MustTimeString("12:00"),
			Note: ptr.Ptr("salon"),
		})
		require.NoError(t, err)
	}

	from, to := date(2025, 1, 6), date(2025, 1, 7)
	excs, err := repo.ListExceptions(ctx, domain.ScheduleFilter{ZoneID: &zone.ID, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, excs, 2)
	assert.True(t, excs[0].Date.Equal(date(2025, 1, 6)))
	assert.True(t, excs[1].Date.Equal(date(2025, 1, 7)))
	assert.Equal(t, "salon", ptr.Deref(excs[0].Note, ""))

	excs[0].Date = date(2025, 2, 1)
	updated, err := repo.UpdateException(ctx, excs[0])
	require.NoError(t, err)
	assert.True(t, updated.Date.Equal(date(2025, 2, 1)))

	require.NoError(t, repo.DeleteException(ctx, updated.ID))
	_, err = repo.GetException(ctx, updated.ID)
	assert.ErrorIs(t, err, ErrExceptionNotFound)
}

func TestRepository_StaffAndAssignments(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	zone, err := repo.CreateZone(ctx, &domain.Zone{Name: "Paris"})
	require.NoError(t, err)
	alice, err := repo.CreateStaff(ctx, &domain.Staff{Name: "Alice", Email: ptr.Ptr("alice@example.com")})
	require.NoError(t, err)
	bob, err := repo.CreateStaff(ctx, &domain.Staff{Name: "Bob"})
	require.NoError(t, err)

	staff, err := repo.ListStaff(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, "Alice", staff[0].Name)

	_, err = repo.GetStaff(ctx, 99)
	assert.ErrorIs(t, err, ErrStaffNotFound)

	for _, s := range []*domain.Staff{alice, bob} {
		_, err := repo.CreateAssignment(ctx, &domain.StaffZoneAssignment{
			StaffID: s.ID, ZoneID: zone.ID, Weekday: time.Monday,
			StartTime: types.MustTimeString("09:00"), EndTime: types.MustTimeString("18:00"),
		})
		require.NoError(t, err)
	}

	list, err := repo.ListAssignments(ctx, domain.ScheduleFilter{StaffID: &bob.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, bob.ID, list[0].StaffID)

	list[0].StartTime = types.MustTimeString("13:00")
	updated, err := repo.UpdateAssignment(ctx, list[0])
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("13:00"), updated.StartTime)

	require.NoError(t, repo.DeleteAssignment(ctx, updated.ID))
	assert.ErrorIs(t, repo.DeleteAssignment(ctx, updated.ID), ErrAssignmentNotFound)
}

func TestRepository_Selections(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	paris, err := repo.CreateZone(ctx, &domain.Zone{Name: "Paris"})
	require.NoError(t, err)
	lyon, err := repo.CreateZone(ctx, &domain.Zone{Name: "Lyon"})
	require.NoError(t, err)
	alice, err := repo.CreateStaff(ctx, &domain.Staff{Name: "Alice"})
	require.NoError(t, err)

	day := date(2025, 1, 6)
	_, err = repo.GetSelection(ctx, alice.ID, day)
	assert.ErrorIs(t, err, ErrSelectionNotFound)

	sel, err := repo.UpsertSelection(ctx, &domain.ZoneSelection{StaffID: alice.ID, Date: day, ZoneID: paris.ID})
	require.NoError(t, err)
	assert.Equal(t, paris.ID, sel.ZoneID)

	sel, err = repo.UpsertSelection(ctx, &domain.ZoneSelection{StaffID: alice.ID, Date: day, ZoneID: lyon.ID})
	require.NoError(t, err)
	assert.Equal(t, lyon.ID, sel.ZoneID, "second selection replaces the first")
	assert.True(t, sel.Date.Equal(day))

	list, err := repo.ListSelections(ctx, domain.ScheduleFilter{StaffID: &alice.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.DeleteSelection(ctx, alice.ID, day))
	assert.ErrorIs(t, repo.DeleteSelection(ctx, alice.ID, day), ErrSelectionNotFound)
}
