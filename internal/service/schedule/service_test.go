package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-ZoneBooking/pkg/logger"
	"github.com/m04kA/SMC-ZoneBooking/pkg/ptr"
	"github.com/m04kA/SMC-ZoneBooking/pkg/txmanager"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, qb := storagetest.Open(t)
	return NewService(schedule.NewRepository(db, qb), txmanager.NewTransactionManager(db, false), logger.Discard())
}

func TestService_Zones(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	paris, err := svc.CreateZone(ctx, &models.ZoneRequest{Name: "Paris", Color: ptr.Ptr("#ff0000")})
	require.NoError(t, err)
	assert.False(t, paris.IsVisio)

	visio, err := svc.CreateZone(ctx, &models.ZoneRequest{Name: "Visio"})
	require.NoError(t, err)
	assert.True(t, visio.IsVisio)

	_, err = svc.CreateZone(ctx, &models.ZoneRequest{Name: "paris"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateZone(ctx, &models.ZoneRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateZone(ctx, visio.ID, &models.ZoneRequest{Name: "Remote"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	updated, err := svc.UpdateZone(ctx, paris.ID, &models.ZoneRequest{Name: "Paris 8e"})
	require.NoError(t, err)
	assert.Equal(t, "Paris 8e", updated.Name)

	_, err = svc.GetZone(ctx, 42)
	assert.ErrorIs(t, err, ErrZoneNotFound)

	zones, err := svc.ListZones(ctx)
	require.NoError(t, err)
	assert.Len(t, zones, 2)
}

func TestService_DeleteZoneInUse(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	zone, err := svc.CreateZone(ctx, &models.ZoneRequest{Name: "Paris"})
	require.NoError(t, err)
	rule, err := svc.CreateRule(ctx, &models.RuleRequest{ZoneID: zone.ID, Weekday: 1, StartTime: "09:00", EndTime: "18:00"})
	require.NoError(t, err)

	err = svc.DeleteZone(ctx, zone.ID)
	assert.ErrorIs(t, err, ErrZoneInUse)

	require.NoError(t, svc.DeleteRule(ctx, rule.ID))
	require.NoError(t, svc.DeleteZone(ctx, zone.ID))

	err = svc.DeleteZone(ctx, zone.ID)
	assert.ErrorIs(t, err, ErrZoneNotFound)
}

func TestService_RuleValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	zone, err := svc.CreateZone(ctx, &models.ZoneRequest{Name: "Paris"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  models.RuleRequest
	}{
		{name: "weekday out of range", req: models.RuleRequest{ZoneID: zone.ID, Weekday: 7, StartTime: "09:00", EndTime: "18:00"}},
		{name: "end before start", req: models.RuleRequest{ZoneID: zone.ID, Weekday: 1, StartTime: "18:00", EndTime: "09:00"}},
		{name: "empty range", req: models.RuleRequest{ZoneID: zone.ID, Weekday: 1, StartTime: "09:00", EndTime: "09:00"}},
		{name: "bad time", req: models.RuleRequest{ZoneID: zone.ID, Weekday: 1, StartTime: "9h", EndTime: "18:00"}},
		{name: "unknown zone", req: models.RuleRequest{ZoneID: 42, Weekday: 1, StartTime: "09:00", EndTime: "18:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRule(ctx, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err = svc.UpdateRule(ctx, 42, &models.RuleRequest{ZoneID: zone.ID, Weekday: 1, StartTime: "09:00", EndTime: "18:00"})
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestService_GenerateWeeklyRules(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	zone, err := svc.CreateZone(ctx, &models.ZoneRequest{Name: "Paris"})
	require.NoError(t, err)
	_, err = svc.CreateRule(ctx, &models.RuleRequest{ZoneID: zone.ID, Weekday: 1, StartTime: "08:00", EndTime: "12:00"})
	require.NoError(t, err)
	_, err = svc.CreateRule(ctx, &models.RuleRequest{ZoneID: zone.ID, Weekday: 6, StartTime: "10:00", EndTime: "12:00"})
	require.NoError(t, err)

	resp, err := svc.GenerateWeeklyRules(ctx, &models.GenerateWeeklyRulesRequest{
		ZoneID:    zone.ID,
		Weekdays:  []int{1, 2, 3, 4, 5, 5},
		StartTime: "09:00:00",
		EndTime:   "18:00:00",
		Replace:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Deleted)
	assert.Len(t, resp.Rules, 5)

	rules, err := svc.ListRules(ctx, &models.ListRequest{ZoneID: &zone.ID})
	require.NoError(t, err)
	assert.Len(t, rules, 6)
	for _, r := range rules {
		if r.Weekday == 6 {
			assert.Equal(t, "10:00", r.StartTime)
			continue
		}
		assert.Equal(t, "09:00", r.StartTime)
		assert.Equal(t, "18:00", r.EndTime)
	}

	_, err = svc.GenerateWeeklyRules(ctx, &models.GenerateWeeklyRulesRequest{ZoneID: 42, Weekdays: []int{1}, StartTime: "09:00", EndTime: "18:00"})
	assert.ErrorIs(t, err, ErrZoneNotFound)

	_, err = svc.GenerateWeeklyRules(ctx, &models.GenerateWeeklyRulesRequest{ZoneID: zone.ID, StartTime: "09:00", EndTime: "18:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GenerateExceptionsRange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	zone, err := svc.CreateZone(ctx, &models.ZoneRequest{Name: "Paris"})
	require.NoError(t, err)
	// понедельник 2026-10-19, вне выбранных дней недели остается
	_, err = svc.CreateException(ctx, &models.ExceptionRequest{ZoneID: zone.ID, Date: "2026-10-19", StartTime: "10:00", EndTime: "11:00"})
	require.NoError(t, err)
	// вторник 2026-10-20, будет заменен
	_, err = svc.CreateException(ctx, &models.ExceptionRequest{ZoneID: zone.ID, Date: "2026-10-20", StartTime: "10:00", EndTime: "11:00"})
	require.NoError(t, err)

	resp, err := svc.GenerateExceptionsRange(ctx, &models.GenerateExceptionsRangeRequest{
		ZoneID:    zone.ID,
		FromDate:  "2026-10-19",
		ToDate:    "2026-11-01",
		Weekdays:  []int{2, 4},
		StartTime: "14:00",
		EndTime:   "17:00",
		Note:      ptr.Ptr("salon"),
		Replace:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Deleted)
	require.Len(t, resp.Exceptions, 4)
	assert.Equal(t, "2026-10-20", resp.Exceptions[0].Date)
	assert.Equal(t, "2026-10-29", resp.Exceptions[3].Date)

	from, to := mustDate(t, "2026-10-19"), mustDate(t, "2026-10-20")
	list, err := svc.ListExceptions(ctx, &models.ListRequest{ZoneID: &zone.ID, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "10:00", list[0].StartTime)
	assert.Equal(t, "14:00", list[1].StartTime)
}

func TestService_GenerateExceptionsRangeValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	zone, err := svc.CreateZone(ctx, &models.ZoneRequest{Name: "Paris"})
	require.NoError(t, err)

	_, err = svc.GenerateExceptionsRange(ctx, &models.GenerateExceptionsRangeRequest{
		ZoneID: zone.ID, FromDate: "2026-01-01", ToDate: "2027-06-01", StartTime: "09:00", EndTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrRangeTooLong)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.GenerateExceptionsRange(ctx, &models.GenerateExceptionsRangeRequest{
		ZoneID: zone.ID, FromDate: "2026-02-01", ToDate: "2026-01-01", StartTime: "09:00", EndTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GenerateExceptionsRange(ctx, &models.GenerateExceptionsRangeRequest{
		ZoneID: zone.ID, FromDate: "01/01/2026", ToDate: "2026-01-02", StartTime: "09:00", EndTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Selections(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	paris, err := svc.CreateZone(ctx, &models.ZoneRequest{Name: "Paris"})
	require.NoError(t, err)
	lyon, err := svc.CreateZone(ctx, &models.ZoneRequest{Name: "Lyon"})
	require.NoError(t, err)
	visio, err := svc.CreateZone(ctx, &models.ZoneRequest{Name: "visio"})
	require.NoError(t, err)
	alice, err := svc.CreateStaff(ctx, &models.StaffRequest{Name: "Alice", Email: ptr.Ptr("alice@example.com")})
	require.NoError(t, err)

	sel, err := svc.SetSelection(ctx, &models.SelectionRequest{StaffID: alice.ID, Date: "2026-10-19", ZoneID: paris.ID})
	require.NoError(t, err)
	assert.Equal(t, paris.ID, sel.ZoneID)

	sel, err = svc.SetSelection(ctx, &models.SelectionRequest{StaffID: alice.ID, Date: "2026-10-19", ZoneID: lyon.ID})
	require.NoError(t, err)
	assert.Equal(t, lyon.ID, sel.ZoneID)

	got, err := svc.GetSelection(ctx, alice.ID, "2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, lyon.ID, got.ZoneID)

	_, err = svc.SetSelection(ctx, &models.SelectionRequest{StaffID: alice.ID, Date: "2026-10-19", ZoneID: visio.ID})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetSelection(ctx, &models.SelectionRequest{StaffID: 42, Date: "2026-10-19", ZoneID: paris.ID})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	// выбор удерживает зону от удаления
	assert.ErrorIs(t, svc.DeleteZone(ctx, lyon.ID), ErrZoneInUse)

	require.NoError(t, svc.DeleteSelection(ctx, alice.ID, "2026-10-19"))
	_, err = svc.GetSelection(ctx, alice.ID, "2026-10-19")
	assert.ErrorIs(t, err, ErrSelectionNotFound)
}

func TestService_StaffAndAssignments(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	zone, err := svc.CreateZone(ctx, &models.ZoneRequest{Name: "Paris"})
	require.NoError(t, err)

	_, err = svc.CreateStaff(ctx, &models.StaffRequest{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.CreateStaff(ctx, &models.StaffRequest{Name: "Bob", Email: ptr.Ptr("not-an-email")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	bob, err := svc.CreateStaff(ctx, &models.StaffRequest{Name: "Bob"})
	require.NoError(t, err)

	a, err := svc.CreateAssignment(ctx, &models.AssignmentRequest{StaffID: bob.ID, ZoneID: zone.ID, Weekday: 1, StartTime: "09:00", EndTime: "13:00"})
	require.NoError(t, err)

	a, err = svc.UpdateAssignment(ctx, a.ID, &models.AssignmentRequest{StaffID: bob.ID, ZoneID: zone.ID, Weekday: 1, StartTime: "09:00", EndTime: "18:00"})
	require.NoError(t, err)
	assert.Equal(t, "18:00", a.EndTime)

	list, err := svc.ListAssignments(ctx, &models.ListRequest{StaffID: &bob.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	staff, err := svc.ListStaff(ctx)
	require.NoError(t, err)
	assert.Len(t, staff, 1)

	require.NoError(t, svc.DeleteAssignment(ctx, a.ID))
	_, err = svc.GetAssignment(ctx, a.ID)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}
