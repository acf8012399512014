package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	settingsRepo "github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/settings"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/settings/models"
	"github.com/m04kA/SMC-ZoneBooking/pkg/logger"
	"github.com/m04kA/SMC-ZoneBooking/pkg/ptr"
	"github.com/m04kA/SMC-ZoneBooking/pkg/txmanager"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, qb := storagetest.Open(t)
	return NewService(settingsRepo.NewRepository(db, qb), txmanager.NewTransactionManager(db, false), logger.Discard())
}

func TestService_GetDefaults(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, resp.UpdatedAt)
	assert.Equal(t, domain.DefaultBookingStepMinutes, resp.Effective.BookingStepMin)
	assert.Equal(t, domain.DefaultWindowDays, resp.Effective.WindowDays)
	assert.Equal(t, domain.DefaultPhysicalHalfDayCapacity, resp.Effective.PhysicalHalfDayCapacity)
	assert.Nil(t, resp.Values[domain.KeyNotice])
}

func TestService_UpdateAndClear(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Update(ctx, &models.UpdateSettingsRequest{Values: map[string]*int{
		domain.KeyDefaultDuration: ptr.Ptr(45),
		domain.KeyVisioDuration:   ptr.Ptr(20),
		domain.KeyNotice:          ptr.Ptr(120),
	}})
	require.NoError(t, err)
	assert.Equal(t, 45, resp.Effective.PhysicalDurationMin)
	assert.Equal(t, 20, resp.Effective.VisioDurationMin)
	assert.Equal(t, 120, resp.Effective.NoticeMin)
	assert.NotNil(t, resp.UpdatedAt)

	resp, err = svc.Update(ctx, &models.UpdateSettingsRequest{Values: map[string]*int{
		domain.KeyVisioDuration: nil,
	}})
	require.NoError(t, err)
	assert.Nil(t, resp.Values[domain.KeyVisioDuration])
	assert.Equal(t, 45, resp.Effective.VisioDurationMin)
	assert.Equal(t, 120, resp.Effective.NoticeMin)
}

func TestService_UpdateRejectsWholeRequest(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		values map[string]*int
	}{
		{name: "empty", values: map[string]*int{}},
		{name: "unknown key", values: map[string]*int{"slot_color": ptr.Ptr(1), domain.KeyNotice: ptr.Ptr(10)}},
		{name: "out of range", values: map[string]*int{domain.KeyBookingStep: ptr.Ptr(0), domain.KeyNotice: ptr.Ptr(10)}},
		{name: "boundary hour", values: map[string]*int{domain.KeyHalfDayBoundaryHour: ptr.Ptr(24)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, &models.UpdateSettingsRequest{Values: tt.values})
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	resp, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, resp.Values[domain.KeyNotice])
}
