package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage"
	"github.com/m04kA/SMC-ZoneBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ZoneBooking/pkg/ptr"
)

func TestRepository_GetEmpty(t *testing.T) {
	repo := newTestRepository(t)

	s, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBookingStepMinutes, s.Step())
	assert.Nil(t, s.NoticeMin)
}

func TestRepository_UpsertAndClear(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, domain.KeyBookingStep, ptr.Ptr(30)))
	require.NoError(t, repo.Upsert(ctx, domain.KeyVisioDuration, ptr.Ptr(45)))
	require.NoError(t, repo.Upsert(ctx, domain.KeyBookingStep, ptr.Ptr(20)))

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, s.Step())
	assert.Equal(t, 45, s.DurationFor(domain.ModeVisio))
	assert.False(t, s.UpdatedAt.IsZero())

	require.NoError(t, repo.Upsert(ctx, domain.KeyVisioDuration, nil))
	s, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s.VisioDurationMin)
}

func TestRepository_GetRejectsUnknownStoredKey(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "legacy_key", ptr.Ptr(1)))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrStoredValue)
}

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := storage.Open(context.Background(), storage.Options{Driver: psqlbuilder.SQLite, Migrate: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db, psqlbuilder.New(psqlbuilder.SQLite))
}
