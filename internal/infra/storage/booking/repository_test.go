package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage"
	"github.com/m04kA/SMC-ZoneBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ZoneBooking/pkg/ptr"
)

func newTestRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()
	db, err := storage.Open(context.Background(), storage.Options{Driver: psqlbuilder.SQLite, Migrate: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec("INSERT INTO zones (name) VALUES ('Paris'), ('visio')")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO staff (name) VALUES ('Alice'), ('Bob')")
	require.NoError(t, err)

	return NewRepository(db, psqlbuilder.New(psqlbuilder.SQLite)), db
}

func at(hour, min int) time.Time {
	return time.Date(2025, 1, 6, hour, min, 0, 0, time.UTC)
}

func newAppointment(staffID int64, start, end time.Time, key string) *domain.Appointment {
	return &domain.Appointment{
		Start:          start,
		End:            end,
		ZoneID:         1,
		StaffID:        staffID,
		MeetingMode:    domain.ModePhysical,
		ClientName:     "Le Bistrot",
		ClientEmail:    ptr.Ptr("chef@bistrot.fr"),
		City:           ptr.Ptr("Paris"),
		Attendees:      []string{"a@bistrot.fr", "b@bistrot.fr"},
		IdempotencyKey: key,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newAppointment(1, at(9, 0), at(10, 30), "k1"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Start.Equal(at(9, 0)))
	assert.True(t, got.End.Equal(at(10, 30)))
	assert.Equal(t, domain.ModePhysical, got.MeetingMode)
	assert.Equal(t, []string{"a@bistrot.fr", "b@bistrot.fr"}, got.Attendees)
	assert.Equal(t, "chef@bistrot.fr", ptr.Deref(got.ClientEmail, ""))
	assert.Nil(t, got.Notes)
	assert.Equal(t, "k1", got.IdempotencyKey)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newAppointment(1, at(14, 0), at(15, 0), "k1"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newAppointment(1, at(9, 0), at(10, 0), "k2"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newAppointment(2, at(9, 0), at(10, 0), "k3"))
	require.NoError(t, err)

	all, err := repo.List(ctx, domain.AppointmentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	from, to := at(10, 0), at(18, 0)
	alice, err := repo.List(ctx, domain.AppointmentFilter{StaffIDs: []int64{1}, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, alice, 1, "appointment ending exactly at From is excluded")
	assert.True(t, alice[0].Start.Equal(at(14, 0)))

	morning, err := repo.List(ctx, domain.AppointmentFilter{StaffIDs: []int64{1, 2}, To: ptr.Ptr(at(12, 0))})
	require.NoError(t, err)
	require.Len(t, morning, 2)
	assert.Equal(t, int64(1), morning[0].StaffID)
	assert.Equal(t, int64(2), morning[1].StaffID)
}

func TestRepository_Delete(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newAppointment(1, at(9, 0), at(10, 0), "k1"))
	require.NoError(t, err)
	require.NoError(t, repo.SaveIdempotency(ctx, &domain.IdempotencyRecord{Key: "k1", Fingerprint: "fp", AppointmentID: created.ID}))

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrAppointmentNotFound)

	_, err = repo.GetIdempotency(ctx, "k1")
	assert.ErrorIs(t, err, ErrIdempotencyKeyNotFound, "idempotency record is removed with its appointment")
}

func TestRepository_Idempotency(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.GetIdempotency(ctx, "k1")
	assert.ErrorIs(t, err, ErrIdempotencyKeyNotFound)

	created, err := repo.Create(ctx, newAppointment(1, at(9, 0), at(10, 0), "k1"))
	require.NoError(t, err)

	rec := &domain.IdempotencyRecord{Key: "k1", Fingerprint: "abc", AppointmentID: created.ID}
	require.NoError(t, repo.SaveIdempotency(ctx, rec))

	got, err := repo.GetIdempotency(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Fingerprint)
	assert.Equal(t, created.ID, got.AppointmentID)

	err = repo.SaveIdempotency(ctx, rec)
	assert.ErrorIs(t, err, ErrIdempotencyKeyExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRepository_Create_UnknownStaff(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Create(context.Background(), newAppointment(99, at(9, 0), at(10, 0), "k1"))
	assert.ErrorIs(t, err, ErrExecQuery)
}
