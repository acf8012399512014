// Package storagetest поднимает sqlite в памяти со схемой сервиса для тестов
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage"
	"github.com/m04kA/SMC-ZoneBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ZoneBooking/pkg/psqlbuilder"
)

// Open возвращает обёрнутую базу (без метрик) и построитель запросов sqlite
func Open(t testing.TB) (*dbmetrics.DB, psqlbuilder.Builder) {
	t.Helper()

	db, err := storage.Open(context.Background(), storage.Options{Driver: psqlbuilder.SQLite, Migrate: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return dbmetrics.Wrap(db, nil), psqlbuilder.New(psqlbuilder.SQLite)
}
