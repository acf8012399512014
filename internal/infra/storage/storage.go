package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-ZoneBooking/pkg/psqlbuilder"
)

var (
	// ErrUnknownDriver драйвер не поддерживается
	ErrUnknownDriver = errors.New("storage: unknown driver")

	// ErrOpen не удалось открыть соединение
	ErrOpen = errors.New("storage: failed to open database")
)

var sqlitePragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// Options параметры подключения
type Options struct {
	Driver       psqlbuilder.Dialect
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
	Migrate      bool
}

// Open открывает базу, проверяет соединение и при необходимости применяет миграции.
// SQLite работает через одно соединение: так :memory: остаётся одной базой,
// а запись не упирается в SQLITE_BUSY
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	var driverName, dsn string
	switch opts.Driver {
	case psqlbuilder.Postgres:
		driverName, dsn = "postgres", opts.DSN
	case psqlbuilder.SQLite:
		driverName, dsn = "sqlite", opts.DSN
		if dsn == "" {
			dsn = ":memory:"
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	if opts.Driver == psqlbuilder.SQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		if opts.MaxOpenConns > 0 {
			db.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			db.SetMaxIdleConns(opts.MaxIdleConns)
		}
		db.SetConnMaxLifetime(opts.MaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrOpen, err)
	}

	if opts.Driver == psqlbuilder.SQLite {
		for _, pragma := range sqlitePragmas {
			if _, err := db.ExecContext(ctx, pragma); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("%w: %s: %v", ErrOpen, pragma, err)
			}
		}
	}

	if opts.Migrate {
		if err := migrations.Apply(ctx, db, opts.Driver); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}
