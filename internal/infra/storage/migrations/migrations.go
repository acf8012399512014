package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ZoneBooking/pkg/psqlbuilder"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

var (
	// ErrReadMigrations ошибка чтения встроенных файлов миграций
	ErrReadMigrations = errors.New("migrations: failed to read migration files")

	// ErrApplyMigration ошибка применения миграции
	ErrApplyMigration = errors.New("migrations: failed to apply migration")
)

// Apply применяет ещё не применённые миграции диалекта по порядку имён файлов.
// Каждая миграция выполняется в своей транзакции
func Apply(ctx context.Context, db *sql.DB, dialect psqlbuilder.Dialect) error {
	qb := psqlbuilder.New(dialect)
	dir := string(qb.Dialect())

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("%w: create schema_migrations: %v", ErrApplyMigration, err)
	}

	entries, err := fs.ReadDir(files, dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		version := strings.TrimSuffix(name, ".sql")

		applied, err := isApplied(ctx, db, qb, version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		body, err := fs.ReadFile(files, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrReadMigrations, name, err)
		}
		if err := applyOne(ctx, db, qb, version, string(body)); err != nil {
			return err
		}
	}
	return nil
}

func isApplied(ctx context.Context, db *sql.DB, qb psqlbuilder.Builder, version string) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("schema_migrations").
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: build version query: %v", ErrApplyMigration, err)
	}

	var count int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: read version %s: %v", ErrApplyMigration, version, err)
	}
	return count > 0, nil
}

func applyOne(ctx context.Context, db *sql.DB, qb psqlbuilder.Builder, version, body string) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: begin: %v", ErrApplyMigration, version, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range splitStatements(body) {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrApplyMigration, version, err)
		}
	}

	query, args, err := qb.Insert("schema_migrations").Columns("version").Values(version).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s: build insert: %v", ErrApplyMigration, version, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s: record version: %v", ErrApplyMigration, version, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s: commit: %v", ErrApplyMigration, version, err)
	}
	return nil
}

// splitStatements делит файл на выражения по ';' (в схеме нет ';' внутри литералов)
func splitStatements(body string) []string {
	var out []string
	for _, part := range strings.Split(body, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
