package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ZoneBooking/pkg/psqlbuilder"
)

// Repository хранит настройки как пары ключ/значение
type Repository struct {
	db dbmetrics.DBExecutor
	qb psqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor, qb psqlbuilder.Builder) *Repository {
	return &Repository{db: db, qb: qb}
}

// Get читает все строки таблицы в domain.Settings.
// Отсутствующие ключи остаются nil и разрешаются значениями по умолчанию
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select("key", "value", "updated_at").
		From("settings").
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var s domain.Settings
	for rows.Next() {
		var key string
		var value sql.NullInt64
		var updatedAt sql.NullTime
		if err := rows.Scan(&key, &value, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: Get - scan row: %v", ErrScanRow, err)
		}
		if !value.Valid {
			continue
		}
		v := int(value.Int64)
		if err := s.Set(key, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoredValue, err)
		}
		if updatedAt.Time.After(s.UpdatedAt) {
			s.UpdatedAt = updatedAt.Time
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - rows error: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Upsert записывает значение ключа; nil удаляет строку (возврат к значению по умолчанию)
func (r *Repository) Upsert(ctx context.Context, key string, value *int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var (
		query string
		args  []interface{}
		err   error
	)
	if value == nil {
		query, args, err = r.qb.Delete("settings").Where(squirrel.Eq{"key": key}).ToSql()
	} else {
		query, args, err = r.qb.Insert("settings").
			Columns("key", "value").
			Values(key, *value).
			Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP").
			ToSql()
	}
	if err != nil {
		return fmt.Errorf("%w: Upsert - build query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute %s: %v", ErrExecQuery, key, err)
	}
	return nil
}
