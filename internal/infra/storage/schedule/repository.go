package schedule

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/sqlutil"
	"github.com/m04kA/SMC-ZoneBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ZoneBooking/pkg/psqlbuilder"
)

// Repository хранилище расписания: зоны, правила, исключения, сотрудники,
// назначения сотрудников и выбор зоны на день
type Repository struct {
	db dbmetrics.DBExecutor
	qb psqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor, qb psqlbuilder.Builder) *Repository {
	return &Repository{db: db, qb: qb}
}

// exec выполняет изменяющий запрос и возвращает число затронутых строк
func (r *Repository) exec(ctx context.Context, op string, b squirrel.Sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s: %v", errUnique, op, err)
		}
		if sqlutil.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: %s: %v", ErrReference, op, err)
		}
		return 0, fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	return rowsAffected, nil
}

// insertReturningID выполняет INSERT ... RETURNING id
func (r *Repository) insertReturningID(ctx context.Context, op string, b squirrel.InsertBuilder) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := b.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build insert query: %v", ErrBuildQuery, op, err)
	}

	var id int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: %s: %v", ErrReference, op, err)
		}
		return 0, fmt.Errorf("%w: %s - execute insert: %v", ErrExecQuery, op, err)
	}
	return id, nil
}
