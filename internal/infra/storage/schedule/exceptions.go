package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/sqlutil"
	"github.com/m04kA/SMC-ZoneBooking/pkg/dbmetrics"
)

var exceptionColumns = []string{"id", "zone_id", "date", "start_time", "end_time", "note", "created_at"}

// CreateException создает исключение зоны на дату
func (r *Repository) CreateException(ctx context.Context, exc *domain.DateException) (*domain.DateException, error) {
	id, err := r.insertReturningID(ctx, "CreateException", r.qb.Insert("zone_exceptions").
		Columns("zone_id", "date", "start_time", "end_time", "note").
		Values(exc.ZoneID, sqlutil.DateValue(exc.Date), exc.StartTime, exc.EndTime, exc.Note))
	if err != nil {
		return nil, err
	}
	return r.GetException(ctx, id)
}

// GetException получает исключение по ID
func (r *Repository) GetException(ctx context.Context, id int64) (*domain.DateException, error) {
	excs, err := r.listExceptions(ctx, "GetException", squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(excs) == 0 {
		return nil, ErrExceptionNotFound
	}
	return excs[0], nil
}

// ListExceptions возвращает исключения, опционально по зоне и диапазону дат (включительно)
func (r *Repository) ListExceptions(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.DateException, error) {
	where := squirrel.And{}
	if filter.ZoneID != nil {
		where = append(where, squirrel.Eq{"zone_id": *filter.ZoneID})
	}
	if filter.From != nil {
		where = append(where, squirrel.GtOrEq{"date": sqlutil.DateValue(*filter.From)})
	}
	if filter.To != nil {
		where = append(where, squirrel.LtOrEq{"date": sqlutil.DateValue(*filter.To)})
	}
	return r.listExceptions(ctx, "ListExceptions", where)
}

// UpdateException перезаписывает исключение
func (r *Repository) UpdateException(ctx context.Context, exc *domain.DateException) (*domain.DateException, error) {
	affected, err := r.exec(ctx, "UpdateException", r.qb.Update("zone_exceptions").
		Set("zone_id", exc.ZoneID).
		Set("date", sqlutil.DateValue(exc.Date)).
		Set("start_time", exc.StartTime).
		Set("end_time", exc.EndTime).
		Set("note", exc.Note).
		Where(squirrel.Eq{"id": exc.ID}))
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrExceptionNotFound
	}
	return r.GetException(ctx, exc.ID)
}

// DeleteException удаляет исключение
func (r *Repository) DeleteException(ctx context.Context, id int64) error {
	affected, err := r.exec(ctx, "DeleteException", r.qb.Delete("zone_exceptions").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrExceptionNotFound
	}
	return nil
}

func (r *Repository) listExceptions(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.DateException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select(exceptionColumns...).
		From("zone_exceptions").
		Where(where).
		OrderBy("date ASC", "zone_id ASC", "start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	excs := make([]*domain.DateException, 0)
	for rows.Next() {
		var exc domain.DateException
		var date sqlutil.Date
		var createdAt sql.NullTime
		if err := rows.Scan(&exc.ID, &exc.ZoneID, &date, &exc.StartTime, &exc.EndTime, &exc.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		exc.Date = date.Time
		exc.CreatedAt = createdAt.Time
		excs = append(excs, &exc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	return excs, nil
}
