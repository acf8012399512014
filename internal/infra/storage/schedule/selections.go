package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/sqlutil"
	"github.com/m04kA/SMC-ZoneBooking/pkg/dbmetrics"
)

// UpsertSelection сохраняет выбор зоны сотрудником на день (перезаписывает прежний)
func (r *Repository) UpsertSelection(ctx context.Context, sel *domain.ZoneSelection) (*domain.ZoneSelection, error) {
	_, err := r.exec(ctx, "UpsertSelection", r.qb.Insert("zone_selections").
		Columns("staff_id", "date", "zone_id").
		Values(sel.StaffID, sqlutil.DateValue(sel.Date), sel.ZoneID).
		Suffix("ON CONFLICT (staff_id, date) DO UPDATE SET zone_id = EXCLUDED.zone_id, updated_at = CURRENT_TIMESTAMP"))
	if err != nil {
		return nil, err
	}
	return r.GetSelection(ctx, sel.StaffID, sel.Date)
}

// GetSelection возвращает выбор зоны на день
func (r *Repository) GetSelection(ctx context.Context, staffID int64, date time.Time) (*domain.ZoneSelection, error) {
	list, err := r.listSelections(ctx, "GetSelection", squirrel.Eq{"staff_id": staffID, "date": sqlutil.DateValue(date)})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrSelectionNotFound
	}
	return list[0], nil
}

// ListSelections возвращает выборы зон по сотруднику и диапазону дат (включительно)
func (r *Repository) ListSelections(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ZoneSelection, error) {
	where := squirrel.And{}
	if filter.StaffID != nil {
		where = append(where, squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.ZoneID != nil {
		where = append(where, squirrel.Eq{"zone_id": *filter.ZoneID})
	}
	if filter.From != nil {
		where = append(where, squirrel.GtOrEq{"date": sqlutil.DateValue(*filter.From)})
	}
	if filter.To != nil {
		where = append(where, squirrel.LtOrEq{"date": sqlutil.DateValue(*filter.To)})
	}
	return r.listSelections(ctx, "ListSelections", where)
}

// DeleteSelection снимает выбор зоны на день
func (r *Repository) DeleteSelection(ctx context.Context, staffID int64, date time.Time) error {
	affected, err := r.exec(ctx, "DeleteSelection", r.qb.Delete("zone_selections").
		Where(squirrel.Eq{"staff_id": staffID, "date": sqlutil.DateValue(date)}))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSelectionNotFound
	}
	return nil
}

func (r *Repository) listSelections(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.ZoneSelection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select("staff_id", "date", "zone_id", "updated_at").
		From("zone_selections").
		Where(where).
		OrderBy("date ASC", "staff_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	list := make([]*domain.ZoneSelection, 0)
	for rows.Next() {
		var sel domain.ZoneSelection
		var date sqlutil.Date
		var updatedAt sql.NullTime
		if err := rows.Scan(&sel.StaffID, &date, &sel.ZoneID, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		sel.Date = date.Time
		sel.UpdatedAt = updatedAt.Time
		list = append(list, &sel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	return list, nil
}
