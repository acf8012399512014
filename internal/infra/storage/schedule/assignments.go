package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/pkg/dbmetrics"
)

var assignmentColumns = []string{"id", "staff_id", "zone_id", "weekday", "start_time", "end_time", "created_at"}

// CreateAssignment назначает сотрудника на зону в день недели
func (r *Repository) CreateAssignment(ctx context.Context, a *domain.StaffZoneAssignment) (*domain.StaffZoneAssignment, error) {
	id, err := r.insertReturningID(ctx, "CreateAssignment", r.qb.Insert("staff_zone_rules").
		Columns("staff_id", "zone_id", "weekday", "start_time", "end_time").
		Values(a.StaffID, a.ZoneID, int(a.Weekday), a.StartTime, a.EndTime))
	if err != nil {
		return nil, err
	}
	return r.GetAssignment(ctx, id)
}

// GetAssignment получает назначение по ID
func (r *Repository) GetAssignment(ctx context.Context, id int64) (*domain.StaffZoneAssignment, error) {
	list, err := r.listAssignments(ctx, "GetAssignment", squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrAssignmentNotFound
	}
	return list[0], nil
}

// ListAssignments возвращает назначения, опционально по сотруднику и зоне
func (r *Repository) ListAssignments(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.StaffZoneAssignment, error) {
	where := squirrel.And{}
	if filter.StaffID != nil {
		where = append(where, squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.ZoneID != nil {
		where = append(where, squirrel.Eq{"zone_id": *filter.ZoneID})
	}
	return r.listAssignments(ctx, "ListAssignments", where)
}

// UpdateAssignment перезаписывает назначение
func (r *Repository) UpdateAssignment(ctx context.Context, a *domain.StaffZoneAssignment) (*domain.StaffZoneAssignment, error) {
	affected, err := r.exec(ctx, "UpdateAssignment", r.qb.Update("staff_zone_rules").
		Set("staff_id", a.StaffID).
		Set("zone_id", a.ZoneID).
		Set("weekday", int(a.Weekday)).
		Set("start_time", a.StartTime).
		Set("end_time", a.EndTime).
		Where(squirrel.Eq{"id": a.ID}))
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAssignmentNotFound
	}
	return r.GetAssignment(ctx, a.ID)
}

// DeleteAssignment удаляет назначение
func (r *Repository) DeleteAssignment(ctx context.Context, id int64) error {
	affected, err := r.exec(ctx, "DeleteAssignment", r.qb.Delete("staff_zone_rules").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func (r *Repository) listAssignments(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.StaffZoneAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select(assignmentColumns...).
		From("staff_zone_rules").
		Where(where).
		OrderBy("staff_id ASC", "weekday ASC", "start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	list := make([]*domain.StaffZoneAssignment, 0)
	for rows.Next() {
		var a domain.StaffZoneAssignment
		var weekday int
		var createdAt sql.NullTime
		if err := rows.Scan(&a.ID, &a.StaffID, &a.ZoneID, &weekday, &a.StartTime, &a.EndTime, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		a.Weekday = time.Weekday(weekday)
		a.CreatedAt = createdAt.Time
		list = append(list, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	return list, nil
}
