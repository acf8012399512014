package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/pkg/dbmetrics"
)

// CreateStaff добавляет сотрудника
func (r *Repository) CreateStaff(ctx context.Context, s *domain.Staff) (*domain.Staff, error) {
	id, err := r.insertReturningID(ctx, "CreateStaff", r.qb.Insert("staff").
		Columns("name", "email").
		Values(s.Name, s.Email))
	if err != nil {
		return nil, err
	}
	return r.GetStaff(ctx, id)
}

// GetStaff получает сотрудника по ID
func (r *Repository) GetStaff(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select("id", "name", "email", "created_at").
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Staff
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Email, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - scan staff: %v", ErrScanRow, err)
	}
	s.CreatedAt = createdAt.Time
	return &s, nil
}

// ListStaff возвращает всех сотрудников по ID
func (r *Repository) ListStaff(ctx context.Context) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select("id", "name", "email", "created_at").
		From("staff").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	list := make([]*domain.Staff, 0)
	for rows.Next() {
		var s domain.Staff
		var createdAt sql.NullTime
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListStaff - scan row: %v", ErrScanRow, err)
		}
		s.CreatedAt = createdAt.Time
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaff - rows error: %v", ErrScanRow, err)
	}
	return list, nil
}
