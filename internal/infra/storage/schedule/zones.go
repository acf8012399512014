package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/sqlutil"
	"github.com/m04kA/SMC-ZoneBooking/pkg/dbmetrics"
)

var zoneColumns = []string{"id", "name", "color", "created_at", "updated_at"}

// CreateZone создает зону
func (r *Repository) CreateZone(ctx context.Context, zone *domain.Zone) (*domain.Zone, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Insert("zones").
		Columns("name", "color").
		Values(strings.TrimSpace(zone.Name), zone.Color).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateZone - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&zone.ID, &createdAt, &updatedAt)
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateZone, zone.Name)
		}
		return nil, fmt.Errorf("%w: CreateZone - execute insert: %v", ErrExecQuery, err)
	}
	zone.Name = strings.TrimSpace(zone.Name)
	zone.CreatedAt = createdAt.Time
	zone.UpdatedAt = updatedAt.Time

	return zone, nil
}

// GetZone получает зону по ID
func (r *Repository) GetZone(ctx context.Context, id int64) (*domain.Zone, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select(zoneColumns...).
		From("zones").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetZone - build select query: %v", ErrBuildQuery, err)
	}

	zone, err := scanZone(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrZoneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetZone - scan zone: %v", ErrScanRow, err)
	}
	return zone, nil
}

// ListZones возвращает все зоны по имени
func (r *Repository) ListZones(ctx context.Context) ([]*domain.Zone, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select(zoneColumns...).
		From("zones").
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListZones - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListZones - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	zones := make([]*domain.Zone, 0)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListZones - scan row: %v", ErrScanRow, err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListZones - rows error: %v", ErrScanRow, err)
	}
	return zones, nil
}

// UpdateZone меняет имя и цвет зоны
func (r *Repository) UpdateZone(ctx context.Context, zone *domain.Zone) (*domain.Zone, error) {
	affected, err := r.exec(ctx, "UpdateZone", r.qb.Update("zones").
		Set("name", strings.TrimSpace(zone.Name)).
		Set("color", zone.Color).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": zone.ID}))
	if err != nil {
		if errors.Is(err, errUnique) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateZone, zone.Name)
		}
		return nil, err
	}
	if affected == 0 {
		return nil, ErrZoneNotFound
	}
	return r.GetZone(ctx, zone.ID)
}

// DeleteZone удаляет зону. Зона, на которую ссылаются, не удаляется (ErrZoneInUse)
func (r *Repository) DeleteZone(ctx context.Context, id int64) error {
	affected, err := r.exec(ctx, "DeleteZone", r.qb.Delete("zones").Where(squirrel.Eq{"id": id}))
	if err != nil {
		if errors.Is(err, ErrReference) {
			return fmt.Errorf("%w: zone %d", ErrZoneInUse, id)
		}
		return err
	}
	if affected == 0 {
		return ErrZoneNotFound
	}
	return nil
}

// ZoneInUse проверяет, ссылаются ли на зону правила, исключения, назначения, встречи или выборы зоны
func (r *Repository) ZoneInUse(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, table := range []string{"zone_rules", "zone_exceptions", "staff_zone_rules", "appointments", "zone_selections"} {
		query, args, err := r.qb.Select("COUNT(*)").
			From(table).
			Where(squirrel.Eq{"zone_id": id}).
			ToSql()
		if err != nil {
			return false, fmt.Errorf("%w: ZoneInUse - build count query: %v", ErrBuildQuery, err)
		}

		var count int64
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return false, fmt.Errorf("%w: ZoneInUse - count %s: %v", ErrScanRow, table, err)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

func scanZone(row interface{ Scan(...interface{}) error }) (*domain.Zone, error) {
	var zone domain.Zone
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&zone.ID, &zone.Name, &zone.Color, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	zone.CreatedAt = createdAt.Time
	zone.UpdatedAt = updatedAt.Time
	return &zone, nil
}
