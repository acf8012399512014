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

var ruleColumns = []string{"id", "zone_id", "weekday", "start_time", "end_time", "created_at"}

// CreateRule создает недельное правило зоны
func (r *Repository) CreateRule(ctx context.Context, rule *domain.WeeklyRule) (*domain.WeeklyRule, error) {
	id, err := r.insertReturningID(ctx, "CreateRule", r.qb.Insert("zone_rules").
		Columns("zone_id", "weekday", "start_time", "end_time").
		Values(rule.ZoneID, int(rule.Weekday), rule.StartTime, rule.EndTime))
	if err != nil {
		return nil, err
	}
	return r.GetRule(ctx, id)
}

// GetRule получает правило по ID
func (r *Repository) GetRule(ctx context.Context, id int64) (*domain.WeeklyRule, error) {
	rules, err := r.listRules(ctx, "GetRule", squirrel.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, ErrRuleNotFound
	}
	return rules[0], nil
}

// ListRules возвращает правила, опционально только одной зоны
func (r *Repository) ListRules(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.WeeklyRule, error) {
	where := squirrel.And{}
	if filter.ZoneID != nil {
		where = append(where, squirrel.Eq{"zone_id": *filter.ZoneID})
	}
	return r.listRules(ctx, "ListRules", where)
}

// UpdateRule перезаписывает правило
func (r *Repository) UpdateRule(ctx context.Context, rule *domain.WeeklyRule) (*domain.WeeklyRule, error) {
	affected, err := r.exec(ctx, "UpdateRule", r.qb.Update("zone_rules").
		Set("zone_id", rule.ZoneID).
		Set("weekday", int(rule.Weekday)).
		Set("start_time", rule.StartTime).
		Set("end_time", rule.EndTime).
		Where(squirrel.Eq{"id": rule.ID}))
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrRuleNotFound
	}
	return r.GetRule(ctx, rule.ID)
}

// DeleteRule удаляет правило
func (r *Repository) DeleteRule(ctx context.Context, id int64) error {
	affected, err := r.exec(ctx, "DeleteRule", r.qb.Delete("zone_rules").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRuleNotFound
	}
	return nil
}

// DeleteRulesForWeekdays удаляет правила зоны на указанные дни недели (для массовой генерации)
func (r *Repository) DeleteRulesForWeekdays(ctx context.Context, zoneID int64, weekdays []time.Weekday) (int64, error) {
	days := make([]int, 0, len(weekdays))
	for _, wd := range weekdays {
		days = append(days, int(wd))
	}
	return r.exec(ctx, "DeleteRulesForWeekdays", r.qb.Delete("zone_rules").
		Where(squirrel.Eq{"zone_id": zoneID, "weekday": days}))
}

func (r *Repository) listRules(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.WeeklyRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select(ruleColumns...).
		From("zone_rules").
		Where(where).
		OrderBy("zone_id ASC", "weekday ASC", "start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rules := make([]*domain.WeeklyRule, 0)
	for rows.Next() {
		var rule domain.WeeklyRule
		var weekday int
		var createdAt sql.NullTime
		if err := rows.Scan(&rule.ID, &rule.ZoneID, &weekday, &rule.StartTime, &rule.EndTime, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		rule.Weekday = time.Weekday(weekday)
		rule.CreatedAt = createdAt.Time
		rules = append(rules, &rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	return rules, nil
}

