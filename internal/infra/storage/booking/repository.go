package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/infra/storage/sqlutil"
	"github.com/m04kA/SMC-ZoneBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ZoneBooking/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"start_at",
	"end_at",
	"zone_id",
	"staff_id",
	"meeting_mode",
	"client_name",
	"client_email",
	"client_phone",
	"summary",
	"notes",
	"restaurant_name",
	"city",
	"attendees",
	"idempotency_key",
	"created_at",
}

// Repository репозиторий встреч и ключей идемпотентности
type Repository struct {
	db dbmetrics.DBExecutor
	qb psqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория встреч
func NewRepository(db dbmetrics.DBExecutor, qb psqlbuilder.Builder) *Repository {
	return &Repository{db: db, qb: qb}
}

// Create сохраняет встречу. Время хранится в UTC.
// Если в контексте передана активная транзакция, использует её.
// На postgres пересечение встреч сотрудника отсекает ограничение исключения -> ErrOverlap
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	attendees, err := encodeAttendees(appt.Attendees)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - encode attendees: %v", ErrBuildQuery, err)
	}

	query, args, err := r.qb.Insert("appointments").
		Columns(
			"start_at",
			"end_at",
			"zone_id",
			"staff_id",
			"meeting_mode",
			"client_name",
			"client_email",
			"client_phone",
			"summary",
			"notes",
			"restaurant_name",
			"city",
			"attendees",
			"idempotency_key",
		).
		Values(
			appt.Start.UTC(),
			appt.End.UTC(),
			appt.ZoneID,
			appt.StaffID,
			string(appt.MeetingMode),
			appt.ClientName,
			appt.ClientEmail,
			appt.ClientPhone,
			appt.Summary,
			appt.Notes,
			appt.RestaurantName,
			appt.City,
			attendees,
			appt.IdempotencyKey,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &createdAt)
	if err != nil {
		switch {
		case sqlutil.IsExclusionViolation(err):
			return nil, fmt.Errorf("%w: Create - staff %d: %v", ErrOverlap, appt.StaffID, err)
		case sqlutil.IsSerializationFailure(err):
			return nil, fmt.Errorf("%w: Create: %v", ErrSerialization, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// GetByID получает встречу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// List возвращает встречи, пересекающие [From, To), отсортированные по началу.
// Внутри транзакции на postgres строки блокируются (FOR UPDATE), чтобы
// конкурентная запись к тем же сотрудникам дождалась коммита
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.qb.Select(appointmentColumns...).
		From("appointments").
		OrderBy("start_at ASC", "id ASC")

	if len(filter.StaffIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": filter.StaffIDs})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_at": filter.From.UTC()})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": filter.To.UTC()})
	}

	if dbmetrics.IsInTransaction(ctx) && r.qb.SupportsRowLocks() && len(filter.StaffIDs) > 0 {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if sqlutil.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: List: %v", ErrSerialization, err)
		}
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appts := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		appts = append(appts, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return appts, nil
}

// Delete удаляет встречу. Запись идемпотентности удаляется каскадно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// GetIdempotency возвращает запись по ключу
func (r *Repository) GetIdempotency(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Select("key", "fingerprint", "appointment_id", "created_at").
		From("idempotency_keys").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetIdempotency - build select query: %v", ErrBuildQuery, err)
	}

	var rec domain.IdempotencyRecord
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rec.Key, &rec.Fingerprint, &rec.AppointmentID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrIdempotencyKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetIdempotency - scan record: %v", ErrScanRow, err)
	}
	rec.CreatedAt = createdAt.Time

	return &rec, nil
}

// SaveIdempotency сохраняет ключ. Повторная вставка того же ключа -> ErrIdempotencyKeyExists
func (r *Repository) SaveIdempotency(ctx context.Context, rec *domain.IdempotencyRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Insert("idempotency_keys").
		Columns("key", "fingerprint", "appointment_id").
		Values(rec.Key, rec.Fingerprint, rec.AppointmentID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveIdempotency - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrIdempotencyKeyExists, rec.Key)
		}
		if sqlutil.IsSerializationFailure(err) {
			return fmt.Errorf("%w: SaveIdempotency: %v", ErrSerialization, err)
		}
		return fmt.Errorf("%w: SaveIdempotency - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var mode, attendees string
	var createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.Start,
		&appt.End,
		&appt.ZoneID,
		&appt.StaffID,
		&mode,
		&appt.ClientName,
		&appt.ClientEmail,
		&appt.ClientPhone,
		&appt.Summary,
		&appt.Notes,
		&appt.RestaurantName,
		&appt.City,
		&attendees,
		&appt.IdempotencyKey,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	appt.Start = appt.Start.UTC()
	appt.End = appt.End.UTC()
	appt.MeetingMode = domain.MeetingMode(mode)
	appt.CreatedAt = createdAt.Time
	if appt.Attendees, err = decodeAttendees(attendees); err != nil {
		return nil, err
	}

	return &appt, nil
}

func encodeAttendees(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeAttendees(raw string) ([]string, error) {
	out := make([]string, 0)
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode attendees: %v", err)
	}
	return out, nil
}
