package sqlutil

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
)

// Коды PostgreSQL
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// Первичные коды SQLite (младший байт расширенного кода)
const (
	sqliteBusy       = 5
	sqliteLocked     = 6
	sqliteConstraint = 19
)

func pgCode(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), true
	}
	return "", false
}

func sqliteError(err error) (int, string, bool) {
	var sqlErr *sqlite.Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code() & 0xff, sqlErr.Error(), true
	}
	return 0, "", false
}

// IsUniqueViolation нарушение уникального ключа
func IsUniqueViolation(err error) bool {
	if code, ok := pgCode(err); ok {
		return code == pgUniqueViolation
	}
	if code, msg, ok := sqliteError(err); ok {
		return code == sqliteConstraint && (strings.Contains(msg, "UNIQUE") || strings.Contains(msg, "PRIMARY KEY"))
	}
	return false
}

// IsForeignKeyViolation нарушение внешнего ключа (например, удаление зоны, на которую ссылаются)
func IsForeignKeyViolation(err error) bool {
	if code, ok := pgCode(err); ok {
		return code == pgForeignKeyViolation
	}
	if code, msg, ok := sqliteError(err); ok {
		return code == sqliteConstraint && strings.Contains(msg, "FOREIGN KEY")
	}
	return false
}

// IsExclusionViolation сработало ограничение исключения на пересечение встреч (только postgres)
func IsExclusionViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == pgExclusionViolation
}

// IsSerializationFailure конкурентная транзакция помешала текущей, запрос можно повторить
func IsSerializationFailure(err error) bool {
	if code, ok := pgCode(err); ok {
		return code == pgSerializationFailure || code == pgDeadlockDetected
	}
	if code, _, ok := sqliteError(err); ok {
		return code == sqliteBusy || code == sqliteLocked
	}
	return false
}
