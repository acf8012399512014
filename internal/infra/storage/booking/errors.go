package booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда встреча не найдена
	ErrAppointmentNotFound = fmt.Errorf("%w: booking.repository: appointment not found", domain.ErrNotFound)

	// ErrIdempotencyKeyNotFound ключ идемпотентности ещё не использовался
	ErrIdempotencyKeyNotFound = errors.New("booking.repository: idempotency key not found")

	// ErrIdempotencyKeyExists ключ уже занят конкурентным запросом
	ErrIdempotencyKeyExists = fmt.Errorf("%w: booking.repository: idempotency key already used", domain.ErrConflict)

	// ErrOverlap встреча пересекается с существующей встречей сотрудника
	ErrOverlap = fmt.Errorf("%w: booking.repository: appointment overlaps", domain.ErrConflict)

	// ErrSerialization транзакция проиграла конкурентной записи
	ErrSerialization = fmt.Errorf("%w: booking.repository: serialization failure", domain.ErrConflict)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
