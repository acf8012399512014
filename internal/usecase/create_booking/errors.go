package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_booking: invalid input data", domain.ErrValidation)

	// ErrTooLateToBook начало встречи раньше, чем позволяет notice_min
	ErrTooLateToBook = fmt.Errorf("%w: create_booking: too late to book this slot", domain.ErrValidation)

	// ErrDateTooFarInFuture дата за пределами window_days
	ErrDateTooFarInFuture = fmt.Errorf("%w: create_booking: date is too far in the future", domain.ErrValidation)

	// ErrModeZoneMismatch режим встречи не подходит для зоны
	ErrModeZoneMismatch = fmt.Errorf("%w: create_booking: meeting mode incompatible with zone", domain.ErrValidation)

	// ErrNoVisioZone визио-зона не настроена
	ErrNoVisioZone = fmt.Errorf("%w: create_booking: visio zone is not configured", domain.ErrValidation)

	// ErrStaffNotAvailable ни один сотрудник не работает в это время
	ErrStaffNotAvailable = fmt.Errorf("%w: create_booking: no staff available at this time", domain.ErrValidation)

	// ErrZoneLocked зона на эту половину дня уже определена
	ErrZoneLocked = fmt.Errorf("%w: create_booking: zone is locked for this half-day", domain.ErrValidation)

	// ErrIdempotencyMismatch ключ уже использован с другими данными
	ErrIdempotencyMismatch = fmt.Errorf("%w: create_booking: idempotency key reused with a different payload", domain.ErrValidation)

	// ErrStaffNotFound сотрудник не найден
	ErrStaffNotFound = fmt.Errorf("%w: create_booking: staff not found", domain.ErrNotFound)

	// ErrZoneNotFound зона не найдена
	ErrZoneNotFound = fmt.Errorf("%w: create_booking: zone not found", domain.ErrNotFound)

	// ErrSlotTaken слот занят (в том числе конкурентным запросом)
	ErrSlotTaken = fmt.Errorf("%w: create_booking: slot is already taken", domain.ErrConflict)

	// ErrBusy не удалось дождаться блокировки сотрудника
	ErrBusy = fmt.Errorf("%w: create_booking: staff calendar is busy, retry", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
