package get_availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: get_availability: invalid input data", domain.ErrValidation)

	// ErrRangeTooLong запрошенный диапазон дат слишком длинный
	ErrRangeTooLong = fmt.Errorf("%w: get_availability: date range too long", domain.ErrValidation)

	// ErrModeZoneMismatch режим встречи не подходит для зоны
	ErrModeZoneMismatch = fmt.Errorf("%w: get_availability: meeting mode incompatible with zone", domain.ErrValidation)

	// ErrStaffNotFound сотрудник не найден
	ErrStaffNotFound = fmt.Errorf("%w: get_availability: staff not found", domain.ErrNotFound)

	// ErrZoneNotFound зона не найдена
	ErrZoneNotFound = fmt.Errorf("%w: get_availability: zone not found", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
