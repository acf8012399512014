package get_zone_options

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: get_zone_options: invalid input data", domain.ErrValidation)

	// ErrStaffNotFound сотрудник не найден
	ErrStaffNotFound = fmt.Errorf("%w: get_zone_options: staff not found", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_zone_options: internal error")
)
