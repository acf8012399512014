package settings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: settings.service: invalid input", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings.service: internal error")
)
