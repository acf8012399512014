package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = fmt.Errorf("%w: schedule.service: invalid input", domain.ErrValidation)

	// ErrRangeTooLong слишком длинный период массовой генерации
	ErrRangeTooLong = fmt.Errorf("%w: schedule.service: date range too long", domain.ErrValidation)

	// ErrZoneNotFound зона не найдена
	ErrZoneNotFound = fmt.Errorf("%w: schedule.service: zone not found", domain.ErrNotFound)

	// ErrRuleNotFound правило не найдено
	ErrRuleNotFound = fmt.Errorf("%w: schedule.service: rule not found", domain.ErrNotFound)

	// ErrExceptionNotFound исключение не найдено
	ErrExceptionNotFound = fmt.Errorf("%w: schedule.service: exception not found", domain.ErrNotFound)

	// ErrAssignmentNotFound назначение не найдено
	ErrAssignmentNotFound = fmt.Errorf("%w: schedule.service: staff zone rule not found", domain.ErrNotFound)

	// ErrStaffNotFound сотрудник не найден
	ErrStaffNotFound = fmt.Errorf("%w: schedule.service: staff not found", domain.ErrNotFound)

	// ErrSelectionNotFound выбор зоны не найден
	ErrSelectionNotFound = fmt.Errorf("%w: schedule.service: zone selection not found", domain.ErrNotFound)

	// ErrZoneInUse зона используется и не может быть удалена
	ErrZoneInUse = errors.New("schedule.service: zone is in use")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
