package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
)

var (
	// ErrZoneNotFound зона не найдена
	ErrZoneNotFound = fmt.Errorf("%w: schedule.repository: zone not found", domain.ErrNotFound)

	// ErrRuleNotFound правило зоны не найдено
	ErrRuleNotFound = fmt.Errorf("%w: schedule.repository: zone rule not found", domain.ErrNotFound)

	// ErrExceptionNotFound исключение зоны не найдено
	ErrExceptionNotFound = fmt.Errorf("%w: schedule.repository: zone exception not found", domain.ErrNotFound)

	// ErrAssignmentNotFound назначение сотрудника на зону не найдено
	ErrAssignmentNotFound = fmt.Errorf("%w: schedule.repository: staff zone rule not found", domain.ErrNotFound)

	// ErrStaffNotFound сотрудник не найден
	ErrStaffNotFound = fmt.Errorf("%w: schedule.repository: staff not found", domain.ErrNotFound)

	// ErrSelectionNotFound выбор зоны на день не найден
	ErrSelectionNotFound = fmt.Errorf("%w: schedule.repository: zone selection not found", domain.ErrNotFound)

	// ErrZoneInUse на зону ссылаются правила, встречи или выборы
	ErrZoneInUse = errors.New("schedule.repository: zone is in use")

	// ErrDuplicateZone зона с таким именем уже есть
	ErrDuplicateZone = fmt.Errorf("%w: schedule.repository: duplicate zone name", domain.ErrValidation)

	// ErrReference ссылка на несуществующую зону или сотрудника
	ErrReference = fmt.Errorf("%w: schedule.repository: unknown zone or staff", domain.ErrValidation)

	errUnique = errors.New("schedule.repository: unique violation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
