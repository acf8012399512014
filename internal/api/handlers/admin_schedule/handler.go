package admin_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ZoneBooking/internal/domain"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный ID"
	msgInvalidParams      = "некорректные параметры запроса"
	msgInvalidInput       = "некорректные данные расписания"
	msgRangeTooLong       = "слишком длинный период генерации"
	msgZoneInUse          = "зона используется и не может быть удалена"
	msgZoneNotFound       = "зона не найдена"
	msgRuleNotFound       = "правило не найдено"
	msgExceptionNotFound  = "исключение не найдено"
	msgAssignmentNotFound = "назначение сотрудника не найдено"
	msgStaffNotFound      = "сотрудник не найден"
	msgSelectionNotFound  = "выбор зоны на день не найден"
)

// Handler обработчики административного API расписания
type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// respondError сопоставляет ошибку сервиса с HTTP ответом
func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, schedule.ErrZoneInUse):
		h.logger.Warn("%s - Zone in use: %v", route, err)
		handlers.RespondConflict(w, msgZoneInUse, false)

	case errors.Is(err, schedule.ErrRangeTooLong):
		h.logger.Warn("%s - Range too long: %v", route, err)
		handlers.RespondBadRequest(w, msgRangeTooLong)

	case errors.Is(err, domain.ErrValidation):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondJSON(w, http.StatusBadRequest, handlers.ErrorResponse{Error: msgInvalidInput, Details: err.Error()})

	case errors.Is(err, schedule.ErrZoneNotFound):
		h.logger.Warn("%s - Zone not found", route)
		handlers.RespondNotFound(w, msgZoneNotFound)

	case errors.Is(err, schedule.ErrRuleNotFound):
		h.logger.Warn("%s - Rule not found", route)
		handlers.RespondNotFound(w, msgRuleNotFound)

	case errors.Is(err, schedule.ErrExceptionNotFound):
		h.logger.Warn("%s - Exception not found", route)
		handlers.RespondNotFound(w, msgExceptionNotFound)

	case errors.Is(err, schedule.ErrAssignmentNotFound):
		h.logger.Warn("%s - Assignment not found", route)
		handlers.RespondNotFound(w, msgAssignmentNotFound)

	case errors.Is(err, schedule.ErrStaffNotFound):
		h.logger.Warn("%s - Staff not found", route)
		handlers.RespondNotFound(w, msgStaffNotFound)

	case errors.Is(err, schedule.ErrSelectionNotFound):
		h.logger.Warn("%s - Selection not found", route)
		handlers.RespondNotFound(w, msgSelectionNotFound)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

// listRequest читает фильтр списка из query параметров
func listRequest(r *http.Request) (*models.ListRequest, error) {
	zoneID, err := handlers.QueryInt64(r, "zoneId")
	if err != nil {
		return nil, err
	}
	staffID, err := handlers.QueryInt64(r, "staffId")
	if err != nil {
		return nil, err
	}
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		return nil, err
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		return nil, err
	}
	return &models.ListRequest{ZoneID: zoneID, StaffID: staffID, From: from, To: to}, nil
}
