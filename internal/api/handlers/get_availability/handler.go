package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_availability"
)

const (
	msgInvalidParams    = "некорректные параметры запроса, from ожидается в формате YYYY-MM-DD"
	msgInvalidInput     = "некорректный запрос доступности"
	msgRangeTooLong     = "слишком длинный период запроса"
	msgModeZoneMismatch = "режим встречи не подходит для выбранной зоны"
	msgStaffNotFound    = "сотрудник не найден"
	msgZoneNotFound     = "зона не найдена"
)

type Handler struct {
	useCase  GetAvailabilityUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailabilityUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/availability
// Query params: from (обязательно), to, staffId, zone, mode, only=merged|slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(q.Get("from"), q.Get("to"), q.Get("staffId"), q.Get("zone"), q.Get("mode"), q.Get("only"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrRangeTooLong):
			h.logger.Warn("GET /availability - Range too long: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getAvailability.ErrModeZoneMismatch):
			h.logger.Warn("GET /availability - Mode/zone mismatch: %v", err)
			handlers.RespondBadRequest(w, msgModeZoneMismatch)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailability.ErrStaffNotFound):
			h.logger.Warn("GET /availability - Staff not found: %v", err)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailability.ErrZoneNotFound):
			h.logger.Warn("GET /availability - Zone not found: %v", err)
			handlers.RespondNotFound(w, msgZoneNotFound)

		default:
			h.logger.Error("GET /availability - Failed to get availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: form=%s, intervals=%d, slots=%d",
		result.Form, len(result.Intervals), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.location))
}
