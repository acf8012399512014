package get_zone_options

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	getZoneOptions "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_zone_options"
)

const (
	msgInvalidParams = "некорректные параметры запроса, start ожидается в формате RFC3339"
	msgInvalidInput  = "некорректный запрос зон"
	msgStaffNotFound = "сотрудник не найден"
)

type Handler struct {
	useCase  GetZoneOptionsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetZoneOptionsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/zone-options
// Query params: start, staffId (обязательно), end, mode, zoneId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(q.Get("start"), q.Get("end"), q.Get("staffId"), q.Get("mode"), q.Get("zoneId"))
	if err != nil {
		h.logger.Warn("GET /zone-options - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getZoneOptions.ErrInvalidInput):
			h.logger.Warn("GET /zone-options - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getZoneOptions.ErrStaffNotFound):
			h.logger.Warn("GET /zone-options - Staff not found: staff_id=%d", useCaseReq.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /zone-options - Failed to resolve zones: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /zone-options - Zones resolved: staff_id=%d, zones=%d, locked=%t",
		useCaseReq.StaffID, len(result.Zones), result.Locked)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.location))
}
