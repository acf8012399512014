package get_day_layout

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	getDayLayout "github.com/m04kA/SMC-ZoneBooking/internal/usecase/get_day_layout"
)

const (
	msgMissingDate   = "дата обязательна"
	msgInvalidParams = "некорректные параметры запроса, date ожидается в формате YYYY-MM-DD"
	msgInvalidInput  = "некорректный запрос раскладки"
)

type Handler struct {
	useCase  GetDayLayoutUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetDayLayoutUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/layout
// Query params: date (обязательно), byStaff, staffId, free
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /layout - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	if date == nil {
		h.logger.Warn("GET /layout - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	byStaff, err := handlers.QueryBool(r, "byStaff")
	if err != nil {
		h.logger.Warn("GET /layout - Invalid byStaff: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	includeFree, err := handlers.QueryBool(r, "free")
	if err != nil {
		h.logger.Warn("GET /layout - Invalid free: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	staffID, err := handlers.QueryInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /layout - Invalid staffId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayLayout.Request{
		Date:        *date,
		ByStaff:     byStaff,
		StaffID:     staffID,
		IncludeFree: includeFree,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayLayout.ErrInvalidInput):
			h.logger.Warn("GET /layout - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /layout - Failed to build layout: date=%s, error=%v", date.Format(time.DateOnly), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /layout - Layout built: date=%s, events=%d, lanes=%d",
		date.Format(time.DateOnly), len(result.Events), result.LanesCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.location))
}
