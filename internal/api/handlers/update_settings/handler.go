package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSettings    = "некорректные значения настроек"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/settings
// Тело: {"notice_min": 60, "demo_visio_duration_min": null}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings - Invalid settings: %v", err)
			handlers.RespondJSON(w, http.StatusBadRequest, handlers.ErrorResponse{Error: msgInvalidSettings, Details: err.Error()})

		default:
			h.logger.Error("PUT /admin/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - Settings updated: keys=%d", len(req))
	handlers.RespondJSON(w, http.StatusOK, result)
}
