package admin_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// GenerateWeeklyRules POST /api/v1/admin/generate_weekly_rules
func (h *Handler) GenerateWeeklyRules(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateWeeklyRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/generate_weekly_rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.GenerateWeeklyRules(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/generate_weekly_rules", err)
		return
	}

	h.logger.Info("POST /admin/generate_weekly_rules - Generated: zone=%d, created=%d, deleted=%d",
		req.ZoneID, len(resp.Rules), resp.Deleted)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// GenerateExceptionsRange POST /api/v1/admin/generate_exceptions_range
func (h *Handler) GenerateExceptionsRange(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateExceptionsRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/generate_exceptions_range - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.GenerateExceptionsRange(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/generate_exceptions_range", err)
		return
	}

	h.logger.Info("POST /admin/generate_exceptions_range - Generated: zone=%d, created=%d, deleted=%d",
		req.ZoneID, len(resp.Exceptions), resp.Deleted)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
