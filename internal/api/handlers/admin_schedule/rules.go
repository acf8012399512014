package admin_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// ListRules GET /api/v1/admin/zone_rules
func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	req, err := listRequest(r)
	if err != nil {
		h.logger.Warn("GET /admin/zone_rules - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	items, err := h.service.ListRules(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /admin/zone_rules", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, items)
}

// GetRule GET /api/v1/admin/zone_rules/{id}
func (h *Handler) GetRule(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /admin/zone_rules/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	item, err := h.service.GetRule(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /admin/zone_rules/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, item)
}

// CreateRule POST /api/v1/admin/zone_rules
func (h *Handler) CreateRule(w http.ResponseWriter, r *http.Request) {
	var req models.RuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/zone_rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.CreateRule(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/zone_rules", err)
		return
	}

	h.logger.Info("POST /admin/zone_rules - Created: id=%d", item.ID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}

// UpdateRule PUT /api/v1/admin/zone_rules/{id}
func (h *Handler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /admin/zone_rules/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.RuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/zone_rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.UpdateRule(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/zone_rules/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, item)
}

// DeleteRule DELETE /api/v1/admin/zone_rules/{id}
func (h *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /admin/zone_rules/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteRule(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /admin/zone_rules/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/zone_rules/{id} - Deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
