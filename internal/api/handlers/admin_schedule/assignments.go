package admin_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// ListAssignments GET /api/v1/admin/staff_zone_rules
func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	req, err := listRequest(r)
	if err != nil {
		h.logger.Warn("GET /admin/staff_zone_rules - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	items, err := h.service.ListAssignments(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /admin/staff_zone_rules", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, items)
}

// GetAssignment GET /api/v1/admin/staff_zone_rules/{id}
func (h *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /admin/staff_zone_rules/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	item, err := h.service.GetAssignment(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /admin/staff_zone_rules/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, item)
}

// CreateAssignment POST /api/v1/admin/staff_zone_rules
func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req models.AssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/staff_zone_rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.CreateAssignment(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/staff_zone_rules", err)
		return
	}

	h.logger.Info("POST /admin/staff_zone_rules - Created: id=%d", item.ID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}

// UpdateAssignment PUT /api/v1/admin/staff_zone_rules/{id}
func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /admin/staff_zone_rules/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.AssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/staff_zone_rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.UpdateAssignment(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/staff_zone_rules/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, item)
}

// DeleteAssignment DELETE /api/v1/admin/staff_zone_rules/{id}
func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /admin/staff_zone_rules/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteAssignment(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /admin/staff_zone_rules/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/staff_zone_rules/{id} - Deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
