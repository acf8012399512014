package admin_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// ListExceptions GET /api/v1/admin/zone_exceptions
func (h *Handler) ListExceptions(w http.ResponseWriter, r *http.Request) {
	req, err := listRequest(r)
	if err != nil {
		h.logger.Warn("GET /admin/zone_exceptions - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	items, err := h.service.ListExceptions(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /admin/zone_exceptions", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, items)
}

// GetException GET /api/v1/admin/zone_exceptions/{id}
func (h *Handler) GetException(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /admin/zone_exceptions/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	item, err := h.service.GetException(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /admin/zone_exceptions/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, item)
}

// CreateException POST /api/v1/admin/zone_exceptions
func (h *Handler) CreateException(w http.ResponseWriter, r *http.Request) {
	var req models.ExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/zone_exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.CreateException(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/zone_exceptions", err)
		return
	}

	h.logger.Info("POST /admin/zone_exceptions - Created: id=%d", item.ID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}

// UpdateException PUT /api/v1/admin/zone_exceptions/{id}
func (h *Handler) UpdateException(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /admin/zone_exceptions/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.ExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/zone_exceptions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.UpdateException(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/zone_exceptions/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, item)
}

// DeleteException DELETE /api/v1/admin/zone_exceptions/{id}
func (h *Handler) DeleteException(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /admin/zone_exceptions/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteException(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /admin/zone_exceptions/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/zone_exceptions/{id} - Deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
