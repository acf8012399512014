package admin_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// ListZones GET /api/v1/admin/zones
func (h *Handler) ListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.service.ListZones(r.Context())
	if err != nil {
		h.respondError(w, "GET /admin/zones", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, zones)
}

// GetZone GET /api/v1/admin/zones/{id}
func (h *Handler) GetZone(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /admin/zones/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	zone, err := h.service.GetZone(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /admin/zones/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, zone)
}

// CreateZone POST /api/v1/admin/zones
func (h *Handler) CreateZone(w http.ResponseWriter, r *http.Request) {
	var req models.ZoneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/zones - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	zone, err := h.service.CreateZone(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/zones", err)
		return
	}

	h.logger.Info("POST /admin/zones - Zone created: id=%d", zone.ID)
	handlers.RespondJSON(w, http.StatusCreated, zone)
}

// UpdateZone PUT /api/v1/admin/zones/{id}
func (h *Handler) UpdateZone(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /admin/zones/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.ZoneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/zones/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	zone, err := h.service.UpdateZone(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/zones/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, zone)
}

// DeleteZone DELETE /api/v1/admin/zones/{id}
func (h *Handler) DeleteZone(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /admin/zones/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteZone(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /admin/zones/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/zones/{id} - Zone deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
