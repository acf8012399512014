package admin_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

// ListStaff GET /api/v1/admin/staff
func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.service.ListStaff(r.Context())
	if err != nil {
		h.respondError(w, "GET /admin/staff", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, staff)
}

// CreateStaff POST /api/v1/admin/staff
func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req models.StaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	staff, err := h.service.CreateStaff(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/staff", err)
		return
	}

	h.logger.Info("POST /admin/staff - Staff created: id=%d", staff.ID)
	handlers.RespondJSON(w, http.StatusCreated, staff)
}
