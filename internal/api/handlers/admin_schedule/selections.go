package admin_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-ZoneBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ZoneBooking/internal/service/schedule/models"
)

const msgMissingSelectionKey = "staffId и date обязательны"

// GetSelections GET /api/v1/admin/zone_selections
// С staffId и date возвращает один выбор, иначе список по фильтру
func (h *Handler) GetSelections(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	staffID, err := handlers.QueryInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /admin/zone_selections - Invalid staffId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	if staffID != nil && date != "" {
		sel, err := h.service.GetSelection(r.Context(), *staffID, date)
		if err != nil {
			h.respondError(w, "GET /admin/zone_selections", err)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, sel)
		return
	}

	req, err := listRequest(r)
	if err != nil {
		h.logger.Warn("GET /admin/zone_selections - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	selections, err := h.service.ListSelections(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /admin/zone_selections", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, selections)
}

// SetSelection PUT /api/v1/admin/zone_selections
func (h *Handler) SetSelection(w http.ResponseWriter, r *http.Request) {
	var req models.SelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/zone_selections - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sel, err := h.service.SetSelection(r.Context(), &req)
	if err != nil {
		h.respondError(w, "PUT /admin/zone_selections", err)
		return
	}

	h.logger.Info("PUT /admin/zone_selections - Zone selected: staff=%d, date=%s, zone=%d", sel.StaffID, sel.Date, sel.ZoneID)
	handlers.RespondJSON(w, http.StatusOK, sel)
}

// DeleteSelection DELETE /api/v1/admin/zone_selections?staffId&date
func (h *Handler) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	staffID, err := handlers.QueryInt64(r, "staffId")
	if err != nil || staffID == nil || date == "" {
		h.logger.Warn("DELETE /admin/zone_selections - Missing staffId or date: %v", err)
		handlers.RespondBadRequest(w, msgMissingSelectionKey)
		return
	}

	if err := h.service.DeleteSelection(r.Context(), *staffID, date); err != nil {
		h.respondError(w, "DELETE /admin/zone_selections", err)
		return
	}

	h.logger.Info("DELETE /admin/zone_selections - Selection removed: staff=%d, date=%s", *staffID, date)
	handlers.RespondNoContent(w)
}
