package http

import (
	"net/http"

	"github.com/MKhiriev/aion/internal/utils"
)

// dashboardSummary returns the fully derived dashboard view in one call.
// The summary is computed deterministically from stored entities; it never
// touches the suggestion bridge.
func (h *Handler) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	summary, err := h.services.DashboardService.Summary(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
