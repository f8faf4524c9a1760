package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/aion/internal/utils"
	"github.com/MKhiriev/aion/models"
)

func (h *Handler) listInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	limit, err := limitFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	insights, err := h.services.InsightService.List(r.Context(), userID, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, insights, http.StatusOK)
}

func (h *Handler) createInsight(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertInsight
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	insight, err := h.services.InsightService.Create(r.Context(), insert)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, insight, http.StatusCreated)
}

func (h *Handler) markInsightRead(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	insight, err := h.services.InsightService.MarkRead(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, insight, http.StatusOK)
}

func (h *Handler) markInsightActioned(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	insight, err := h.services.InsightService.MarkActioned(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, insight, http.StatusOK)
}
