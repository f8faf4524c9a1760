package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/aion/internal/utils"
	"github.com/MKhiriev/aion/models"
)

func (h *Handler) listMoods(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	from, to, err := dateRangeFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	moods, err := h.services.MoodService.List(r.Context(), userID, from, to)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, moods, http.StatusOK)
}

func (h *Handler) createMood(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertMood
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	mood, err := h.services.MoodService.Create(r.Context(), insert)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, mood, http.StatusCreated)
}
