package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/aion/internal/utils"
	"github.com/MKhiriev/aion/models"
)

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	goals, err := h.services.GoalService.List(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, goals, http.StatusOK)
}

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertGoal
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	goal, err := h.services.GoalService.Create(r.Context(), insert)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, goal, http.StatusCreated)
}

func (h *Handler) getGoal(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	goal, err := h.services.GoalService.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, goal, http.StatusOK)
}

func (h *Handler) updateGoal(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var patch models.GoalPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	goal, err := h.services.GoalService.Update(r.Context(), id, patch)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, goal, http.StatusOK)
}

func (h *Handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.services.GoalService.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
