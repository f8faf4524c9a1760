package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/aion/internal/utils"
	"github.com/MKhiriev/aion/models"
)

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
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

	events, err := h.services.EventService.List(r.Context(), userID, from, to)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertEvent
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	event, err := h.services.EventService.Create(r.Context(), insert)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusCreated)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	event, err := h.services.EventService.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusOK)
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var patch models.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	event, err := h.services.EventService.Update(r.Context(), id, patch)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusOK)
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.services.EventService.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
