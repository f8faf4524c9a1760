package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/aion/internal/utils"
	"github.com/MKhiriev/aion/models"
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	contacts, err := h.services.ContactService.List(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertContact
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	contact, err := h.services.ContactService.Create(r.Context(), insert)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusCreated)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var patch models.ContactPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	contact, err := h.services.ContactService.Update(r.Context(), id, patch)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, contact, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.services.ContactService.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
