package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/aion/internal/utils"
	"github.com/MKhiriev/aion/models"
)

func (h *Handler) listLifeDomains(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	domains, err := h.services.LifeDomainService.List(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, domains, http.StatusOK)
}

func (h *Handler) createLifeDomain(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertLifeDomain
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	domain, err := h.services.LifeDomainService.Create(r.Context(), insert)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, domain, http.StatusCreated)
}

func (h *Handler) getLifeDomain(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	domain, err := h.services.LifeDomainService.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, domain, http.StatusOK)
}

func (h *Handler) updateLifeDomain(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var patch models.LifeDomainPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	domain, err := h.services.LifeDomainService.Update(r.Context(), id, patch)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, domain, http.StatusOK)
}

func (h *Handler) deleteLifeDomain(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.services.LifeDomainService.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
