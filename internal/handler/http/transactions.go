package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/aion/internal/utils"
	"github.com/MKhiriev/aion/models"
)

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
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

	transactions, err := h.services.TransactionService.List(r.Context(), userID, from, to)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, transactions, http.StatusOK)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertTransaction
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	transaction, err := h.services.TransactionService.Create(r.Context(), insert)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, transaction, http.StatusCreated)
}
