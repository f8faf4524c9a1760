// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/aion/internal/utils"
	"github.com/MKhiriev/aion/models"
)

// analysisResponse wraps the text produced by the mood-pattern and schedule
// analyses.
type analysisResponse struct {
	Insights string `json:"insights"`
}

// generateSuggestion forwards the caller's data snapshot to the completion
// bridge and returns the persisted insight. Unlike the analysis endpoints
// below, bridge failures propagate to the caller here.
func (h *Handler) generateSuggestion(w http.ResponseWriter, r *http.Request) {
	var request models.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.respondInvalidJSON(w, r, err)
		return
	}

	insight, err := h.services.SuggestionService.Generate(r.Context(), request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, insight, http.StatusOK)
}

func (h *Handler) analyzeLifeBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	analysis, err := h.services.SuggestionService.AnalyzeLifeBalance(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, analysis, http.StatusOK)
}

func (h *Handler) analyzeMoodPatterns(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	insights, err := h.services.SuggestionService.AnalyzeMoodPatterns(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, analysisResponse{Insights: insights}, http.StatusOK)
}

func (h *Handler) suggestScheduleOptimization(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromQuery(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	suggestion, err := h.services.SuggestionService.SuggestScheduleOptimization(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, analysisResponse{Insights: suggestion}, http.StatusOK)
}
