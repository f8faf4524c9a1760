package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/aion/internal/adapter"
	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/service"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/internal/utils"
	"github.com/MKhiriev/aion/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrUsernameTaken:       http.StatusConflict,
	service.ErrEmailTaken:          http.StatusConflict,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrUserNotFound:        http.StatusNotFound,
	store.ErrLifeDomainNotFound:  http.StatusNotFound,
	store.ErrEventNotFound:       http.StatusNotFound,
	store.ErrMoodNotFound:        http.StatusNotFound,
	store.ErrTransactionNotFound: http.StatusNotFound,
	store.ErrGoalNotFound:        http.StatusNotFound,
	store.ErrContactNotFound:     http.StatusNotFound,
	store.ErrInsightNotFound:     http.StatusNotFound,
	store.ErrNoUsersRegistered:   http.StatusNotFound,

	adapter.ErrCompletionTimeout: http.StatusGatewayTimeout,
	adapter.ErrCompletionFailed:  http.StatusInternalServerError,
	adapter.ErrEmptyCompletion:   http.StatusInternalServerError,
	adapter.ErrNotConfigured:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the JSON body of every failed request. Errors is populated
// only for validation failures, where each entry names the offending field.
type errorResponse struct {
	Message string                  `json:"message"`
	Errors  []validators.FieldError `json:"errors,omitempty"`
}

// respondError maps err to an HTTP status and writes the JSON error body.
// Validation failures always become 400 with per-field details; anything else
// goes through the sentinel table, defaulting to 500.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if fieldErrors, ok := validators.AsFieldErrors(err); ok {
		log.Err(err).Msg("validation failed")
		utils.WriteJSON(w, errorResponse{Message: "validation failed", Errors: fieldErrors}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
		utils.WriteJSON(w, errorResponse{Message: http.StatusText(http.StatusInternalServerError)}, status)
		return
	}

	log.Err(err).Int("status", status).Send()
	utils.WriteJSON(w, errorResponse{Message: err.Error()}, status)
}

// respondInvalidJSON reports an undecodable request body.
func (h *Handler) respondInvalidJSON(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
	utils.WriteJSON(w, errorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
}
