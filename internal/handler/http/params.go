// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/aion/internal/validators"
	"github.com/go-chi/chi/v5"
)

// Query parameters shared by the list endpoints.
const (
	queryUserID    = "userId"
	queryStartDate = "startDate"
	queryEndDate   = "endDate"
	queryLimit     = "limit"
)

// dateLayouts are the accepted ISO-8601 shapes of startDate/endDate, tried in
// order. A bare calendar date means midnight UTC of that day.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// idFromURL extracts the numeric {id} route parameter.
func idFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validators.FieldErrors{{Field: "id", Message: "must be a positive integer"}}
	}
	return id, nil
}

// userIDFromQuery extracts the required userId query parameter.
func userIDFromQuery(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get(queryUserID)
	if raw == "" {
		return 0, validators.FieldErrors{{Field: queryUserID, Message: "is required"}}
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, validators.FieldErrors{{Field: queryUserID, Message: "must be a positive integer"}}
	}
	return userID, nil
}

// dateRangeFromQuery extracts the optional startDate/endDate bounds. A nil
// pointer means the bound is open.
func dateRangeFromQuery(r *http.Request) (from, to *time.Time, err error) {
	fieldErrors := validators.FieldErrors{}

	from, parseErr := parseOptionalDate(r.URL.Query().Get(queryStartDate))
	if parseErr != nil {
		fieldErrors = append(fieldErrors, validators.FieldError{Field: queryStartDate, Message: "must be an ISO-8601 date"})
	}
	to, parseErr = parseOptionalDate(r.URL.Query().Get(queryEndDate))
	if parseErr != nil {
		fieldErrors = append(fieldErrors, validators.FieldError{Field: queryEndDate, Message: "must be an ISO-8601 date"})
	}

	if len(fieldErrors) > 0 {
		return nil, nil, fieldErrors
	}
	return from, to, nil
}

// limitFromQuery extracts the optional limit query parameter; 0 means
// unlimited.
func limitFromQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get(queryLimit)
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, validators.FieldErrors{{Field: queryLimit, Message: "must be a non-negative integer"}}
	}
	return limit, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return &parsed, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
