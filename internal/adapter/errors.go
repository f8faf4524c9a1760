package adapter

import "errors"

var (
	// ErrNotConfigured is returned when no API key is set; the suggestion
	// service treats it like any other upstream failure and falls back.
	ErrNotConfigured = errors.New("completion client is not configured")

	// ErrCompletionTimeout is returned when the completion call exceeds the
	// configured request timeout.
	ErrCompletionTimeout = errors.New("completion request timed out")

	// ErrCompletionFailed is returned on any non-2xx upstream response.
	ErrCompletionFailed = errors.New("completion request failed")

	// ErrEmptyCompletion is returned when the upstream reply carries no
	// choices or an empty message.
	ErrEmptyCompletion = errors.New("completion reply was empty")
)
