package service

import "errors"

// Validation failures are reported as validators.FieldErrors rather than a
// service-level sentinel, so the transport layer can name the failed fields.
var (
	ErrWrongPassword = errors.New("wrong password")

	// Uniqueness conflicts detected at registration time.
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already taken")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
