package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// Ordinary not-found is signalled through these sentinels; anything else is a
// programming-contract violation that upstream validation prevents.
var (
	ErrUserNotFound        = errors.New("user was not found")
	ErrLifeDomainNotFound  = errors.New("life domain was not found")
	ErrEventNotFound       = errors.New("event was not found")
	ErrMoodNotFound        = errors.New("mood was not found")
	ErrTransactionNotFound = errors.New("transaction was not found")
	ErrGoalNotFound        = errors.New("goal was not found")
	ErrContactNotFound     = errors.New("contact was not found")
	ErrInsightNotFound     = errors.New("insight was not found")

	// ErrNoUsersRegistered is returned by UserRepository.First when the store
	// holds no users at all.
	ErrNoUsersRegistered = errors.New("no users are registered")
)
