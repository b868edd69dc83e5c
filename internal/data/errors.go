package data

import "errors"

// Shared sentinel errors for data-layer repositories. Not-found is a sentinel
// rather than an AppError: callers are expected to check for it and treat it
// as an empty result, not a failure.
var (
	// ErrOffboardingNotFound is returned when no row matches the id under the
	// caller's ownership filter. A row owned by another tenant or session
	// yields the same sentinel.
	ErrOffboardingNotFound = errors.New("scheduled offboarding not found")

	// ErrSessionNotFound is returned when a session does not exist or has expired.
	ErrSessionNotFound = errors.New("session not found")
)
