// Package common defines shared constants and sentinel errors used across
// the careercli client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Remote API status classes.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrUnavailable    = errors.New("server unavailable")

	// ErrPendingApproval marks a 403 received by an employer whose account
	// has not been approved by an administrator yet.
	ErrPendingApproval = errors.New("employer account pending approval")

	// Client-side form validation.
	ErrorValidation = errors.New("validation error")

	// ErrTokenExpired is the message of the 401 raised for a bearer token
	// past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrNotAuthenticated is returned by session-gated operations invoked
	// without a complete session.
	ErrNotAuthenticated = errors.New("not authenticated")
)
