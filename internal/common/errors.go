// Package common defines shared constants and sentinel errors used across
// the OnCall client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnauthorized marks 401 responses. The session token has already been
	// cleared by the time a caller sees this error.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks transport-level failures where no response was
	// received from the backend at all.
	ErrUnavailable = errors.New("server unavailable")
)
