// Package common defines shared constants and sentinel errors used across
// the scoreboard server layers. Callers should use errors.Is to match the
// sentinel values and errors.As for ValidationError.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Signup/verification flow errors.
	ErrorEmailTaken   = errors.New("email already registered")
	ErrorCodeInvalid  = errors.New("verification code incorrect or expired")
	ErrorMailDelivery = errors.New("mail delivery failed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)

// ValidationError carries a field-specific, user-facing message for a
// rejected input. The HTTP layer surfaces Msg verbatim with a 400 status.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError wraps a user-facing message into a ValidationError.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}
