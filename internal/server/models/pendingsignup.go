package models

import "time"

// PendingSignup is a signup awaiting email verification. Rows are keyed by
// email; a repeated signup replaces the row and restarts the code window.
type PendingSignup struct {
	Email        string
	Username     string
	PasswordHash string
	Code         string
	CreatedAt    time.Time
}
