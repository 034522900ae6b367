// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a verified account. PasswordHash carries the PBKDF2 salt and
// derived key as a single "hexsalt:hexkey" string.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
