// Package validate holds the pure input predicates applied by the account
// and score services. The server is authoritative; any client-side checks
// are cosmetic duplicates of these.
package validate

import (
	"regexp"
	"strings"
)

// emailPattern is deliberately permissive: one @, no whitespace, a dotted
// domain. Deliverability is proven by the verification code, not the regex.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	// MaxScore is the largest accepted play result.
	MaxScore = 1_000_000

	maxEmailLen    = 255
	minUsernameLen = 3
	maxUsernameLen = 15
	minPasswordLen = 8
	maxPasswordLen = 128
)

// Email reports whether s looks like a deliverable address of sane length.
func Email(s string) bool {
	return len(s) <= maxEmailLen && emailPattern.MatchString(s)
}

// Username reports whether the trimmed name is 3-15 characters of ASCII
// letters, digits, and underscores.
func Username(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < minUsernameLen || len(s) > maxUsernameLen {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// Password reports whether the password length is within bounds. No charset
// rules: length is the only server-side requirement.
func Password(s string) bool {
	return len(s) >= minPasswordLen && len(s) <= maxPasswordLen
}

// Code reports whether s is exactly six ASCII digits.
func Code(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Score reports whether the submitted score is within [0, MaxScore].
func Score(score int64) bool {
	return score >= 0 && score <= MaxScore
}

// PlayerName reports whether the trimmed display name fits a score row.
// Unlike Username it allows any characters: historic rows predate accounts.
func PlayerName(s string) bool {
	n := len(strings.TrimSpace(s))
	return n >= 1 && n <= maxUsernameLen
}
