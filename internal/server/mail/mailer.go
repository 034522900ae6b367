// Package mail delivers transactional email through the Resend HTTP API.
package mail

import "context"

// Mailer sends the messages the account flow needs.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to string, code string) error
}
