// Package services contains server-side business logic. This file implements
// AccountService, which handles signup, email verification, login, and
// username changes.
package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reddsec/scoreboard/internal/common"
	"github.com/reddsec/scoreboard/internal/dbx"
	"github.com/reddsec/scoreboard/internal/server/auth"
	"github.com/reddsec/scoreboard/internal/server/config"
	"github.com/reddsec/scoreboard/internal/server/mail"
	"github.com/reddsec/scoreboard/internal/server/models"
	"github.com/reddsec/scoreboard/internal/server/passhash"
	"github.com/reddsec/scoreboard/internal/server/repositories/repomanager"
	"github.com/reddsec/scoreboard/internal/server/validate"
)

// Session is what a successful login yields.
type Session struct {
	Username string
	Token    string
}

// AccountService provides account lifecycle operations:
// - Signup: stash credentials and email a verification code
// - Verify: promote a pending signup to a user
// - Login: verify credentials and mint a session token
// - Rename: change the username and rewrite past leaderboard rows
type AccountService struct {
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	mailer           mail.Mailer
	jwtSecret        []byte
	sessionValidity  time.Duration
	pendingSignupTTL time.Duration
}

// NewAccountService constructs an AccountService using repositories, the
// mailer, and server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, mailer mail.Mailer, cfg *config.Config) *AccountService {
	return &AccountService{
		db:               db,
		repomanager:      m,
		mailer:           mailer,
		jwtSecret:        []byte(cfg.SecretKey),
		sessionValidity:  cfg.SessionTokenValidity,
		pendingSignupTTL: cfg.PendingSignupTTL,
	}
}

// generateCode returns a random zero-padded 6-digit verification code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("error generating code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Signup validates the registration data, stores it as a pending signup, and
// emails the verification code. A pending row for the same email is replaced.
// The row is kept even when mail delivery fails so the client may retry.
func (s *AccountService) Signup(ctx context.Context, email, username, password string) error {
	if email == "" || username == "" || password == "" {
		return common.NewValidationError("email, username and password are required")
	}
	username = strings.TrimSpace(username)
	if !validate.Email(email) {
		return common.NewValidationError("please enter a valid email address")
	}
	if !validate.Username(username) {
		return common.NewValidationError("username must be 3-15 characters, letters, digits and underscores only")
	}
	if !validate.Password(password) {
		return common.NewValidationError("password must be 8-128 characters")
	}

	if _, err := s.repomanager.Users(s.db).GetByEmail(ctx, email); err == nil {
		return common.ErrorEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return common.ErrorInternal
	}

	code, err := generateCode()
	if err != nil {
		return common.ErrorInternal
	}

	signup := &models.PendingSignup{
		Email:        email,
		Username:     username,
		PasswordHash: passhash.Hash(password),
		Code:         code,
	}
	if err := s.repomanager.PendingSignups(s.db).Upsert(ctx, signup); err != nil {
		return common.ErrorInternal
	}

	if err := s.mailer.SendVerificationCode(ctx, email, code); err != nil {
		return common.ErrorMailDelivery
	}
	return nil
}

// Verify checks the emailed code and, inside one transaction, creates the
// user and removes the pending signup. It returns the new user's username.
// A wrong, expired, or unknown code yields ErrorCodeInvalid.
func (s *AccountService) Verify(ctx context.Context, email, code string) (string, error) {
	if !validate.Code(code) {
		return "", common.NewValidationError("please enter the 6-digit verification code")
	}

	cutoff := time.Now().Add(-s.pendingSignupTTL)
	signup, err := s.repomanager.PendingSignups(s.db).FindValid(ctx, email, code, cutoff)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorCodeInvalid
		}
		return "", common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        signup.Email,
		Username:     signup.Username,
		PasswordHash: signup.PasswordHash,
	}
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		if err := s.repomanager.PendingSignups(tx).Delete(ctx, signup.Email); err != nil {
			return fmt.Errorf("error removing pending signup: %w", err)
		}
		return nil
	}); err != nil {
		return "", common.ErrorInternal
	}

	return user.Username, nil
}

// Login verifies the credentials and returns a session. The error is the
// same whether the email is unknown or the password is wrong.
func (s *AccountService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, common.NewValidationError("email and password are required")
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !passhash.Verify(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.Email, user.Username, s.jwtSecret, s.sessionValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &Session{Username: user.Username, Token: token}, nil
}

// Me resolves a session token to the current username, reading the account
// so a rename after login is reflected.
func (s *AccountService) Me(ctx context.Context, token string) (string, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return "", common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	return user.Username, nil
}

// Rename changes the account's username and rewrites its leaderboard rows in
// one transaction. The caller must present the email with its current
// username; a mismatch yields ErrorForbidden.
func (s *AccountService) Rename(ctx context.Context, email, oldUsername, newUsername string) error {
	if email == "" || oldUsername == "" || newUsername == "" {
		return common.NewValidationError("email, current and new usernames are required")
	}
	newUsername = strings.TrimSpace(newUsername)
	if !validate.Email(email) {
		return common.NewValidationError("please enter a valid email address")
	}
	if !validate.Username(newUsername) {
		return common.NewValidationError("username must be 3-15 characters, letters, digits and underscores only")
	}

	if _, err := s.repomanager.Users(s.db).GetByEmailAndUsername(ctx, email, oldUsername); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorForbidden
		}
		return common.ErrorInternal
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).UpdateUsername(ctx, email, newUsername); err != nil {
			return fmt.Errorf("error updating username: %w", err)
		}
		if _, err := s.repomanager.Scores(tx).RenameAll(ctx, oldUsername, newUsername); err != nil {
			return fmt.Errorf("error renaming scores: %w", err)
		}
		return nil
	}); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// PrunePendingSignups removes expired pending signups and reports how many
// rows were removed. It is called periodically from the app loop.
func (s *AccountService) PrunePendingSignups(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.pendingSignupTTL)
	return s.repomanager.PendingSignups(s.db).DeleteExpired(ctx, cutoff)
}
