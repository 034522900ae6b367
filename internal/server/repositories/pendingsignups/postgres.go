// Package pendingsignups provides a PostgreSQL-backed repository for signups
// that are waiting for their email verification code.
package pendingsignups

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/reddsec/scoreboard/internal/common"
	"github.com/reddsec/scoreboard/internal/dbx"
	"github.com/reddsec/scoreboard/internal/server/models"
)

// PostgresRepository implements pending-signup persistence over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert inserts a pending signup or, if the email already has one, replaces
// it and restarts the verification window.
func (r *PostgresRepository) Upsert(ctx context.Context, signup *models.PendingSignup) error {
	query := `
		INSERT INTO pending_signups (email, username, password_hash, code)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE
		SET username = EXCLUDED.username,
		    password_hash = EXCLUDED.password_hash,
		    code = EXCLUDED.code,
		    created_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query,
		signup.Email, signup.Username, signup.PasswordHash, signup.Code); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindValid returns the pending signup matching email and code that was
// created after cutoff. If no such row exists it returns common.ErrorNotFound.
func (r *PostgresRepository) FindValid(ctx context.Context, email string, code string, cutoff time.Time) (*models.PendingSignup, error) {
	query := `
		SELECT email, username, password_hash, code, created_at
		FROM pending_signups
		WHERE email = $1 AND code = $2 AND created_at > $3
	`
	signup := &models.PendingSignup{}
	err := r.db.QueryRowContext(ctx, query, email, code, cutoff).
		Scan(&signup.Email, &signup.Username, &signup.PasswordHash, &signup.Code, &signup.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return signup, nil
}

// Delete removes the pending signup for email, if any.
func (r *PostgresRepository) Delete(ctx context.Context, email string) error {
	query := `
		DELETE FROM pending_signups
		WHERE email = $1
	`
	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// DeleteExpired removes every pending signup created at or before cutoff and
// reports how many rows were removed.
func (r *PostgresRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM pending_signups
		WHERE created_at <= $1
	`
	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return affected, nil
}
