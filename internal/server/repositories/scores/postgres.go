// Package scores provides a PostgreSQL-backed repository for leaderboard rows.
package scores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/reddsec/scoreboard/internal/common"
	"github.com/reddsec/scoreboard/internal/dbx"
	"github.com/reddsec/scoreboard/internal/server/models"
)

// PostgresRepository implements leaderboard persistence over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert records one play result. Every submission is kept; ranking queries
// pick the best per player.
func (r *PostgresRepository) Insert(ctx context.Context, name string, score int64) error {
	query := `
		INSERT INTO scores (name, score)
		VALUES ($1, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, name, score); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Top returns up to limit rows ordered by score descending.
func (r *PostgresRepository) Top(ctx context.Context, limit int) ([]models.ScoreEntry, error) {
	query := `
		SELECT name, score
		FROM scores
		ORDER BY score DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	entries := []models.ScoreEntry{}
	for rows.Next() {
		var e models.ScoreEntry
		if err := rows.Scan(&e.Name, &e.Score); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entries, nil
}

// BestByName returns the highest score recorded for name, or
// common.ErrorNotFound when the player has no rows.
func (r *PostgresRepository) BestByName(ctx context.Context, name string) (*models.ScoreEntry, error) {
	query := `
		SELECT name, score
		FROM scores
		WHERE name = $1
		ORDER BY score DESC
		LIMIT 1
	`
	entry := &models.ScoreEntry{}
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&entry.Name, &entry.Score); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

// RenameAll rewrites every row recorded under oldName to newName and reports
// how many rows changed.
func (r *PostgresRepository) RenameAll(ctx context.Context, oldName string, newName string) (int64, error) {
	query := `
		UPDATE scores SET name = $2
		WHERE name = $1
	`
	res, err := r.db.ExecContext(ctx, query, oldName, newName)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return affected, nil
}
