package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/reddsec/scoreboard/internal/common"
	"github.com/reddsec/scoreboard/internal/server/models"
	"github.com/reddsec/scoreboard/internal/server/repositories/repomanager"
	"github.com/reddsec/scoreboard/internal/server/validate"
)

// topLimit is how many rows the leaderboard returns.
const topLimit = 10

// ScoreService provides leaderboard operations: submitting play results,
// listing the top rows, and looking up a player's best score.
type ScoreService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewScoreService constructs a ScoreService over the given repositories.
func NewScoreService(db *sql.DB, m repomanager.RepositoryManager) *ScoreService {
	return &ScoreService{db: db, repomanager: m}
}

// Submit validates and records one play result. The name is trimmed before
// storage.
func (s *ScoreService) Submit(ctx context.Context, name string, score int64) error {
	if !validate.PlayerName(name) {
		return common.NewValidationError("invalid player name")
	}
	if !validate.Score(score) {
		return common.NewValidationError("invalid score data")
	}
	if err := s.repomanager.Scores(s.db).Insert(ctx, strings.TrimSpace(name), score); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// Top returns the leaderboard, best scores first.
func (s *ScoreService) Top(ctx context.Context) ([]models.ScoreEntry, error) {
	entries, err := s.repomanager.Scores(s.db).Top(ctx, topLimit)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return entries, nil
}

// Search returns the best score recorded for name, or ErrorNotFound when the
// player has no rows.
func (s *ScoreService) Search(ctx context.Context, name string) (*models.ScoreEntry, error) {
	entry, err := s.repomanager.Scores(s.db).BestByName(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return entry, nil
}
