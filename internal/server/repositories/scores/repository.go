package scores

import (
	"context"

	"github.com/reddsec/scoreboard/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, name string, score int64) error
	Top(ctx context.Context, limit int) ([]models.ScoreEntry, error)
	BestByName(ctx context.Context, name string) (*models.ScoreEntry, error)
	RenameAll(ctx context.Context, oldName string, newName string) (int64, error)
}
