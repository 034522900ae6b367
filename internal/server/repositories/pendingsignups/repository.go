package pendingsignups

import (
	"context"
	"time"

	"github.com/reddsec/scoreboard/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, signup *models.PendingSignup) error
	FindValid(ctx context.Context, email string, code string, cutoff time.Time) (*models.PendingSignup, error)
	Delete(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
