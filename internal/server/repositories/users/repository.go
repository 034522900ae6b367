package users

import (
	"context"

	"github.com/reddsec/scoreboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailAndUsername(ctx context.Context, email string, username string) (*models.User, error)
	UpdateUsername(ctx context.Context, email string, newUsername string) error
}
