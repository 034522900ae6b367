package repomanager

import (
	"context"
	"database/sql"

	"github.com/reddsec/scoreboard/internal/dbx"
	"github.com/reddsec/scoreboard/internal/server/repositories/pendingsignups"
	"github.com/reddsec/scoreboard/internal/server/repositories/scores"
	"github.com/reddsec/scoreboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	PendingSignups(db dbx.DBTX) pendingsignups.Repository
	Scores(db dbx.DBTX) scores.Repository
}
