package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tessera-games/loreforge/internal/database/postgres"
	"github.com/tessera-games/loreforge/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Part  repository.Part
	Draft repository.Draft
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Part:  postgres.NewPartRepository(dbPool),
		Draft: postgres.NewDraftRepository(dbPool),
	}
}
