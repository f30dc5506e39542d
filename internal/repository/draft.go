package repository

import (
	"context"
	"encoding/json"

	"github.com/tessera-games/loreforge/internal/domain"
)

// Draft defines the interface for library draft persistence
type Draft interface {
	Insert(ctx context.Context, draft *domain.Draft) (*domain.Draft, error)
	Get(ctx context.Context, draftID string) (*domain.Draft, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Draft, error)
	ListByOwnerAndKind(ctx context.Context, ownerID string, kind domain.DraftKind) ([]domain.Draft, error)
	Update(ctx context.Context, draftID, name string, payload json.RawMessage) (*domain.Draft, error)
	Delete(ctx context.Context, draftID string) error
}
