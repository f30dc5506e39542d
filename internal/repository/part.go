package repository

import (
	"context"

	"github.com/tessera-games/loreforge/internal/domain"
)

// Part defines the interface for part catalog persistence
type Part interface {
	// Part operations
	GetPartsByKind(ctx context.Context, kind domain.PartKind) ([]domain.Part, error)
	GetPartByID(ctx context.Context, kind domain.PartKind, id int) (*domain.Part, error)
	UpsertPart(ctx context.Context, part *domain.Part) error
	CountPartsByKind(ctx context.Context, kind domain.PartKind) (int, error)

	// Sync metadata operations
	GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error)
	UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error
}
