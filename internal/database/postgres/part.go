package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tessera-games/loreforge/internal/database/generated"
	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/repository"
)

// PartRepository implements repository.Part for PostgreSQL using sqlc
type PartRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewPartRepository creates a new PartRepository
func NewPartRepository(pool *pgxpool.Pool) repository.Part {
	return &PartRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// GetPartsByKind retrieves every part of the given catalog kind ordered by ID
func (r *PartRepository) GetPartsByKind(ctx context.Context, kind domain.PartKind) ([]domain.Part, error) {
	rows, err := r.q.GetPartsByKind(ctx, string(kind))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParts, err)
	}

	parts := make([]domain.Part, 0, len(rows))
	for _, row := range rows {
		part, err := mapPartRow(row)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	return parts, nil
}

// GetPartByID retrieves a single part by catalog kind and ID
func (r *PartRepository) GetPartByID(ctx context.Context, kind domain.PartKind, id int) (*domain.Part, error) {
	row, err := r.q.GetPartByID(ctx, generated.GetPartByIDParams{
		Kind:   string(kind),
		PartID: int32(id),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPart, err)
	}

	part, err := mapPartRow(row)
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// UpsertPart inserts or updates a part keyed by (kind, id)
func (r *PartRepository) UpsertPart(ctx context.Context, part *domain.Part) error {
	tiers := part.Tiers
	if tiers == nil {
		tiers = []domain.Tier{}
	}
	tiersJSON, err := json.Marshal(tiers)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalTiers, err)
	}

	params := generated.UpsertPartParams{
		PartID:             int32(part.ID),
		Kind:               string(part.Kind),
		Name:               part.Name,
		Category:           part.Category,
		Mechanic:           part.Mechanic,
		BaseEnergy:         part.Base.Energy,
		BaseTrainingPoints: int32(part.Base.TrainingPoints),
		BaseItemPoints:     int32(part.Base.ItemPoints),
		BaseCurrency:       int32(part.Base.Currency),
		Tiers:              tiersJSON,
	}

	if err := r.q.UpsertPart(ctx, params); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertPart, err)
	}

	return nil
}

// CountPartsByKind returns the number of stored parts for a catalog kind
func (r *PartRepository) CountPartsByKind(ctx context.Context, kind domain.PartKind) (int, error) {
	count, err := r.q.CountPartsByKind(ctx, string(kind))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountParts, err)
	}
	return int(count), nil
}

// GetSyncMetadata retrieves sync metadata for a catalog config file
func (r *PartRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	row, err := r.q.GetCatalogSync(ctx, configName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCatalogNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSync, err)
	}

	return &domain.SyncMetadata{
		ConfigName: row.ConfigName,
		Checksum:   row.Checksum,
		PartsCount: int(row.PartsCount),
		SyncedAt:   row.SyncedAt.Time,
	}, nil
}

// UpsertSyncMetadata inserts or updates sync metadata for a catalog config file
func (r *PartRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	params := generated.UpsertCatalogSyncParams{
		ConfigName: metadata.ConfigName,
		Checksum:   metadata.Checksum,
		PartsCount: int32(metadata.PartsCount),
		SyncedAt:   timeToTimestamptz(metadata.SyncedAt),
	}

	if err := r.q.UpsertCatalogSync(ctx, params); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertSync, err)
	}

	return nil
}
