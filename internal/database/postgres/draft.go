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

// DraftRepository implements repository.Draft for PostgreSQL using sqlc
type DraftRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewDraftRepository creates a new DraftRepository
func NewDraftRepository(pool *pgxpool.Pool) repository.Draft {
	return &DraftRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// Insert stores a new draft and returns it with server-assigned ID and timestamps
func (r *DraftRepository) Insert(ctx context.Context, draft *domain.Draft) (*domain.Draft, error) {
	row, err := r.q.InsertDraft(ctx, generated.InsertDraftParams{
		OwnerID: draft.OwnerID,
		Kind:    string(draft.Kind),
		Name:    draft.Name,
		Payload: draft.Payload,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertDraft, err)
	}

	saved := mapDraftRow(row)
	return &saved, nil
}

// Get retrieves a draft by ID
func (r *DraftRepository) Get(ctx context.Context, draftID string) (*domain.Draft, error) {
	id, err := parseDraftUUID(draftID)
	if err != nil {
		return nil, domain.ErrDraftNotFound
	}

	row, err := r.q.GetDraft(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDraft, err)
	}

	draft := mapDraftRow(row)
	return &draft, nil
}

// ListByOwner retrieves all drafts owned by a user, most recently updated first
func (r *DraftRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Draft, error) {
	rows, err := r.q.ListDraftsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDrafts, err)
	}

	drafts := make([]domain.Draft, len(rows))
	for i, row := range rows {
		drafts[i] = mapDraftRow(row)
	}
	return drafts, nil
}

// ListByOwnerAndKind retrieves a user's drafts of one kind, most recently updated first
func (r *DraftRepository) ListByOwnerAndKind(ctx context.Context, ownerID string, kind domain.DraftKind) ([]domain.Draft, error) {
	rows, err := r.q.ListDraftsByOwnerAndKind(ctx, generated.ListDraftsByOwnerAndKindParams{
		OwnerID: ownerID,
		Kind:    string(kind),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDrafts, err)
	}

	drafts := make([]domain.Draft, len(rows))
	for i, row := range rows {
		drafts[i] = mapDraftRow(row)
	}
	return drafts, nil
}

// Update replaces a draft's name and payload and bumps updated_at
func (r *DraftRepository) Update(ctx context.Context, draftID, name string, payload json.RawMessage) (*domain.Draft, error) {
	id, err := parseDraftUUID(draftID)
	if err != nil {
		return nil, domain.ErrDraftNotFound
	}

	row, err := r.q.UpdateDraft(ctx, generated.UpdateDraftParams{
		DraftID: id,
		Name:    name,
		Payload: payload,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateDraft, err)
	}

	draft := mapDraftRow(row)
	return &draft, nil
}

// Delete removes a draft by ID
func (r *DraftRepository) Delete(ctx context.Context, draftID string) error {
	id, err := parseDraftUUID(draftID)
	if err != nil {
		return domain.ErrDraftNotFound
	}

	affected, err := r.q.DeleteDraft(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteDraft, err)
	}
	if affected == 0 {
		return domain.ErrDraftNotFound
	}
	return nil
}
