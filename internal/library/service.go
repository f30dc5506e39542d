// Package library manages user-owned drafts: saved characters, creatures,
// items, powers and techniques. Drafts store only the raw creator-form
// payload; cost totals are re-derived from the current catalog on every read
// so a catalog change is reflected the next time a draft is opened.
package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tessera-games/loreforge/internal/catalog"
	"github.com/tessera-games/loreforge/internal/character"
	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/event"
	"github.com/tessera-games/loreforge/internal/logger"
	"github.com/tessera-games/loreforge/internal/repository"
)

// DraftView is a draft joined with its freshly derived totals.
type DraftView struct {
	Draft   domain.Draft `json:"draft"`
	Derived interface{}  `json:"derived,omitempty"`
}

// Service defines the interface for library operations
type Service interface {
	CreateDraft(ctx context.Context, ownerID string, kind domain.DraftKind, name string, payload json.RawMessage) (*domain.Draft, error)
	GetDraft(ctx context.Context, ownerID, draftID string) (*DraftView, error)
	ListDrafts(ctx context.Context, ownerID string, kind domain.DraftKind) ([]domain.Draft, error)
	UpdateDraft(ctx context.Context, ownerID, draftID, name string, payload json.RawMessage) (*domain.Draft, error)
	DeleteDraft(ctx context.Context, ownerID, draftID string) error
}

// service implements the Service interface
type service struct {
	repo       repository.Draft
	snapshots  catalog.Snapshots
	characters character.Service
	bus        event.Bus
}

// NewService creates a new library service
func NewService(repo repository.Draft, snapshots catalog.Snapshots, characters character.Service, bus event.Bus) Service {
	return &service{
		repo:       repo,
		snapshots:  snapshots,
		characters: characters,
		bus:        bus,
	}
}

// CreateDraft validates and stores a new draft, then publishes draft.created.
func (s *service) CreateDraft(ctx context.Context, ownerID string, kind domain.DraftKind, name string, payload json.RawMessage) (*domain.Draft, error) {
	log := logger.FromContext(ctx)

	if err := validateDraftInput(kind, name, payload); err != nil {
		return nil, err
	}

	draft := &domain.Draft{
		OwnerID: ownerID,
		Kind:    kind,
		Name:    name,
		Payload: payload,
	}

	saved, err := s.repo.Insert(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSaveDraftFailed, err)
	}

	log.Info(LogMsgDraftCreated, "draft_id", saved.ID, "owner_id", ownerID, "kind", kind)
	s.publish(ctx, event.NewDraftEvent(event.DraftCreated, saved))

	return saved, nil
}

// GetDraft returns an owner's draft together with its re-derived totals.
func (s *service) GetDraft(ctx context.Context, ownerID, draftID string) (*DraftView, error) {
	draft, err := s.ownedDraft(ctx, ownerID, draftID)
	if err != nil {
		return nil, err
	}

	derived, err := s.derive(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &DraftView{Draft: *draft, Derived: derived}, nil
}

// ListDrafts returns an owner's drafts, optionally filtered by kind. The
// list view skips derivation; totals are only computed when a draft is
// opened.
func (s *service) ListDrafts(ctx context.Context, ownerID string, kind domain.DraftKind) ([]domain.Draft, error) {
	if kind == "" {
		drafts, err := s.repo.ListByOwner(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgListDraftsFailed, err)
		}
		return drafts, nil
	}

	if !domain.ValidDraftKind(kind) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}

	drafts, err := s.repo.ListByOwnerAndKind(ctx, ownerID, kind)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListDraftsFailed, err)
	}
	return drafts, nil
}

// UpdateDraft replaces a draft's name and payload, then publishes
// draft.updated. The kind is immutable after creation.
func (s *service) UpdateDraft(ctx context.Context, ownerID, draftID, name string, payload json.RawMessage) (*domain.Draft, error) {
	log := logger.FromContext(ctx)

	existing, err := s.ownedDraft(ctx, ownerID, draftID)
	if err != nil {
		return nil, err
	}

	if err := validateDraftInput(existing.Kind, name, payload); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, draftID, name, payload)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSaveDraftFailed, err)
	}

	log.Info(LogMsgDraftUpdated, "draft_id", draftID, "owner_id", ownerID)
	s.publish(ctx, event.NewDraftEvent(event.DraftUpdated, updated))

	return updated, nil
}

// DeleteDraft removes an owner's draft, then publishes draft.deleted.
func (s *service) DeleteDraft(ctx context.Context, ownerID, draftID string) error {
	log := logger.FromContext(ctx)

	existing, err := s.ownedDraft(ctx, ownerID, draftID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, draftID); err != nil {
		return fmt.Errorf(ErrMsgDeleteFailed, err)
	}

	log.Info(LogMsgDraftDeleted, "draft_id", draftID, "owner_id", ownerID)
	s.publish(ctx, event.NewDraftEvent(event.DraftDeleted, existing))

	return nil
}

// ownedDraft fetches a draft and enforces ownership. A foreign draft is
// reported as forbidden, not as missing, so the UI can distinguish the two.
func (s *service) ownedDraft(ctx context.Context, ownerID, draftID string) (*domain.Draft, error) {
	draft, err := s.repo.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, domain.ErrDraftNotFound) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetDraftFailed, err)
	}

	if draft.OwnerID != ownerID {
		return nil, domain.ErrDraftForbidden
	}
	return draft, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}

// validateDraftInput gates draft writes: known kind, sane name, payload that
// parses as the kind's form state.
func validateDraftInput(kind domain.DraftKind, name string, payload json.RawMessage) error {
	if !domain.ValidDraftKind(kind) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}
	if name == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameRequired)
	}
	if len(name) > MaxDraftNameLength {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameTooLong)
	}
	if len(payload) > MaxPayloadBytes {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPayloadTooLarge)
	}
	return validatePayloadShape(kind, payload)
}

func validatePayloadShape(kind domain.DraftKind, payload json.RawMessage) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: empty payload", domain.ErrInvalidPayload)
	}

	var err error
	switch kind {
	case domain.DraftCharacter:
		err = json.Unmarshal(payload, &domain.CharacterPayload{})
	case domain.DraftCreature:
		err = json.Unmarshal(payload, &domain.CreaturePayload{})
	case domain.DraftItem:
		err = json.Unmarshal(payload, &domain.ItemPayload{})
	case domain.DraftPower:
		err = json.Unmarshal(payload, &domain.PowerPayload{})
	case domain.DraftTechnique:
		err = json.Unmarshal(payload, &domain.TechniquePayload{})
	}
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return nil
}
