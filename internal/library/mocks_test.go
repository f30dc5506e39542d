package library

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/event"
	"github.com/tessera-games/loreforge/internal/rules/derive"
)

// mockDraftRepo is an in-memory draft store for unit tests.
type mockDraftRepo struct {
	mu     sync.Mutex
	drafts map[string]domain.Draft
	nextID int

	insertErr error
	getErr    error
	updateErr error
	deleteErr error
}

func newMockDraftRepo() *mockDraftRepo {
	return &mockDraftRepo{drafts: make(map[string]domain.Draft)}
}

func (m *mockDraftRepo) Insert(_ context.Context, draft *domain.Draft) (*domain.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return nil, m.insertErr
	}

	m.nextID++
	saved := *draft
	saved.ID = fmt.Sprintf("draft-%d", m.nextID)
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt
	m.drafts[saved.ID] = saved
	return &saved, nil
}

func (m *mockDraftRepo) Get(_ context.Context, draftID string) (*domain.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}

	draft, ok := m.drafts[draftID]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	return &draft, nil
}

func (m *mockDraftRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Draft
	for _, draft := range m.drafts {
		if draft.OwnerID == ownerID {
			out = append(out, draft)
		}
	}
	return out, nil
}

func (m *mockDraftRepo) ListByOwnerAndKind(_ context.Context, ownerID string, kind domain.DraftKind) ([]domain.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Draft
	for _, draft := range m.drafts {
		if draft.OwnerID == ownerID && draft.Kind == kind {
			out = append(out, draft)
		}
	}
	return out, nil
}

func (m *mockDraftRepo) Update(_ context.Context, draftID, name string, payload json.RawMessage) (*domain.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return nil, m.updateErr
	}

	draft, ok := m.drafts[draftID]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	draft.Name = name
	draft.Payload = payload
	draft.UpdatedAt = time.Now()
	m.drafts[draftID] = draft
	return &draft, nil
}

func (m *mockDraftRepo) Delete(_ context.Context, draftID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}

	if _, ok := m.drafts[draftID]; !ok {
		return domain.ErrDraftNotFound
	}
	delete(m.drafts, draftID)
	return nil
}

// mockSnapshots serves fixed in-memory indexes.
type mockSnapshots struct {
	indexes map[domain.PartKind]*derive.Index
	err     error
}

func newMockSnapshots(parts map[domain.PartKind][]domain.Part) *mockSnapshots {
	indexes := make(map[domain.PartKind]*derive.Index, len(parts))
	for kind, kindParts := range parts {
		indexes[kind] = derive.NewIndex(kindParts)
	}
	return &mockSnapshots{indexes: indexes}
}

func (m *mockSnapshots) Index(_ context.Context, kind domain.PartKind) (*derive.Index, error) {
	if m.err != nil {
		return nil, m.err
	}
	if idx, ok := m.indexes[kind]; ok {
		return idx, nil
	}
	return derive.NewIndex(nil), nil
}

func (m *mockSnapshots) Parts(ctx context.Context, kind domain.PartKind) ([]domain.Part, error) {
	idx, err := m.Index(ctx, kind)
	if err != nil {
		return nil, err
	}
	return idx.Parts(), nil
}

func (m *mockSnapshots) Invalidate(_ context.Context) {}

// recordingBus captures published events for assertions.
type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (b *recordingBus) Publish(_ context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBus) Subscribe(_ event.Type, _ event.Handler) {}

func (b *recordingBus) published() []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Event, len(b.events))
	copy(out, b.events)
	return out
}
