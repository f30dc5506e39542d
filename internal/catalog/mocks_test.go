package catalog

import (
	"context"
	"sync"

	"github.com/tessera-games/loreforge/internal/domain"
)

type partKey struct {
	kind domain.PartKind
	id   int
}

// mockPartRepo is an in-memory repository.Part for tests
type mockPartRepo struct {
	mu        sync.Mutex
	parts     map[partKey]domain.Part
	syncMeta  map[string]*domain.SyncMetadata
	getCalls  int
	upsertErr error
	getErr    error
}

func newMockPartRepo() *mockPartRepo {
	return &mockPartRepo{
		parts:    make(map[partKey]domain.Part),
		syncMeta: make(map[string]*domain.SyncMetadata),
	}
}

func (m *mockPartRepo) GetPartsByKind(_ context.Context, kind domain.PartKind) ([]domain.Part, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	var out []domain.Part
	for key, part := range m.parts {
		if key.kind == kind {
			out = append(out, part)
		}
	}
	return out, nil
}

func (m *mockPartRepo) GetPartByID(_ context.Context, kind domain.PartKind, id int) (*domain.Part, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if part, ok := m.parts[partKey{kind, id}]; ok {
		return &part, nil
	}
	return nil, domain.ErrPartNotFound
}

func (m *mockPartRepo) UpsertPart(_ context.Context, part *domain.Part) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.parts[partKey{part.Kind, part.ID}] = *part
	return nil
}

func (m *mockPartRepo) CountPartsByKind(_ context.Context, kind domain.PartKind) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for key := range m.parts {
		if key.kind == kind {
			count++
		}
	}
	return count, nil
}

func (m *mockPartRepo) GetSyncMetadata(_ context.Context, configName string) (*domain.SyncMetadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if meta, ok := m.syncMeta[configName]; ok {
		return meta, nil
	}
	return nil, domain.ErrCatalogNotFound
}

func (m *mockPartRepo) UpsertSyncMetadata(_ context.Context, metadata *domain.SyncMetadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncMeta[metadata.ConfigName] = metadata
	return nil
}
