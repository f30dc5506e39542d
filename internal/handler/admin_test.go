package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-games/loreforge/internal/catalog"
	"github.com/tessera-games/loreforge/internal/domain"
)

// memPartRepo is a minimal in-memory part repository for the reload test.
type memPartRepo struct {
	upserts int
	syncs   map[string]domain.SyncMetadata
}

func newMemPartRepo() *memPartRepo {
	return &memPartRepo{syncs: make(map[string]domain.SyncMetadata)}
}

func (m *memPartRepo) GetPartsByKind(context.Context, domain.PartKind) ([]domain.Part, error) {
	return nil, nil
}

func (m *memPartRepo) GetPartByID(context.Context, domain.PartKind, int) (*domain.Part, error) {
	return nil, domain.ErrPartNotFound
}

func (m *memPartRepo) UpsertPart(context.Context, *domain.Part) error {
	m.upserts++
	return nil
}

func (m *memPartRepo) CountPartsByKind(context.Context, domain.PartKind) (int, error) {
	return m.upserts, nil
}

func (m *memPartRepo) GetSyncMetadata(_ context.Context, configName string) (*domain.SyncMetadata, error) {
	meta, ok := m.syncs[configName]
	if !ok {
		return nil, domain.ErrCatalogNotFound
	}
	return &meta, nil
}

func (m *memPartRepo) UpsertSyncMetadata(_ context.Context, metadata *domain.SyncMetadata) error {
	m.syncs[metadata.ConfigName] = *metadata
	return nil
}

const testCatalogJSON = `{
  "version": "1.0",
  "kind": "power",
  "parts": [
    {"id": 1, "name": "Fire Bolt", "category": "Damage", "base": {"energy": 2.0, "training_points": 3}}
  ]
}`

func TestHandleReloadParts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "powers.json"), []byte(testCatalogJSON), 0o600))

	repo := newMemPartRepo()
	snapshots := testSnapshots()
	h := NewAdminHandlers(catalog.NewLoader(), repo, snapshots, nopBus{}, dir)

	req := httptest.NewRequest("POST", "/admin/reload-parts", nil)
	w := httptest.NewRecorder()

	h.HandleReloadParts().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgCatalogReloadSuccess)
	assert.Equal(t, 1, repo.upserts)
	assert.True(t, snapshots.invalidated)

	t.Run("second reload skips unchanged config", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleReloadParts().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"skipped":true`)
		assert.Equal(t, 1, repo.upserts)
	})

	t.Run("empty catalog dir fails", func(t *testing.T) {
		empty := NewAdminHandlers(catalog.NewLoader(), repo, snapshots, nopBus{}, t.TempDir())

		w := httptest.NewRecorder()
		empty.HandleReloadParts().ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgReloadPartsFailed)
	})
}
