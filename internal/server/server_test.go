package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-games/loreforge/internal/catalog"
	"github.com/tessera-games/loreforge/internal/character"
	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/event"
	"github.com/tessera-games/loreforge/internal/library"
)

type stubPool struct{}

func (stubPool) Ping(context.Context) error { return nil }
func (stubPool) Close()                     {}

type stubPartRepo struct {
	parts []domain.Part
}

func (s *stubPartRepo) GetPartsByKind(_ context.Context, kind domain.PartKind) ([]domain.Part, error) {
	var out []domain.Part
	for _, p := range s.parts {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPartRepo) GetPartByID(_ context.Context, kind domain.PartKind, id int) (*domain.Part, error) {
	for _, p := range s.parts {
		if p.Kind == kind && p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrPartNotFound
}

func (s *stubPartRepo) UpsertPart(context.Context, *domain.Part) error { return nil }

func (s *stubPartRepo) CountPartsByKind(context.Context, domain.PartKind) (int, error) {
	return len(s.parts), nil
}

func (s *stubPartRepo) GetSyncMetadata(context.Context, string) (*domain.SyncMetadata, error) {
	return nil, domain.ErrCatalogNotFound
}

func (s *stubPartRepo) UpsertSyncMetadata(context.Context, *domain.SyncMetadata) error { return nil }

type stubDraftRepo struct{}

func (stubDraftRepo) Insert(_ context.Context, draft *domain.Draft) (*domain.Draft, error) {
	saved := *draft
	saved.ID = "draft-1"
	return &saved, nil
}

func (stubDraftRepo) Get(context.Context, string) (*domain.Draft, error) {
	return nil, domain.ErrDraftNotFound
}

func (stubDraftRepo) ListByOwner(context.Context, string) ([]domain.Draft, error) { return nil, nil }

func (stubDraftRepo) ListByOwnerAndKind(context.Context, string, domain.DraftKind) ([]domain.Draft, error) {
	return nil, nil
}

func (stubDraftRepo) Update(context.Context, string, string, json.RawMessage) (*domain.Draft, error) {
	return nil, domain.ErrDraftNotFound
}

func (stubDraftRepo) Delete(context.Context, string) error { return domain.ErrDraftNotFound }

const testAPIKey = "router-test-key"

func newTestServer(t *testing.T) *Server {
	t.Helper()

	partRepo := &stubPartRepo{parts: []domain.Part{
		{ID: 1, Kind: domain.PartKindPower, Name: "Fire Bolt", Base: domain.Cost{Energy: 2.0}},
	}}
	snapshots := catalog.NewSnapshots(partRepo, time.Minute)
	charSvc := character.NewService()
	bus := event.NewMemoryBus()
	libSvc := library.NewService(stubDraftRepo{}, snapshots, charSvc, bus)

	return NewServer(0, testAPIKey, Deps{
		DBPool:           stubPool{},
		PartRepo:         partRepo,
		Loader:           catalog.NewLoader(),
		Snapshots:        snapshots,
		CharacterService: charSvc,
		LibraryService:   libSvc,
		EventBus:         bus,
		CatalogDir:       t.TempDir(),
	})
}

func TestRouterPublicEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()

		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "path %s", path)
	}
}

func TestRouterRequiresAPIKey(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/v1/rules/archetypes", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouterServesRulesAndParts(t *testing.T) {
	srv := newTestServer(t)

	t.Run("progression budgets", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/rules/progression?level=1&kind=player", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)
		w := httptest.NewRecorder()

		srv.Handler().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ability_points":7`)
	})

	t.Run("parts listing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/parts?kind=power", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)
		w := httptest.NewRecorder()

		srv.Handler().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Fire Bolt"`)
	})

	t.Run("derive power", func(t *testing.T) {
		body := `{"parts":[{"part_id":1,"levels":[0,0,0]}]}`
		req := httptest.NewRequest("POST", "/api/v1/derive/power", strings.NewReader(body))
		req.Header.Set(HeaderAPIKey, testAPIKey)
		w := httptest.NewRecorder()

		srv.Handler().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"energy":2`)
	})
}
