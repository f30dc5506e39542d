package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/library"
)

func draftRequest(method, target string, body []byte, draftID string) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if draftID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", draftID)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func TestHandleCreateDraft(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &MockLibraryService{}
		saved := &domain.Draft{ID: "d-1", OwnerID: "owner-1", Kind: domain.DraftPower, Name: "Fire Bolt I"}
		svc.On("CreateDraft", mock.Anything, "owner-1", domain.DraftPower, "Fire Bolt I", mock.Anything).Return(saved, nil)

		body, err := json.Marshal(CreateDraftRequest{
			OwnerID: "owner-1",
			Kind:    string(domain.DraftPower),
			Name:    "Fire Bolt I",
			Payload: json.RawMessage(`{"parts":[]}`),
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		NewLibraryHandlers(svc).HandleCreateDraft().ServeHTTP(w, draftRequest("POST", "/library/drafts", body, ""))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"draft_id":"d-1"`)
		svc.AssertExpectations(t)
	})

	t.Run("unknown kind rejected by validation", func(t *testing.T) {
		svc := &MockLibraryService{}
		body := []byte(`{"owner_id":"owner-1","kind":"vehicle","name":"Cart","payload":{}}`)

		w := httptest.NewRecorder()
		NewLibraryHandlers(svc).HandleCreateDraft().ServeHTTP(w, draftRequest("POST", "/library/drafts", body, ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CreateDraft")
	})

	t.Run("service error mapped", func(t *testing.T) {
		svc := &MockLibraryService{}
		svc.On("CreateDraft", mock.Anything, "owner-1", domain.DraftPower, "Bad", mock.Anything).
			Return(nil, domain.ErrInvalidPayload)

		body := []byte(`{"owner_id":"owner-1","kind":"power","name":"Bad","payload":{"parts":7}}`)

		w := httptest.NewRecorder()
		NewLibraryHandlers(svc).HandleCreateDraft().ServeHTTP(w, draftRequest("POST", "/library/drafts", body, ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidPayloadError)
	})
}

func TestHandleGetDraft(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &MockLibraryService{}
		view := &library.DraftView{Draft: domain.Draft{ID: "d-1", OwnerID: "owner-1", Kind: domain.DraftPower}}
		svc.On("GetDraft", mock.Anything, "owner-1", "d-1").Return(view, nil)

		w := httptest.NewRecorder()
		NewLibraryHandlers(svc).HandleGetDraft().ServeHTTP(w, draftRequest("GET", "/library/drafts/d-1?owner_id=owner-1", nil, "d-1"))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing owner_id", func(t *testing.T) {
		svc := &MockLibraryService{}

		w := httptest.NewRecorder()
		NewLibraryHandlers(svc).HandleGetDraft().ServeHTTP(w, draftRequest("GET", "/library/drafts/d-1", nil, "d-1"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		svc := &MockLibraryService{}
		svc.On("GetDraft", mock.Anything, "intruder", "d-1").Return(nil, domain.ErrDraftForbidden)

		w := httptest.NewRecorder()
		NewLibraryHandlers(svc).HandleGetDraft().ServeHTTP(w, draftRequest("GET", "/library/drafts/d-1?owner_id=intruder", nil, "d-1"))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &MockLibraryService{}
		svc.On("GetDraft", mock.Anything, "owner-1", "d-9").Return(nil, domain.ErrDraftNotFound)

		w := httptest.NewRecorder()
		NewLibraryHandlers(svc).HandleGetDraft().ServeHTTP(w, draftRequest("GET", "/library/drafts/d-9?owner_id=owner-1", nil, "d-9"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleListDrafts(t *testing.T) {
	t.Run("empty list serialized as array", func(t *testing.T) {
		svc := &MockLibraryService{}
		svc.On("ListDrafts", mock.Anything, "owner-1", domain.DraftKind("")).Return([]domain.Draft(nil), nil)

		w := httptest.NewRecorder()
		NewLibraryHandlers(svc).HandleListDrafts().ServeHTTP(w, draftRequest("GET", "/library/drafts?owner_id=owner-1", nil, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"drafts":[]`)
	})

	t.Run("kind filter forwarded", func(t *testing.T) {
		svc := &MockLibraryService{}
		drafts := []domain.Draft{{ID: "d-2", Kind: domain.DraftItem, OwnerID: "owner-1"}}
		svc.On("ListDrafts", mock.Anything, "owner-1", domain.DraftItem).Return(drafts, nil)

		w := httptest.NewRecorder()
		NewLibraryHandlers(svc).HandleListDrafts().ServeHTTP(w, draftRequest("GET", "/library/drafts?owner_id=owner-1&kind=item", nil, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"d-2"`)
		svc.AssertExpectations(t)
	})
}

func TestHandleUpdateDraft(t *testing.T) {
	svc := &MockLibraryService{}
	updated := &domain.Draft{ID: "d-1", OwnerID: "owner-1", Kind: domain.DraftPower, Name: "Fire Bolt II"}
	svc.On("UpdateDraft", mock.Anything, "owner-1", "d-1", "Fire Bolt II", mock.Anything).Return(updated, nil)

	body := []byte(`{"owner_id":"owner-1","name":"Fire Bolt II","payload":{"parts":[]}}`)

	w := httptest.NewRecorder()
	NewLibraryHandlers(svc).HandleUpdateDraft().ServeHTTP(w, draftRequest("PUT", "/library/drafts/d-1", body, "d-1"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Fire Bolt II"`)
	svc.AssertExpectations(t)
}

func TestHandleDeleteDraft(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &MockLibraryService{}
		svc.On("DeleteDraft", mock.Anything, "owner-1", "d-1").Return(nil)

		w := httptest.NewRecorder()
		NewLibraryHandlers(svc).HandleDeleteDraft().ServeHTTP(w, draftRequest("DELETE", "/library/drafts/d-1?owner_id=owner-1", nil, "d-1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgDraftDeletedSuccess)
		svc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &MockLibraryService{}
		svc.On("DeleteDraft", mock.Anything, "owner-1", "d-9").Return(domain.ErrDraftNotFound)

		w := httptest.NewRecorder()
		NewLibraryHandlers(svc).HandleDeleteDraft().ServeHTTP(w, draftRequest("DELETE", "/library/drafts/d-9?owner_id=owner-1", nil, "d-9"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
