package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/rules/derive"
)

func testSnapshots() *stubSnapshots {
	return &stubSnapshots{parts: map[domain.PartKind][]domain.Part{
		domain.PartKindPower: {
			{ID: 1, Kind: domain.PartKindPower, Name: "Fire Bolt", Category: "Damage",
				Base: domain.Cost{Energy: 2.0, TrainingPoints: 3}},
		},
		domain.PartKindItem: {
			{ID: 1, Kind: domain.PartKindItem, Name: "Keen Edge", Category: "Enhancement",
				Base: domain.Cost{ItemPoints: 2, Currency: 40}},
		},
		domain.PartKindTechnique: {
			{ID: 1, Kind: domain.PartKindTechnique, Name: "Sweeping Strike", Category: "Maneuver",
				Base: domain.Cost{TrainingPoints: 4}},
		},
	}}
}

func TestHandleDerivePower(t *testing.T) {
	h := NewDeriveHandlers(testSnapshots())

	t.Run("resolved part", func(t *testing.T) {
		body, err := json.Marshal(domain.PowerPayload{
			Parts: []domain.SelectionPayload{{PartID: 1}},
		})
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/derive/power", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.HandleDerivePower().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var result derive.PowerDerivation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.InDelta(t, 2.0, result.Energy, 1e-9)
		assert.Equal(t, 3, result.TrainingPoints)
		assert.Empty(t, result.Warnings)
	})

	t.Run("unresolved part warns", func(t *testing.T) {
		body, err := json.Marshal(domain.PowerPayload{
			Parts: []domain.SelectionPayload{{PartName: "No Such Part"}},
		})
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/derive/power", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.HandleDerivePower().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var result derive.PowerDerivation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Len(t, result.Warnings, 1)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/derive/power", bytes.NewReader([]byte(`{`)))
		w := httptest.NewRecorder()

		h.HandleDerivePower().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("snapshot error", func(t *testing.T) {
		broken := NewDeriveHandlers(&stubSnapshots{err: assert.AnError})

		req := httptest.NewRequest("POST", "/derive/power", bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()

		broken.HandleDerivePower().ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleDeriveTechnique(t *testing.T) {
	h := NewDeriveHandlers(testSnapshots())

	body, err := json.Marshal(domain.TechniquePayload{
		Parts: []domain.SelectionPayload{{PartID: 1}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/derive/technique", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleDeriveTechnique().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result derive.TechniqueDerivation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 4, result.TrainingPoints)
}

func TestHandleDeriveItem(t *testing.T) {
	h := NewDeriveHandlers(testSnapshots())

	body, err := json.Marshal(domain.ItemPayload{
		Properties: []domain.SelectionPayload{{PartID: 1}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/derive/item", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleDeriveItem().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result derive.ItemDerivation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.ItemPoints)
	assert.NotEmpty(t, result.Rarity)
}

func TestHandleListParts(t *testing.T) {
	h := NewPartsHandlers(testSnapshots())

	t.Run("lists power catalog", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/parts?kind=power", nil)
		w := httptest.NewRecorder()

		h.HandleListParts().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp PartsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.PartKindPower, resp.Kind)
		require.Len(t, resp.Parts, 1)
		assert.Equal(t, "Fire Bolt", resp.Parts[0].Name)
	})

	t.Run("missing kind", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/parts", nil)
		w := httptest.NewRecorder()

		h.HandleListParts().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/parts?kind=vehicle", nil)
		w := httptest.NewRecorder()

		h.HandleListParts().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
