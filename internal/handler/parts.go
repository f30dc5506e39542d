package handler

import (
	"net/http"

	"github.com/tessera-games/loreforge/internal/catalog"
	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/logger"
)

// PartsHandlers contains HTTP handlers for the part catalogs
type PartsHandlers struct {
	snapshots catalog.Snapshots
}

// NewPartsHandlers creates new parts handlers
func NewPartsHandlers(snapshots catalog.Snapshots) *PartsHandlers {
	return &PartsHandlers{snapshots: snapshots}
}

// PartsResponse wraps a catalog listing
type PartsResponse struct {
	Kind  domain.PartKind `json:"kind"`
	Parts []domain.Part   `json:"parts"`
}

// HandleListParts returns the part catalog for one kind
// @Summary List catalog parts
// @Description Returns all parts of one catalog kind (power, technique, item)
// @Tags parts
// @Produce json
// @Param kind query string true "Catalog kind (power, technique, item)"
// @Success 200 {object} PartsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /parts [get]
func (h *PartsHandlers) HandleListParts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		raw, ok := GetQueryParam(r, w, "kind")
		if !ok {
			return
		}

		kind := domain.PartKind(raw)
		switch kind {
		case domain.PartKindPower, domain.PartKindTechnique, domain.PartKindItem:
		default:
			log.Warn("List parts: invalid kind", "kind", raw)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidKindParam)
			return
		}

		parts, err := h.snapshots.Parts(r.Context(), kind)
		if err != nil {
			log.Error("List parts: snapshot error", "error", err, "kind", kind)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, PartsResponse{Kind: kind, Parts: parts})
	}
}
