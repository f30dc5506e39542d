package handler

import (
	"net/http"

	"github.com/tessera-games/loreforge/internal/catalog"
	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/library"
	"github.com/tessera-games/loreforge/internal/logger"
	"github.com/tessera-games/loreforge/internal/metrics"
	"github.com/tessera-games/loreforge/internal/rules/derive"
)

// DeriveHandlers contains HTTP handlers for ad-hoc cost derivation. These
// endpoints serve the creator forms directly: the client posts the current
// form state and gets totals back without saving anything.
type DeriveHandlers struct {
	snapshots catalog.Snapshots
}

// NewDeriveHandlers creates new derivation handlers
func NewDeriveHandlers(snapshots catalog.Snapshots) *DeriveHandlers {
	return &DeriveHandlers{snapshots: snapshots}
}

// HandleDerivePower derives a power's costs from the posted form state
// @Summary Derive power costs
// @Description Computes energy and training-point totals for a power from its parts and mechanics
// @Tags derive
// @Accept json
// @Produce json
// @Param request body domain.PowerPayload true "Power form state"
// @Success 200 {object} derive.PowerDerivation
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /derive/power [post]
func (h *DeriveHandlers) HandleDerivePower() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.PowerPayload
		if err := DecodeAndValidateRequest(r, w, &req, "Derive power"); err != nil {
			return
		}

		idx, err := h.snapshots.Index(r.Context(), domain.PartKindPower)
		if err != nil {
			logger.FromContext(r.Context()).Error("Derive power: snapshot error", "error", err)
			respondServiceError(w, err)
			return
		}

		result := derive.Power(library.PowerDeriveInput(req), idx)
		recordDerivation(domain.DraftPower, len(result.Warnings))
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleDeriveTechnique derives a technique's costs from the posted form state
// @Summary Derive technique costs
// @Description Computes training-point totals for a technique from its parts, weapon dice and action
// @Tags derive
// @Accept json
// @Produce json
// @Param request body domain.TechniquePayload true "Technique form state"
// @Success 200 {object} derive.TechniqueDerivation
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /derive/technique [post]
func (h *DeriveHandlers) HandleDeriveTechnique() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.TechniquePayload
		if err := DecodeAndValidateRequest(r, w, &req, "Derive technique"); err != nil {
			return
		}

		idx, err := h.snapshots.Index(r.Context(), domain.PartKindTechnique)
		if err != nil {
			logger.FromContext(r.Context()).Error("Derive technique: snapshot error", "error", err)
			respondServiceError(w, err)
			return
		}

		result := derive.Technique(library.TechniqueDeriveInput(req), idx)
		recordDerivation(domain.DraftTechnique, len(result.Warnings))
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleDeriveItem derives an item's costs and rarity from the posted form state
// @Summary Derive item costs
// @Description Computes item points, rarity bracket and currency cost for an item from its properties
// @Tags derive
// @Accept json
// @Produce json
// @Param request body domain.ItemPayload true "Item form state"
// @Success 200 {object} derive.ItemDerivation
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /derive/item [post]
func (h *DeriveHandlers) HandleDeriveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ItemPayload
		if err := DecodeAndValidateRequest(r, w, &req, "Derive item"); err != nil {
			return
		}

		idx, err := h.snapshots.Index(r.Context(), domain.PartKindItem)
		if err != nil {
			logger.FromContext(r.Context()).Error("Derive item: snapshot error", "error", err)
			respondServiceError(w, err)
			return
		}

		result := derive.Item(library.ItemDeriveInput(req), idx)
		recordDerivation(domain.DraftItem, len(result.Warnings))
		respondJSON(w, http.StatusOK, result)
	}
}

func recordDerivation(kind domain.DraftKind, warnings int) {
	metrics.DerivationsComputed.WithLabelValues(string(kind)).Inc()
	if warnings > 0 {
		metrics.UnresolvedPartRefs.WithLabelValues(string(kind)).Add(float64(warnings))
	}
}
