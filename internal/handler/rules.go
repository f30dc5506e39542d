package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tessera-games/loreforge/internal/character"
	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/logger"
)

// RulesHandlers contains HTTP handlers for the progression and ability rules
type RulesHandlers struct {
	service character.Service
}

// NewRulesHandlers creates new rules handlers
func NewRulesHandlers(service character.Service) *RulesHandlers {
	return &RulesHandlers{service: service}
}

// AbilityCheckRequest is the body of the ability economy check
type AbilityCheckRequest struct {
	Level          float64              `json:"level" validate:"gt=0"`
	Kind           string               `json:"kind" validate:"required,entitykind"`
	Scores         domain.AbilityScores `json:"scores"`
	DuringCreation bool                 `json:"during_creation"`
}

// AbilityCheckResponse pairs the spread verdict with a per-score adjustment
// check so the creator form can enable or disable its +/- buttons.
type AbilityCheckResponse struct {
	Report      character.AbilityReport              `json:"report"`
	Adjustments map[string]character.AdjustmentCheck `json:"adjustments"`
}

// HandleGetProgression returns the full budget sheet for one level
// @Summary Get progression budgets
// @Description Returns ability/skill/health-energy/training-point budgets for a level
// @Tags rules
// @Produce json
// @Param level query number true "Level (creatures may be fractional)"
// @Param kind query string true "Entity kind (player, creature)"
// @Param archetype query string false "Archetype (players only)"
// @Param might query int false "Might score"
// @Param agility query int false "Agility score"
// @Param vitality query int false "Vitality score"
// @Param intellect query int false "Intellect score"
// @Param awareness query int false "Awareness score"
// @Param presence query int false "Presence score"
// @Success 200 {object} character.Budgets
// @Failure 400 {object} ErrorResponse
// @Router /rules/progression [get]
func (h *RulesHandlers) HandleGetProgression() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		level := getQueryFloat(r, "level", 0)
		if level <= 0 {
			log.Warn("Get progression: invalid level", "raw", r.URL.Query().Get("level"))
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLevel)
			return
		}

		abilities := abilitiesFromQuery(r)

		var budgets character.Budgets
		switch domain.EntityKind(GetOptionalQueryParam(r, "kind", string(domain.EntityPlayer))) {
		case domain.EntityPlayer:
			archetype := domain.ArchetypeKind(GetOptionalQueryParam(r, "archetype", string(domain.ArchetypePower)))
			budgets = h.service.PlayerBudgets(r.Context(), level, archetype, abilities)
		case domain.EntityCreature:
			budgets = h.service.CreatureBudgets(r.Context(), level, abilities)
		default:
			log.Warn("Get progression: invalid kind", "kind", r.URL.Query().Get("kind"))
			respondError(w, http.StatusBadRequest, ErrMsgInvalidKindParam)
			return
		}

		respondJSON(w, http.StatusOK, budgets)
	}
}

// HandleCheckAbilities evaluates an ability spread against the point economy
// @Summary Check ability scores
// @Description Evaluates an ability spread against the point budget and reports per-score adjustability
// @Tags rules
// @Accept json
// @Produce json
// @Param request body AbilityCheckRequest true "Ability check request"
// @Success 200 {object} AbilityCheckResponse
// @Failure 400 {object} ErrorResponse
// @Router /rules/ability/check [post]
func (h *RulesHandlers) HandleCheckAbilities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AbilityCheckRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Ability check"); err != nil {
			return
		}

		kind := domain.EntityKind(req.Kind)
		report := h.service.CheckAbilities(r.Context(), req.Scores, req.Level, kind)

		adjustments := make(map[string]character.AdjustmentCheck, len(domain.AbilityNames))
		values := req.Scores.Values()
		for i, name := range domain.AbilityNames {
			adjustments[name] = h.service.CheckAdjustment(r.Context(), values[i], report.Remaining, req.DuringCreation)
		}

		respondJSON(w, http.StatusOK, AbilityCheckResponse{
			Report:      report,
			Adjustments: adjustments,
		})
	}
}

// HandleGetArchetypes returns the full archetype configuration table
// @Summary List archetype configurations
// @Description Returns feat limits, equipment caps, innate energy caps and proficiency splits per archetype
// @Tags rules
// @Produce json
// @Success 200 {object} map[string]rules.ArchetypeConfig
// @Router /rules/archetypes [get]
func (h *RulesHandlers) HandleGetArchetypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.service.ArchetypeConfigs(r.Context()))
	}
}

// HandleGetArchetype returns one archetype configuration
// @Summary Get archetype configuration
// @Description Returns the configuration for a single archetype
// @Tags rules
// @Produce json
// @Param kind path string true "Archetype kind (power, powered_martial, martial)"
// @Success 200 {object} rules.ArchetypeConfig
// @Failure 404 {object} ErrorResponse
// @Router /rules/archetypes/{kind} [get]
func (h *RulesHandlers) HandleGetArchetype() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := domain.ArchetypeKind(chi.URLParam(r, "kind"))

		configs := h.service.ArchetypeConfigs(r.Context())
		cfg, ok := configs[kind]
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgUnknownArchetypeHTTP)
			return
		}

		respondJSON(w, http.StatusOK, cfg)
	}
}

// abilitiesFromQuery reads the six ability scores off the query string,
// defaulting each to zero.
func abilitiesFromQuery(r *http.Request) domain.AbilityScores {
	return domain.AbilityScores{
		Might:     getQueryInt(r, "might", 0),
		Agility:   getQueryInt(r, "agility", 0),
		Vitality:  getQueryInt(r, "vitality", 0),
		Intellect: getQueryInt(r, "intellect", 0),
		Awareness: getQueryInt(r, "awareness", 0),
		Presence:  getQueryInt(r, "presence", 0),
	}
}
