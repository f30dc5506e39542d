// Package character exposes the progression budgets and ability-economy
// checks the creator forms consume. It is a thin stateless layer over the
// rules core: every method recomputes from its inputs.
package character

import (
	"context"

	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/logger"
	"github.com/tessera-games/loreforge/internal/rules"
)

// Budgets is the full progression budget sheet for one entity at one level.
type Budgets struct {
	Level           float64              `json:"level"`
	Kind            domain.EntityKind    `json:"kind"`
	Archetype       domain.ArchetypeKind `json:"archetype,omitempty"`
	AbilityPoints   int                  `json:"ability_points"`
	SkillPoints     int                  `json:"skill_points"`
	HealthEnergy    int                  `json:"health_energy_pool"`
	Proficiency     int                  `json:"proficiency"`
	TrainingPoints  int                  `json:"training_points"`
	Currency        int                  `json:"currency,omitempty"`
	ArchetypeFeats  int                  `json:"archetype_feats"`
	CharacterFeats  int                  `json:"character_feats"`
	EquipmentMax    int                  `json:"equipment_max,omitempty"`
	InnateEnergyMax int                  `json:"innate_energy_max,omitempty"`
}

// AbilityReport is the result of evaluating an ability spread against the
// point economy.
type AbilityReport struct {
	Spent     int  `json:"points_spent"`
	Budget    int  `json:"points_budget"`
	Remaining int  `json:"points_remaining"`
	Valid     bool `json:"valid"`
}

// AdjustmentCheck reports whether one score can move up or down from its
// current value.
type AdjustmentCheck struct {
	CanIncrease  bool `json:"can_increase"`
	CanDecrease  bool `json:"can_decrease"`
	IncreaseCost int  `json:"increase_cost"`
	Ceiling      int  `json:"ceiling"`
}

// Service computes progression budgets and ability-economy checks
type Service interface {
	PlayerBudgets(ctx context.Context, level float64, archetype domain.ArchetypeKind, abilities domain.AbilityScores) Budgets
	CreatureBudgets(ctx context.Context, level float64, abilities domain.AbilityScores) Budgets
	CheckAbilities(ctx context.Context, scores domain.AbilityScores, level float64, kind domain.EntityKind) AbilityReport
	CheckAdjustment(ctx context.Context, current, available int, duringCreation bool) AdjustmentCheck
	ArchetypeConfigs(ctx context.Context) map[domain.ArchetypeKind]rules.ArchetypeConfig
}

type service struct{}

// NewService creates a new character service
func NewService() Service {
	return &service{}
}

// PlayerBudgets computes the full budget sheet for a player character.
// Training points key off the highest non-Vitality ability.
func (s *service) PlayerBudgets(ctx context.Context, level float64, archetype domain.ArchetypeKind, abilities domain.AbilityScores) Budgets {
	cfg := rules.Config(archetype)

	b := Budgets{
		Level:           level,
		Kind:            domain.EntityPlayer,
		Archetype:       archetype,
		AbilityPoints:   rules.AbilityPoints(level, domain.EntityPlayer),
		SkillPoints:     rules.SkillPoints(level, domain.EntityPlayer),
		HealthEnergy:    rules.HealthEnergyPool(level, domain.EntityPlayer),
		Proficiency:     rules.Proficiency(level),
		TrainingPoints:  rules.TrainingPoints(level, abilities.HighestNonVitality(), domain.EntityPlayer),
		ArchetypeFeats:  rules.EffectiveFeatLimit(level, archetype),
		CharacterFeats:  rules.MaxCharacterFeats(level),
		EquipmentMax:    cfg.EquipmentMax,
		InnateEnergyMax: cfg.InnateEnergyMax,
	}

	logger.FromContext(ctx).Debug(LogMsgBudgetsComputed, "kind", b.Kind, "level", level)
	return b
}

// CreatureBudgets computes the budget sheet for a creature. Creatures carry
// a currency allowance instead of archetype caps, and training points key
// off the highest non-Vitality ability just as they do for players.
func (s *service) CreatureBudgets(ctx context.Context, level float64, abilities domain.AbilityScores) Budgets {
	b := Budgets{
		Level:          level,
		Kind:           domain.EntityCreature,
		AbilityPoints:  rules.AbilityPoints(level, domain.EntityCreature),
		SkillPoints:    rules.SkillPoints(level, domain.EntityCreature),
		HealthEnergy:   rules.HealthEnergyPool(level, domain.EntityCreature),
		Proficiency:    rules.Proficiency(level),
		TrainingPoints: rules.TrainingPoints(level, abilities.HighestNonVitality(), domain.EntityCreature),
		Currency:       rules.CreatureCurrency(level),
		ArchetypeFeats: rules.MaxArchetypeFeats(level),
		CharacterFeats: rules.MaxCharacterFeats(level),
	}

	logger.FromContext(ctx).Debug(LogMsgBudgetsComputed, "kind", b.Kind, "level", level)
	return b
}

// CheckAbilities evaluates a full ability spread against the point budget
// for the given level.
func (s *service) CheckAbilities(ctx context.Context, scores domain.AbilityScores, level float64, kind domain.EntityKind) AbilityReport {
	spent := rules.PointsSpent(scores)
	budget := rules.AbilityPoints(level, kind)
	remaining := rules.PointsRemaining(scores, level, kind)

	report := AbilityReport{
		Spent:     spent,
		Budget:    budget,
		Remaining: remaining,
		Valid:     remaining >= 0,
	}

	if !report.Valid {
		logger.FromContext(ctx).Debug(LogMsgAbilityCheckFailed,
			"spent", spent, "budget", budget, "level", level, "kind", kind)
	}
	return report
}

// CheckAdjustment reports the legality and cost of moving a single score.
func (s *service) CheckAdjustment(_ context.Context, current, available int, duringCreation bool) AdjustmentCheck {
	return AdjustmentCheck{
		CanIncrease:  rules.CanIncrease(current, available, duringCreation),
		CanDecrease:  rules.CanDecrease(current),
		IncreaseCost: rules.CostToIncrease(current),
		Ceiling:      rules.AbilityCeiling(duringCreation),
	}
}

// ArchetypeConfigs returns the full archetype configuration table.
func (s *service) ArchetypeConfigs(_ context.Context) map[domain.ArchetypeKind]rules.ArchetypeConfig {
	return map[domain.ArchetypeKind]rules.ArchetypeConfig{
		domain.ArchetypePower:          rules.Config(domain.ArchetypePower),
		domain.ArchetypePoweredMartial: rules.Config(domain.ArchetypePoweredMartial),
		domain.ArchetypeMartial:        rules.Config(domain.ArchetypeMartial),
	}
}
