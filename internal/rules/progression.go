// Package rules implements the game-rules computation core: level-based
// progression formulas, the ability-score point economy, and archetype
// configuration. Everything here is a pure function over plain values; the
// package holds no mutable state and performs no I/O, so callers may invoke
// it concurrently without coordination.
package rules

import (
	"math"

	"github.com/tessera-games/loreforge/internal/domain"
)

// Progression base constants.
const (
	abilityPointBase = 7
	abilityPointStep = 3 // +1 ability point every 3 levels

	skillPointBase       = 2
	skillPointPerLevel   = 3
	creatureSkillPerStep = 5 // sub-level creatures scale 5 points per fractional level

	playerPoolBase   = 18
	creaturePoolBase = 26
	poolPerLevel     = 12

	proficiencyBase = 2
	proficiencyStep = 5 // +1 proficiency every 5 levels

	playerTrainingBase   = 22
	creatureTrainingBase = 9

	creatureCurrencyBase   = 200
	creatureCurrencyGrowth = 1.45
)

// clampLevel maps out-of-domain input onto the documented domain. Negative
// levels are treated as the level-1 baseline rather than rejected; the
// formulas are total and never error.
func clampLevel(level float64) float64 {
	if level < 0 {
		return 1
	}
	return level
}

// AbilityPoints returns the ability points available at the given level:
// 7 through level 2, then +1 for every 3 levels. Creatures below level 1
// scale the base linearly, rounded up.
func AbilityPoints(level float64, kind domain.EntityKind) int {
	level = clampLevel(level)
	if kind == domain.EntityCreature && level < 1 {
		return int(math.Ceil(abilityPointBase * level))
	}
	bonus := int(math.Floor(level-1)) / abilityPointStep
	if bonus < 0 {
		bonus = 0
	}
	return abilityPointBase + bonus
}

// SkillPoints returns the skill points available at the given level:
// 2 + 3 per whole level. Creatures below level 1 earn 5 points per
// fractional level, rounded up.
func SkillPoints(level float64, kind domain.EntityKind) int {
	level = clampLevel(level)
	if kind == domain.EntityCreature && level < 1 {
		return int(math.Ceil(creatureSkillPerStep * level))
	}
	return skillPointBase + skillPointPerLevel*int(math.Floor(level))
}

// HealthEnergyPool returns the shared health/energy pool: a per-kind base
// plus 12 per level past the first. Creatures below level 1 scale the base
// linearly, rounded up.
func HealthEnergyPool(level float64, kind domain.EntityKind) int {
	level = clampLevel(level)
	base := playerPoolBase
	if kind == domain.EntityCreature {
		base = creaturePoolBase
	}
	if kind == domain.EntityCreature && level < 1 {
		return int(math.Ceil(float64(base) * level))
	}
	return base + poolPerLevel*(int(math.Floor(level))-1)
}

// Proficiency returns the proficiency bonus: 2 below level 5, +1 for every
// 5 levels thereafter.
func Proficiency(level float64) int {
	level = clampLevel(level)
	if level < proficiencyStep {
		return proficiencyBase
	}
	return proficiencyBase + int(math.Floor(level))/proficiencyStep
}

// TrainingPoints returns the training-point budget. The highest relevant
// ability is supplied by the caller: the archetype ability for players, the
// highest non-vitality ability for creatures.
//
// Player:   22 + A + (2+A)*(level-1)
// Creature:  9 + A + (level-1)*(1+A)
func TrainingPoints(level float64, highestAbility int, kind domain.EntityKind) int {
	level = clampLevel(level)
	if level < 1 {
		level = 1
	}
	steps := int(math.Floor(level)) - 1
	if kind == domain.EntityCreature {
		return creatureTrainingBase + highestAbility + steps*(1+highestAbility)
	}
	return playerTrainingBase + highestAbility + steps*(2+highestAbility)
}

// CreatureCurrency returns the currency budget for a creature of the given
// level: round(200 * 1.45^(level-1)).
func CreatureCurrency(level float64) int {
	level = clampLevel(level)
	return int(math.Round(creatureCurrencyBase * math.Pow(creatureCurrencyGrowth, level-1)))
}

// MaxArchetypeFeats returns the level-based archetype feat allowance. The
// effective limit also honors the archetype's own cap; see Config.
func MaxArchetypeFeats(level float64) int {
	n := int(math.Floor(level))
	if n < 0 {
		return 0
	}
	return n
}

// MaxCharacterFeats returns the level-based character feat allowance.
func MaxCharacterFeats(level float64) int {
	return MaxArchetypeFeats(level)
}
