package rules

import "github.com/tessera-games/loreforge/internal/domain"

// Ability score bounds. Scores are capped at 3 while a character is being
// created and at 6 once play begins. Steps at or above the cost threshold
// cost double.
const (
	AbilityMin           = -2
	AbilityMaxCreation   = 3
	AbilityMaxFinal      = 6
	abilityCostThreshold = 4
)

// AbilityCeiling returns the score cap for the given phase.
func AbilityCeiling(duringCreation bool) int {
	if duringCreation {
		return AbilityMaxCreation
	}
	return AbilityMaxFinal
}

// CostToIncrease returns the point cost of raising a score by one from its
// current value: 2 at or above the threshold of 4, otherwise 1.
func CostToIncrease(current int) int {
	if current >= abilityCostThreshold {
		return 2
	}
	return 1
}

// CanIncrease reports whether a score may be raised given the available
// points and the current phase's ceiling.
func CanIncrease(current, available int, duringCreation bool) bool {
	if current >= AbilityCeiling(duringCreation) {
		return false
	}
	return available >= CostToIncrease(current)
}

// CanDecrease reports whether a score may be lowered. Scores bottom out at -2.
func CanDecrease(current int) bool {
	return current > AbilityMin
}

// scoreCost is the cumulative point cost of a single score: 1 per step up to
// the threshold, 2 per step above it, and a 1-point refund per negative step.
func scoreCost(value int) int {
	if value < 0 {
		return value
	}
	cost := value
	if value > abilityCostThreshold {
		cost += value - abilityCostThreshold
	}
	return cost
}

// PointsSpent returns the total points sunk into the six scores.
func PointsSpent(scores domain.AbilityScores) int {
	total := 0
	for _, v := range scores.Values() {
		total += scoreCost(v)
	}
	return total
}

// PointsRemaining returns the unspent ability points at the given level.
// A negative result means the caller overspent; that is a gate condition for
// the UI, not an error here.
func PointsRemaining(scores domain.AbilityScores, level float64, kind domain.EntityKind) int {
	return AbilityPoints(level, kind) - PointsSpent(scores)
}
