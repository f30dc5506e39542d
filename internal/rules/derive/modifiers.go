package derive

import (
	"fmt"
	"math"
	"sort"
)

// Well-known part names the derivation synthesizes entries for. Each must
// exist in the relevant catalog; a missing record degrades to a zero-cost
// "not found" contribution like any other unresolved reference.
const (
	PartWeaponDamage    = "Weapon Damage"
	PartPhysicalDamage  = "Physical Damage"
	PartElementalDamage = "Elemental Damage"
	PartSplitDice       = "Split Damage Dice"
	PartRange           = "Range"
	PartQuickAction     = "Quick Action"
	PartLongAction      = "Long Action"
	PartReaction        = "Reaction"
	PartFocus           = "Focus"
	PartNoHarm          = "No Harm"
	PartEndsOnActivate  = "Ends on Activation"
	PartSustain         = "Sustain"
	PartArmorBase       = "Armor Base"
	PartShieldBase      = "Shield Base"
	PartTwoHanded       = "Two-Handed"
)

// DamageType selects which damage part a weapon's dice map onto.
type DamageType string

const (
	DamageWeapon    DamageType = "weapon"
	DamagePhysical  DamageType = "physical"
	DamageElemental DamageType = "elemental"
)

func (d DamageType) partName() string {
	switch d {
	case DamagePhysical:
		return PartPhysicalDamage
	case DamageElemental:
		return PartElementalDamage
	default:
		return PartWeaponDamage
	}
}

// AreaShape is the area-of-effect template of a power.
type AreaShape string

const (
	AreaSphere   AreaShape = "sphere"
	AreaCylinder AreaShape = "cylinder"
	AreaCone     AreaShape = "cone"
	AreaLine     AreaShape = "line"
	AreaTrail    AreaShape = "trail"
)

var areaParts = map[AreaShape]string{
	AreaSphere:   "Sphere",
	AreaCylinder: "Cylinder",
	AreaCone:     "Cone",
	AreaLine:     "Line",
	AreaTrail:    "Trail",
}

// ActionType is the action economy slot a power or technique occupies.
type ActionType string

const (
	ActionStandard ActionType = "standard"
	ActionQuick    ActionType = "quick"
	ActionFree     ActionType = "free"
	ActionLong3    ActionType = "long3"
	ActionLong4    ActionType = "long4"
)

// DurationUnit is the base duration type of a power.
type DurationUnit string

const (
	DurationRounds    DurationUnit = "rounds"
	DurationMinutes   DurationUnit = "minutes"
	DurationHours     DurationUnit = "hours"
	DurationDays      DurationUnit = "days"
	DurationPermanent DurationUnit = "permanent"
)

var durationParts = map[DurationUnit]string{
	DurationRounds:    "Duration (Rounds)",
	DurationMinutes:   "Duration (Minutes)",
	DurationHours:     "Duration (Hours)",
	DurationDays:      "Duration (Days)",
	DurationPermanent: "Duration (Permanent)",
}

// Discrete value ladders per duration type. The option level is the
// zero-based rung holding the chosen value; values between rungs snap down.
// The rounds ladder starts at 2: a 1-round power costs nothing extra.
var durationLadders = map[DurationUnit][]int{
	DurationRounds:  {2, 3, 4, 5, 6, 8, 10},
	DurationMinutes: {1, 5, 10, 30},
	DurationHours:   {1, 2, 4, 8, 12},
	DurationDays:    {1, 3, 7, 30},
}

// standardDieSizes are the die sizes the split-dice rule understands.
// Anything else is ignored rather than rejected.
var standardDieSizes = map[int]bool{4: true, 6: true, 8: true, 10: true, 12: true}

// weaponDamageLevel maps total dice damage onto the damage part's option
// level: max(0, floor((count*size - 4) / 2)).
func weaponDamageLevel(dieCount, dieSize int) int {
	level := (dieCount*dieSize - 4) / 2
	if level < 0 {
		return 0
	}
	return level
}

// splitDiceCount returns how many extra dice the chosen pool uses beyond the
// minimum number of d12s that could carry the same total. Only standard die
// sizes with more than one die can split.
func splitDiceCount(dieCount, dieSize int) int {
	if dieCount <= 1 || !standardDieSizes[dieSize] {
		return 0
	}
	total := dieCount * dieSize
	minD12s := int(math.Ceil(float64(total) / 12))
	splits := dieCount - minD12s
	if splits < 0 {
		return 0
	}
	return splits
}

// weaponEntries synthesizes the damage entry and, when the dice pool cannot
// be expressed in d12s, the split-dice entry.
func weaponEntries(dieCount, dieSize int, damageType DamageType) []entry {
	if dieCount <= 0 || dieSize <= 0 {
		return nil
	}
	entries := []entry{systemEntry(damageType.partName(), weaponDamageLevel(dieCount, dieSize))}
	if splits := splitDiceCount(dieCount, dieSize); splits > 0 {
		entries = append(entries, systemEntry(PartSplitDice, splits))
	}
	return entries
}

// rangeEntry synthesizes the range entry. Melee (zero steps) is free and
// produces no entry.
func rangeEntry(steps int) (entry, bool) {
	if steps <= 0 {
		return entry{}, false
	}
	return systemEntry(PartRange, steps-1), true
}

// areaEntry synthesizes the area-of-effect entry for a shape. The
// apply-duration flag rides along so the duration multiplier reaches it.
func areaEntry(shape AreaShape, level int, applyDuration bool) (entry, bool) {
	name, ok := areaParts[shape]
	if !ok {
		return entry{}, false
	}
	if level < 1 {
		level = 1
	}
	e := systemEntry(name, level-1)
	e.applyDuration = applyDuration
	return e, true
}

// durationEntry synthesizes the base duration entry and reports the option
// level chosen, which also drives the duration multiplier. A rounds duration
// of one round or less contributes nothing.
func durationEntry(unit DurationUnit, value int) (entry, int, bool) {
	name, ok := durationParts[unit]
	if !ok {
		return entry{}, 0, false
	}
	if unit == DurationPermanent {
		return systemEntry(name, 0), 0, true
	}
	ladder := durationLadders[unit]
	if unit == DurationRounds && value <= 1 {
		return entry{}, 0, false
	}
	level := 0
	for i, rung := range ladder {
		if value >= rung {
			level = i
		}
	}
	return systemEntry(name, level), level, true
}

// actionEntries synthesizes the action-economy entries. Quick and free share
// one part at levels 0/1; the two long actions share another.
func actionEntries(action ActionType, reaction bool) []entry {
	var entries []entry
	switch action {
	case ActionQuick:
		entries = append(entries, systemEntry(PartQuickAction, 0))
	case ActionFree:
		entries = append(entries, systemEntry(PartQuickAction, 1))
	case ActionLong3:
		entries = append(entries, systemEntry(PartLongAction, 0))
	case ActionLong4:
		entries = append(entries, systemEntry(PartLongAction, 1))
	}
	if reaction {
		entries = append(entries, systemEntry(PartReaction, 0))
	}
	return entries
}

// toggleEntries synthesizes the duration-modifier toggles.
func toggleEntries(focus, noHarm, endsOnActivation bool, sustainRounds int) []entry {
	var entries []entry
	if focus {
		entries = append(entries, systemEntry(PartFocus, 0))
	}
	if noHarm {
		entries = append(entries, systemEntry(PartNoHarm, 0))
	}
	if endsOnActivation {
		entries = append(entries, systemEntry(PartEndsOnActivate, 0))
	}
	if sustainRounds > 0 {
		entries = append(entries, systemEntry(PartSustain, sustainRounds-1))
	}
	return entries
}

// requirementEntries synthesizes one entry per nonzero ability or skill
// requirement, named by requirement and armament type, with option level
// value-1.
func requirementEntries(requirements map[string]int, armamentLabel string) []entry {
	if len(requirements) == 0 {
		return nil
	}
	names := make([]string, 0, len(requirements))
	for name := range requirements {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]entry, 0, len(names))
	for _, name := range names {
		value := requirements[name]
		if value < 1 {
			continue
		}
		partName := fmt.Sprintf("%s Requirement (%s)", name, armamentLabel)
		entries = append(entries, systemEntry(partName, value-1))
	}
	return entries
}
