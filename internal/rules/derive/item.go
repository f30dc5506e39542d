package derive

import "math"

// ArmamentType is the broad equipment category of an item draft.
type ArmamentType string

const (
	ArmamentNone   ArmamentType = ""
	ArmamentWeapon ArmamentType = "weapon"
	ArmamentArmor  ArmamentType = "armor"
	ArmamentShield ArmamentType = "shield"
)

func (a ArmamentType) label() string {
	switch a {
	case ArmamentWeapon:
		return "Weapon"
	case ArmamentArmor:
		return "Armor"
	case ArmamentShield:
		return "Shield"
	default:
		return "Item"
	}
}

// ItemInput is everything an item creator form feeds the derivation.
type ItemInput struct {
	Selections []Selection

	Armament  ArmamentType
	TwoHanded bool

	// Weapon damage dice; zero values mean "no damage".
	DieCount   int
	DieSize    int
	DamageType DamageType

	AbilityRequirements map[string]int
	SkillRequirements   map[string]int
}

// RarityBracket is one rung of the ordered rarity/price table. An item's
// bracket is the first whose point range contains its total item points;
// the upper bound is inclusive.
type RarityBracket struct {
	Name          string `json:"name"`
	CurrencyFloor int    `json:"currency_floor"`
	MinPoints     int    `json:"min_points"`
	MaxPoints     int    `json:"max_points"`
}

var rarityBrackets = []RarityBracket{
	{Name: "Mundane", CurrencyFloor: 50, MinPoints: 0, MaxPoints: 4},
	{Name: "Common", CurrencyFloor: 200, MinPoints: 5, MaxPoints: 9},
	{Name: "Uncommon", CurrencyFloor: 600, MinPoints: 10, MaxPoints: 14},
	{Name: "Rare", CurrencyFloor: 2000, MinPoints: 15, MaxPoints: 19},
	{Name: "Exceptional", CurrencyFloor: 8000, MinPoints: 20, MaxPoints: 25},
	{Name: "Legendary", CurrencyFloor: 30000, MinPoints: 26, MaxPoints: math.MaxInt32},
}

// RarityBrackets returns a copy of the bracket table for display.
func RarityBrackets() []RarityBracket {
	out := make([]RarityBracket, len(rarityBrackets))
	copy(out, rarityBrackets)
	return out
}

// bracketFor returns the first bracket containing the point total. Totals
// below zero land in the first bracket; totals past the table land in the
// last.
func bracketFor(itemPoints int) RarityBracket {
	for _, b := range rarityBrackets {
		if itemPoints >= b.MinPoints && itemPoints <= b.MaxPoints {
			return b
		}
	}
	if itemPoints < rarityBrackets[0].MinPoints {
		return rarityBrackets[0]
	}
	return rarityBrackets[len(rarityBrackets)-1]
}

// currencyCost prices an item inside its bracket: the bracket floor scaled
// by the aggregated currency modifier, never below the floor itself.
func currencyCost(bracket RarityBracket, currencyModifier int) int {
	scaled := float64(bracket.CurrencyFloor) * (1 + 0.125*float64(currencyModifier))
	cost := int(math.Round(scaled))
	if cost < bracket.CurrencyFloor {
		return bracket.CurrencyFloor
	}
	return cost
}

// ItemDerivation is the display-ready cost summary of an item.
type ItemDerivation struct {
	Rarity         string         `json:"rarity"`
	CurrencyCost   int            `json:"currency_cost"`
	ItemPoints     int            `json:"item_points"`
	TrainingPoints int            `json:"training_points"`
	Totals         Totals         `json:"totals"`
	Breakdown      []Contribution `json:"breakdown"`
	Warnings       []string       `json:"warnings,omitempty"`
}

// itemEntries assembles the entry list for an item: user selections, weapon
// damage, armament bases, and requirement entries.
func itemEntries(input ItemInput) []entry {
	entries := make([]entry, 0, len(input.Selections)+6)
	for _, sel := range input.Selections {
		entries = append(entries, userEntry(sel))
	}

	entries = append(entries, weaponEntries(input.DieCount, input.DieSize, input.DamageType)...)

	switch input.Armament {
	case ArmamentArmor:
		entries = append(entries, systemEntry(PartArmorBase, 0))
	case ArmamentShield:
		entries = append(entries, systemEntry(PartShieldBase, 0))
	}
	if input.TwoHanded {
		entries = append(entries, systemEntry(PartTwoHanded, 0))
	}

	label := input.Armament.label()
	entries = append(entries, requirementEntries(input.AbilityRequirements, label)...)
	entries = append(entries, requirementEntries(input.SkillRequirements, label)...)
	return entries
}

// Item derives an item's totals and maps them onto the rarity/price table.
func Item(input ItemInput, idx *Index) ItemDerivation {
	totals, contributions, warnings := aggregate(itemEntries(input), idx, 0)
	bracket := bracketFor(totals.IP)
	return ItemDerivation{
		Rarity:         bracket.Name,
		CurrencyCost:   currencyCost(bracket, totals.Cur),
		ItemPoints:     totals.IP,
		TrainingPoints: totals.TP,
		Totals:         totals,
		Breakdown:      contributions,
		Warnings:       warnings,
	}
}
