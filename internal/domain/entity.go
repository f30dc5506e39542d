package domain

// EntityKind distinguishes the two progression tracks. Player characters and
// creatures share most formulas but use different base constants.
type EntityKind string

const (
	EntityPlayer   EntityKind = "player"
	EntityCreature EntityKind = "creature"
)

// ArchetypeKind selects one of the three character builds.
type ArchetypeKind string

const (
	ArchetypePower          ArchetypeKind = "power"
	ArchetypePoweredMartial ArchetypeKind = "powered_martial"
	ArchetypeMartial        ArchetypeKind = "martial"
)

// AbilityScores holds the six ability scores of a character or creature.
// Each score is independently bounded; see rules.AbilityMin and the
// creation/post-creation ceilings.
type AbilityScores struct {
	Might     int `json:"might" db:"might"`
	Agility   int `json:"agility" db:"agility"`
	Vitality  int `json:"vitality" db:"vitality"`
	Intellect int `json:"intellect" db:"intellect"`
	Awareness int `json:"awareness" db:"awareness"`
	Presence  int `json:"presence" db:"presence"`
}

// AbilityNames lists the six ability names in canonical order.
var AbilityNames = []string{"Might", "Agility", "Vitality", "Intellect", "Awareness", "Presence"}

// Values returns the six scores in canonical order.
func (a AbilityScores) Values() [6]int {
	return [6]int{a.Might, a.Agility, a.Vitality, a.Intellect, a.Awareness, a.Presence}
}

// Highest returns the largest of the six scores.
func (a AbilityScores) Highest() int {
	high := a.Might
	for _, v := range a.Values() {
		if v > high {
			high = v
		}
	}
	return high
}

// HighestNonVitality returns the largest score excluding Vitality.
// Creature training points key off this value.
func (a AbilityScores) HighestNonVitality() int {
	values := []int{a.Might, a.Agility, a.Intellect, a.Awareness, a.Presence}
	high := values[0]
	for _, v := range values {
		if v > high {
			high = v
		}
	}
	return high
}
