package domain

// PartKind identifies which catalog a part belongs to. Powers, techniques and
// items each have their own reference table but share the record shape.
type PartKind string

const (
	PartKindPower     PartKind = "power"
	PartKindTechnique PartKind = "technique"
	PartKindItem      PartKind = "item"
)

// Part categories. Catalog files may also carry domain-specific categories;
// these are the ones the derivation layer cares about.
const (
	CategoryAction      = "Action"
	CategoryDuration    = "Duration"
	CategoryAreaEffect  = "Area of Effect"
	CategoryTarget      = "Target"
	CategorySpecial     = "Special"
	CategoryRestriction = "Restriction"
)

// MaxPartTiers is the maximum number of scaling tiers a part may define.
const MaxPartTiers = 3

// Cost holds one value per cost dimension. Energy is fractional (powers bill
// in tenths); the other dimensions are whole points.
type Cost struct {
	Energy         float64 `json:"energy"`
	TrainingPoints int     `json:"training_points"`
	ItemPoints     int     `json:"item_points"`
	Currency       int     `json:"currency"`
}

// Add returns the component-wise sum of two costs.
func (c Cost) Add(other Cost) Cost {
	return Cost{
		Energy:         c.Energy + other.Energy,
		TrainingPoints: c.TrainingPoints + other.TrainingPoints,
		ItemPoints:     c.ItemPoints + other.ItemPoints,
		Currency:       c.Currency + other.Currency,
	}
}

// Scale returns the cost multiplied by a whole option level.
func (c Cost) Scale(level int) Cost {
	return Cost{
		Energy:         c.Energy * float64(level),
		TrainingPoints: c.TrainingPoints * level,
		ItemPoints:     c.ItemPoints * level,
		Currency:       c.Currency * level,
	}
}

// IsZero reports whether every dimension is zero.
func (c Cost) IsZero() bool {
	return c.Energy == 0 && c.TrainingPoints == 0 && c.ItemPoints == 0 && c.Currency == 0
}

// Tier is one optional scaling tier of a part. Delta is the per-level cost
// increment; tiers are independent and linear in the chosen level.
type Tier struct {
	Description string `json:"description"`
	Delta       Cost   `json:"delta"`
}

// Part is a canonical part/property record from a reference catalog.
// Records are immutable once loaded; the derivation layer only reads them.
//
// Records saved before ids existed are referenced by name, so name lookup
// stays supported as a case-insensitive fallback.
type Part struct {
	ID       int      `json:"part_id" db:"part_id"`
	Kind     PartKind `json:"kind" db:"kind"`
	Name     string   `json:"name" db:"name"`
	Category string   `json:"category" db:"category"`
	// Mechanic marks parts the system derives on the caller's behalf
	// (range, duration, damage...) as opposed to user-selectable options.
	Mechanic bool   `json:"mechanic" db:"mechanic"`
	Base     Cost   `json:"base"`
	Tiers    []Tier `json:"tiers,omitempty"`
}
