package domain

import (
	"encoding/json"
	"time"
)

// DraftKind identifies what a library draft describes.
type DraftKind string

const (
	DraftCharacter DraftKind = "character"
	DraftCreature  DraftKind = "creature"
	DraftItem      DraftKind = "item"
	DraftPower     DraftKind = "power"
	DraftTechnique DraftKind = "technique"
)

// ValidDraftKind reports whether kind names a known draft kind.
func ValidDraftKind(kind DraftKind) bool {
	switch kind {
	case DraftCharacter, DraftCreature, DraftItem, DraftPower, DraftTechnique:
		return true
	}
	return false
}

// Draft is a user-owned work in progress stored in the library. The payload
// is the raw creator-form state; derived totals are recomputed from it on
// every read and never stored.
type Draft struct {
	ID        string          `json:"draft_id" db:"draft_id"`
	OwnerID   string          `json:"owner_id" db:"owner_id"`
	Kind      DraftKind       `json:"kind" db:"kind"`
	Name      string          `json:"name" db:"name"`
	Payload   json.RawMessage `json:"payload" db:"payload"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// SelectionPayload is one selected part inside a draft payload. PartID is
// preferred; PartName is the legacy fallback for entries saved before ids
// existed. Levels holds the chosen option level per tier.
type SelectionPayload struct {
	PartID        int    `json:"part_id,omitempty"`
	PartName      string `json:"part_name,omitempty"`
	Levels        [3]int `json:"levels"`
	ApplyDuration bool   `json:"apply_duration,omitempty"`
}

// CharacterPayload is the stored form state of a character draft.
type CharacterPayload struct {
	Level          float64       `json:"level"`
	Archetype      ArchetypeKind `json:"archetype"`
	Abilities      AbilityScores `json:"abilities"`
	DuringCreation bool          `json:"during_creation"`
	FeatCount      int           `json:"feat_count"`
}

// CreaturePayload is the stored form state of a creature draft. Creature
// levels may be fractional below 1.
type CreaturePayload struct {
	Level     float64       `json:"level"`
	Abilities AbilityScores `json:"abilities"`
}

// ItemPayload is the stored form state of an item draft.
type ItemPayload struct {
	Properties          []SelectionPayload `json:"properties"`
	Armament            string             `json:"armament,omitempty"`
	TwoHanded           bool               `json:"two_handed,omitempty"`
	DieCount            int                `json:"die_count,omitempty"`
	DieSize             int                `json:"die_size,omitempty"`
	DamageType          string             `json:"damage_type,omitempty"`
	AbilityRequirements map[string]int     `json:"ability_requirements,omitempty"`
	SkillRequirements   map[string]int     `json:"skill_requirements,omitempty"`
}

// PowerPayload is the stored form state of a power draft.
type PowerPayload struct {
	Parts            []SelectionPayload `json:"parts"`
	RangeSteps       int                `json:"range_steps,omitempty"`
	AreaShape        string             `json:"area_shape,omitempty"`
	AreaLevel        int                `json:"area_level,omitempty"`
	AreaDuration     bool               `json:"area_duration,omitempty"`
	DurationUnit     string             `json:"duration_unit,omitempty"`
	DurationValue    int                `json:"duration_value,omitempty"`
	Action           string             `json:"action,omitempty"`
	Reaction         bool               `json:"reaction,omitempty"`
	Focus            bool               `json:"focus,omitempty"`
	NoHarm           bool               `json:"no_harm,omitempty"`
	EndsOnActivation bool               `json:"ends_on_activation,omitempty"`
	SustainRounds    int                `json:"sustain_rounds,omitempty"`
}

// TechniquePayload is the stored form state of a technique draft.
type TechniquePayload struct {
	Parts      []SelectionPayload `json:"parts"`
	WeaponName string             `json:"weapon_name,omitempty"`
	DieCount   int                `json:"die_count,omitempty"`
	DieSize    int                `json:"die_size,omitempty"`
	DamageType string             `json:"damage_type,omitempty"`
	Action     string             `json:"action,omitempty"`
	Reaction   bool               `json:"reaction,omitempty"`
}
