package rules

import "github.com/tessera-games/loreforge/internal/domain"

// ProficiencySplit divides a character's proficiency bonus between martial
// and power applications.
type ProficiencySplit struct {
	Martial int `json:"martial"`
	Power   int `json:"power"`
}

// ArchetypeConfig holds the static per-archetype limits. The table is
// read-only; never mutated at runtime.
type ArchetypeConfig struct {
	FeatLimit        int              `json:"feat_limit"`
	EquipmentMax     int              `json:"equipment_max"`
	InnateEnergyMax  int              `json:"innate_energy_max"`
	ProficiencySplit ProficiencySplit `json:"proficiency_split"`
}

var archetypeConfigs = map[domain.ArchetypeKind]ArchetypeConfig{
	domain.ArchetypePower: {
		FeatLimit:        4,
		EquipmentMax:     2,
		InnateEnergyMax:  20,
		ProficiencySplit: ProficiencySplit{Martial: 0, Power: 2},
	},
	domain.ArchetypePoweredMartial: {
		FeatLimit:        5,
		EquipmentMax:     3,
		InnateEnergyMax:  12,
		ProficiencySplit: ProficiencySplit{Martial: 1, Power: 1},
	},
	domain.ArchetypeMartial: {
		FeatLimit:        6,
		EquipmentMax:     4,
		InnateEnergyMax:  4,
		ProficiencySplit: ProficiencySplit{Martial: 2, Power: 0},
	},
}

// Config returns the configuration for an archetype. Unrecognized input
// falls back to the power configuration; that is the documented default,
// not an error.
func Config(kind domain.ArchetypeKind) ArchetypeConfig {
	if cfg, ok := archetypeConfigs[kind]; ok {
		return cfg
	}
	return archetypeConfigs[domain.ArchetypePower]
}

// FeatLimit returns the archetype's feat cap.
func FeatLimit(kind domain.ArchetypeKind) int {
	return Config(kind).FeatLimit
}

// EquipmentMax returns the archetype's equipment-slot cap.
func EquipmentMax(kind domain.ArchetypeKind) int {
	return Config(kind).EquipmentMax
}

// InnateEnergyMax returns the archetype's innate-energy cap.
func InnateEnergyMax(kind domain.ArchetypeKind) int {
	return Config(kind).InnateEnergyMax
}

// EffectiveFeatLimit combines the level-based allowance with the archetype
// cap. The rulebook states both limits; the lower one binds.
func EffectiveFeatLimit(level float64, kind domain.ArchetypeKind) int {
	byLevel := MaxArchetypeFeats(level)
	if limit := FeatLimit(kind); limit < byLevel {
		return limit
	}
	return byLevel
}
