package derive

// TechniqueInput is everything a technique creator form feeds the
// derivation. Techniques are martial powers: the cost metric is training
// points, and the damage dice come from the referenced weapon.
type TechniqueInput struct {
	Selections []Selection

	// WeaponName is resolved separately by the caller for display; the
	// derivation only needs the dice.
	WeaponName string
	DieCount   int
	DieSize    int
	DamageType DamageType

	Action   ActionType
	Reaction bool
}

// TechniqueDerivation is the display-ready cost summary of a technique.
// TrainingPoints is clamped to zero at display when a weapon is referenced;
// RawTrainingPoints keeps the unclamped total.
type TechniqueDerivation struct {
	TrainingPoints    int            `json:"training_points"`
	RawTrainingPoints int            `json:"raw_training_points"`
	WeaponName        string         `json:"weapon_name,omitempty"`
	Totals            Totals         `json:"totals"`
	Breakdown         []Contribution `json:"breakdown"`
	Warnings          []string       `json:"warnings,omitempty"`
}

// TPBreakdown returns the nonzero training-point contributors by name.
func (d TechniqueDerivation) TPBreakdown() []Contribution {
	out := make([]Contribution, 0, len(d.Breakdown))
	for _, c := range d.Breakdown {
		if c.TP != 0 {
			out = append(out, c)
		}
	}
	return out
}

// Technique derives a technique's training-point cost against a catalog
// snapshot. Negative totals from negative-cost properties survive in
// RawTrainingPoints; only the weapon display value clamps at zero.
func Technique(input TechniqueInput, idx *Index) TechniqueDerivation {
	entries := make([]entry, 0, len(input.Selections)+4)
	for _, sel := range input.Selections {
		entries = append(entries, userEntry(sel))
	}
	entries = append(entries, weaponEntries(input.DieCount, input.DieSize, input.DamageType)...)
	entries = append(entries, actionEntries(input.Action, input.Reaction)...)

	totals, contributions, warnings := aggregate(entries, idx, 0)

	display := totals.TP
	if input.WeaponName != "" && display < 0 {
		display = 0
	}
	return TechniqueDerivation{
		TrainingPoints:    display,
		RawTrainingPoints: totals.TP,
		WeaponName:        input.WeaponName,
		Totals:            totals,
		Breakdown:         contributions,
		Warnings:          warnings,
	}
}
