package derive

// PowerInput is everything a power creator form feeds the derivation:
// user-selected parts plus the scalar mechanics the system turns into
// implicit entries.
type PowerInput struct {
	Selections []Selection

	RangeSteps int

	AreaShape    AreaShape
	AreaLevel    int
	AreaDuration bool

	DurationUnit  DurationUnit
	DurationValue int

	Action   ActionType
	Reaction bool

	Focus            bool
	NoHarm           bool
	EndsOnActivation bool
	SustainRounds    int
}

// PowerDerivation is the display-ready cost summary of a power. Energy is
// rounded up to one decimal; Breakdown lists every contribution so the UI
// can chip the nonzero training-point sources.
type PowerDerivation struct {
	Energy         float64        `json:"energy"`
	TrainingPoints int            `json:"training_points"`
	Totals         Totals         `json:"totals"`
	Breakdown      []Contribution `json:"breakdown"`
	Warnings       []string       `json:"warnings,omitempty"`
}

// TPBreakdown returns the nonzero training-point contributors by name.
func (d PowerDerivation) TPBreakdown() []Contribution {
	out := make([]Contribution, 0, len(d.Breakdown))
	for _, c := range d.Breakdown {
		if c.TP != 0 {
			out = append(out, c)
		}
	}
	return out
}

// powerEntries assembles the full entry list for a power: the user's
// selections followed by the system-derived mechanics. It also reports the
// duration option level that feeds the duration multiplier.
func powerEntries(input PowerInput) ([]entry, int) {
	entries := make([]entry, 0, len(input.Selections)+8)
	for _, sel := range input.Selections {
		entries = append(entries, userEntry(sel))
	}

	if e, ok := rangeEntry(input.RangeSteps); ok {
		entries = append(entries, e)
	}

	durationLevel := 0
	if e, level, ok := durationEntry(input.DurationUnit, input.DurationValue); ok {
		entries = append(entries, e)
		durationLevel = level
	}

	if e, ok := areaEntry(input.AreaShape, input.AreaLevel, input.AreaDuration); ok {
		entries = append(entries, e)
	}

	entries = append(entries, actionEntries(input.Action, input.Reaction)...)
	entries = append(entries, toggleEntries(input.Focus, input.NoHarm, input.EndsOnActivation, input.SustainRounds)...)
	return entries, durationLevel
}

// Power derives a power's energy and training-point cost against a catalog
// snapshot. It is deterministic over its arguments: deriving the same input
// twice yields identical results.
func Power(input PowerInput, idx *Index) PowerDerivation {
	entries, durationLevel := powerEntries(input)
	totals, contributions, warnings := aggregate(entries, idx, durationLevel)
	return PowerDerivation{
		Energy:         CeilEnergy(totals.Energy),
		TrainingPoints: totals.TP,
		Totals:         totals,
		Breakdown:      contributions,
		Warnings:       warnings,
	}
}
