package derive

import (
	"fmt"
	"math"

	"github.com/tessera-games/loreforge/internal/domain"
)

// Selection is one user-selected part on a draft: a reference plus the
// chosen option level per tier. ApplyDuration marks entries whose energy
// contribution scales with the power's duration choice.
type Selection struct {
	Ref           Ref    `json:"ref"`
	Levels        [3]int `json:"levels"`
	ApplyDuration bool   `json:"apply_duration,omitempty"`
}

// entrySource distinguishes user-selected parts from the modifiers the
// derivation synthesizes (range, duration, damage...). Keeping the variant
// explicit keeps the aggregation pass exhaustive.
type entrySource int

const (
	sourceUser entrySource = iota
	sourceSystem
)

// entry is one resolved line of the aggregation, user-selected or
// system-derived.
type entry struct {
	source        entrySource
	ref           Ref
	levels        [3]int
	applyDuration bool
}

func userEntry(sel Selection) entry {
	return entry{source: sourceUser, ref: sel.Ref, levels: sel.Levels, applyDuration: sel.ApplyDuration}
}

func systemEntry(name string, level int) entry {
	return entry{source: sourceSystem, ref: RefByName(name), levels: [3]int{level, 0, 0}}
}

// Contribution is one line of the cost breakdown returned to callers. The
// UI lists nonzero training-point contributors by name as chips.
type Contribution struct {
	Name    string  `json:"name"`
	Found   bool    `json:"found"`
	Derived bool    `json:"derived"`
	Levels  [3]int  `json:"levels"`
	Energy  float64 `json:"energy"`
	TP      int     `json:"training_points"`
	IP      int     `json:"item_points"`
	Cur     int     `json:"currency"`
}

// Totals is the aggregate over all contributions.
type Totals struct {
	Energy float64 `json:"energy"`
	TP     int     `json:"training_points"`
	IP     int     `json:"item_points"`
	Cur    int     `json:"currency"`
}

func (t *Totals) add(c Contribution) {
	t.Energy += c.Energy
	t.TP += c.TP
	t.IP += c.IP
	t.Cur += c.Cur
}

// durationMultiplier scales energy for entries flagged ApplyDuration. Each
// rung on the duration ladder adds half the base cost again.
func durationMultiplier(durationLevel int) float64 {
	if durationLevel < 0 {
		return 1
	}
	return 1 + 0.5*float64(durationLevel)
}

// aggregate resolves each entry against the index, sums the record's base
// cost plus each tier's linear per-level delta, and accumulates totals.
// Unresolved references contribute zero and are reported as warnings;
// the computation is total and never aborts.
func aggregate(entries []entry, idx *Index, durationLevel int) (Totals, []Contribution, []string) {
	var (
		totals        Totals
		contributions = make([]Contribution, 0, len(entries))
		warnings      []string
	)

	for _, e := range entries {
		part, ok := idx.Resolve(e.ref)
		if !ok {
			contributions = append(contributions, Contribution{
				Name:    e.ref.String(),
				Found:   false,
				Derived: e.source == sourceSystem,
				Levels:  e.levels,
			})
			warnings = append(warnings, fmt.Sprintf("%s: %q", domain.ErrMsgPartNotFound, e.ref.String()))
			continue
		}

		cost := part.Base
		for i, tier := range part.Tiers {
			if i >= domain.MaxPartTiers {
				break
			}
			level := e.levels[i]
			if level <= 0 {
				continue
			}
			cost = cost.Add(tier.Delta.Scale(level))
		}

		if e.applyDuration {
			cost.Energy *= durationMultiplier(durationLevel)
		}

		c := Contribution{
			Name:    part.Name,
			Found:   true,
			Derived: e.source == sourceSystem || part.Mechanic,
			Levels:  e.levels,
			Energy:  cost.Energy,
			TP:      cost.TrainingPoints,
			IP:      cost.ItemPoints,
			Cur:     cost.Currency,
		}
		contributions = append(contributions, c)
		totals.add(c)
	}

	return totals, contributions, warnings
}

// CeilEnergy rounds an energy total up to one decimal for display: 3.22
// becomes 3.3.
func CeilEnergy(energy float64) float64 {
	return math.Ceil(energy*10) / 10
}
