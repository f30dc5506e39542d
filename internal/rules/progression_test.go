package rules

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/tessera-games/loreforge/internal/domain"
)

func TestAbilityPoints(t *testing.T) {
	tests := []struct {
		name  string
		level float64
		kind  domain.EntityKind
		want  int
	}{
		{"level 1 player", 1, domain.EntityPlayer, 7},
		{"level 2 player", 2, domain.EntityPlayer, 7},
		{"level 3 player", 3, domain.EntityPlayer, 7},
		{"level 4 player", 4, domain.EntityPlayer, 8},
		{"level 7 player", 7, domain.EntityPlayer, 9},
		{"level 10 player", 10, domain.EntityPlayer, 10},
		{"level 20 player", 20, domain.EntityPlayer, 13},
		{"negative level clamps to baseline", -3, domain.EntityPlayer, 7},
		{"creature quarter level", 0.25, domain.EntityCreature, 2},
		{"creature half level", 0.5, domain.EntityCreature, 4},
		{"creature level 1", 1, domain.EntityCreature, 7},
		{"creature level 4", 4, domain.EntityCreature, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbilityPoints(tt.level, tt.kind); got != tt.want {
				t.Errorf("AbilityPoints(%v, %s) = %d, want %d", tt.level, tt.kind, got, tt.want)
			}
		})
	}
}

// Ability points gain exactly one point per three levels.
func TestAbilityPointsIncrement(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := float64(rapid.IntRange(1, 60).Draw(t, "level"))
		lower := AbilityPoints(level, domain.EntityPlayer)
		upper := AbilityPoints(level+3, domain.EntityPlayer)
		if upper-lower != 1 {
			t.Fatalf("AbilityPoints(%v+3)-AbilityPoints(%v) = %d, want 1", level, level, upper-lower)
		}
	})
}

func TestSkillPoints(t *testing.T) {
	tests := []struct {
		name  string
		level float64
		kind  domain.EntityKind
		want  int
	}{
		{"level 1 player", 1, domain.EntityPlayer, 5},
		{"level 2 player", 2, domain.EntityPlayer, 8},
		{"level 5 player", 5, domain.EntityPlayer, 17},
		{"negative level clamps", -1, domain.EntityPlayer, 5},
		{"creature half level", 0.5, domain.EntityCreature, 3},
		{"creature quarter level", 0.25, domain.EntityCreature, 2},
		{"creature level 2", 2, domain.EntityCreature, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SkillPoints(tt.level, tt.kind); got != tt.want {
				t.Errorf("SkillPoints(%v, %s) = %d, want %d", tt.level, tt.kind, got, tt.want)
			}
		})
	}
}

// Skill points follow 2 + 3*floor(level) across the whole player domain.
func TestSkillPointsFormula(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(1, 40).Draw(t, "level")
		want := 2 + 3*level
		if got := SkillPoints(float64(level), domain.EntityPlayer); got != want {
			t.Fatalf("SkillPoints(%d) = %d, want %d", level, got, want)
		}
	})
}

func TestHealthEnergyPool(t *testing.T) {
	tests := []struct {
		name  string
		level float64
		kind  domain.EntityKind
		want  int
	}{
		{"player level 1", 1, domain.EntityPlayer, 18},
		{"player level 5", 5, domain.EntityPlayer, 66},
		{"creature level 1", 1, domain.EntityCreature, 26},
		{"creature level 3", 3, domain.EntityCreature, 50},
		{"creature half level", 0.5, domain.EntityCreature, 13},
		{"negative level clamps", -2, domain.EntityPlayer, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HealthEnergyPool(tt.level, tt.kind); got != tt.want {
				t.Errorf("HealthEnergyPool(%v, %s) = %d, want %d", tt.level, tt.kind, got, tt.want)
			}
		})
	}
}

func TestProficiency(t *testing.T) {
	tests := []struct {
		level float64
		want  int
	}{
		{1, 2},
		{4, 2},
		{5, 3},
		{9, 3},
		{10, 4},
		{15, 5},
		{-1, 2},
	}

	for _, tt := range tests {
		if got := Proficiency(tt.level); got != tt.want {
			t.Errorf("Proficiency(%v) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestTrainingPoints(t *testing.T) {
	tests := []struct {
		name    string
		level   float64
		ability int
		kind    domain.EntityKind
		want    int
	}{
		{"player level 1 no ability", 1, 0, domain.EntityPlayer, 22},
		{"player level 2 ability 2", 2, 2, domain.EntityPlayer, 28},
		{"player level 5 ability 3", 5, 3, domain.EntityPlayer, 45},
		{"creature level 1 ability 3", 1, 3, domain.EntityCreature, 12},
		{"creature level 3 ability 2", 3, 2, domain.EntityCreature, 17},
		{"creature sub-level clamps to level 1", 0.5, 1, domain.EntityCreature, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrainingPoints(tt.level, tt.ability, tt.kind); got != tt.want {
				t.Errorf("TrainingPoints(%v, %d, %s) = %d, want %d", tt.level, tt.ability, tt.kind, got, tt.want)
			}
		})
	}
}

func TestCreatureCurrency(t *testing.T) {
	tests := []struct {
		level float64
		want  int
	}{
		{1, 200},
		{2, 290},
		{3, 421},
		{4, 610},
	}

	for _, tt := range tests {
		if got := CreatureCurrency(tt.level); got != tt.want {
			t.Errorf("CreatureCurrency(%v) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestMaxFeats(t *testing.T) {
	if got := MaxArchetypeFeats(3); got != 3 {
		t.Errorf("MaxArchetypeFeats(3) = %d, want 3", got)
	}
	if got := MaxArchetypeFeats(0.5); got != 0 {
		t.Errorf("MaxArchetypeFeats(0.5) = %d, want 0", got)
	}
	if got := MaxArchetypeFeats(-2); got != 0 {
		t.Errorf("MaxArchetypeFeats(-2) = %d, want 0", got)
	}
	if got := MaxCharacterFeats(6); got != 6 {
		t.Errorf("MaxCharacterFeats(6) = %d, want 6", got)
	}
}

// All progression formulas are total: any level in [-10, 60] returns a
// value without panicking, and results are non-negative.
func TestFormulasTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.Float64Range(-10, 60).Draw(t, "level")
		kind := rapid.SampledFrom([]domain.EntityKind{domain.EntityPlayer, domain.EntityCreature}).Draw(t, "kind")

		for name, got := range map[string]int{
			"AbilityPoints":    AbilityPoints(level, kind),
			"SkillPoints":      SkillPoints(level, kind),
			"HealthEnergyPool": HealthEnergyPool(level, kind),
			"Proficiency":      Proficiency(level),
			"CreatureCurrency": CreatureCurrency(level),
			"MaxFeats":         MaxArchetypeFeats(level),
		} {
			if got < 0 {
				t.Fatalf("%s(%v, %s) = %d, want non-negative", name, level, kind, got)
			}
		}
	})
}
