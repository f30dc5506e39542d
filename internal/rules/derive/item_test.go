package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDiceCount(t *testing.T) {
	tests := []struct {
		name     string
		dieCount int
		dieSize  int
		want     int
	}{
		{"3d10 fits in three d12s", 3, 10, 0},
		{"4d10 fits in four d12s", 4, 10, 0},
		{"2d12 is already d12s", 2, 12, 0},
		{"6d6 splits three times", 6, 6, 3},
		{"single die never splits", 1, 6, 0},
		{"non-standard die size ignored", 4, 7, 0},
		{"8d4 splits", 8, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitDiceCount(tt.dieCount, tt.dieSize))
		})
	}
}

func TestWeaponDamageLevel(t *testing.T) {
	tests := []struct {
		dieCount int
		dieSize  int
		want     int
	}{
		{1, 4, 0},  // (4-4)/2
		{1, 6, 1},  // (6-4)/2
		{2, 6, 4},  // (12-4)/2
		{3, 10, 13},
		{1, 2, 0}, // below baseline clamps
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, weaponDamageLevel(tt.dieCount, tt.dieSize),
			"weaponDamageLevel(%d, %d)", tt.dieCount, tt.dieSize)
	}
}

func TestItemWeaponEntries(t *testing.T) {
	idx := testIndex()

	result := Item(ItemInput{
		Armament:   ArmamentWeapon,
		DieCount:   6,
		DieSize:    6,
		DamageType: DamageWeapon,
	}, idx)

	byName := contributionsByName(result.Breakdown)

	// 6d6 = 36 damage -> level 16: base TP 2 + 16, base IP 1 + 16.
	damage := byName["Weapon Damage"]
	require.True(t, damage.Found)
	assert.Equal(t, 18, damage.TP)
	assert.Equal(t, 17, damage.IP)

	// 36 damage needs ceil(36/12)=3 d12s; 6 dice means 3 splits.
	split := byName["Split Damage Dice"]
	require.True(t, split.Found)
	assert.Equal(t, 3, split.TP)
}

func TestItemArmamentBases(t *testing.T) {
	idx := testIndex()

	armor := Item(ItemInput{Armament: ArmamentArmor}, idx)
	byName := contributionsByName(armor.Breakdown)
	assert.Equal(t, 2, byName["Armor Base"].IP)

	shield := Item(ItemInput{Armament: ArmamentShield, TwoHanded: true}, idx)
	byName = contributionsByName(shield.Breakdown)
	assert.Equal(t, 1, byName["Shield Base"].IP)
	assert.Equal(t, 1, byName["Two-Handed"].TP)
}

func TestItemRequirementEntries(t *testing.T) {
	idx := testIndex()

	result := Item(ItemInput{
		Armament:            ArmamentWeapon,
		AbilityRequirements: map[string]int{"Might": 3},
	}, idx)

	byName := contributionsByName(result.Breakdown)
	req, ok := byName["Might Requirement (Weapon)"]
	require.True(t, ok)
	// Requirement 3 -> option level 2 on a -1 TP per level tier.
	assert.Equal(t, -2, req.TP)

	// Zero-valued requirements synthesize nothing.
	empty := Item(ItemInput{
		Armament:            ArmamentWeapon,
		AbilityRequirements: map[string]int{"Agility": 0},
	}, idx)
	assert.Empty(t, empty.Breakdown)
}

func TestRarityBrackets(t *testing.T) {
	idx := testIndex()

	tests := []struct {
		name       string
		selections []Selection
		wantRarity string
		wantPoints int
	}{
		{
			"five points is the first Common rung",
			[]Selection{{Ref: RefByName("Keen Edge")}},
			"Common", 5,
		},
		{
			"upper bound is inclusive",
			[]Selection{{Ref: RefByName("Keen Edge")}, {Ref: RefByName("Reinforced")}},
			"Common", 9,
		},
		{
			"one past the bound moves up",
			[]Selection{{Ref: RefByName("Keen Edge")}, {Ref: RefByName("Keen Edge")}},
			"Uncommon", 10,
		},
		{
			"empty item is mundane",
			nil,
			"Mundane", 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Item(ItemInput{Selections: tt.selections}, idx)
			assert.Equal(t, tt.wantRarity, result.Rarity)
			assert.Equal(t, tt.wantPoints, result.ItemPoints)
		})
	}
}

func TestCurrencyCost(t *testing.T) {
	idx := testIndex()

	// Keen Edge: 5 IP -> Common (floor 200), currency modifier 2.
	result := Item(ItemInput{Selections: []Selection{{Ref: RefByName("Keen Edge")}}}, idx)
	assert.Equal(t, "Common", result.Rarity)
	// 200 * (1 + 0.125*2) = 250.
	assert.Equal(t, 250, result.CurrencyCost)

	// A negative modifier never prices below the bracket floor.
	discounted := Item(ItemInput{
		Selections: []Selection{
			{Ref: RefByName("Keen Edge")},
			{Ref: RefByName("Cumbersome")},
		},
	}, idx)
	assert.Equal(t, "Common", discounted.Rarity)
	assert.Equal(t, 200, discounted.CurrencyCost)
}

func TestBracketForExtremes(t *testing.T) {
	assert.Equal(t, "Mundane", bracketFor(-5).Name)
	assert.Equal(t, "Legendary", bracketFor(1_000_000).Name)
}
