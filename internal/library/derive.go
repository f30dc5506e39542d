package library

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tessera-games/loreforge/internal/character"
	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/logger"
	"github.com/tessera-games/loreforge/internal/metrics"
	"github.com/tessera-games/loreforge/internal/rules/derive"
)

// CharacterDerivation is the derived view of a character draft: progression
// budgets plus the ability-economy verdict for the stored spread.
type CharacterDerivation struct {
	Budgets   character.Budgets       `json:"budgets"`
	Abilities character.AbilityReport `json:"abilities"`
}

// CreatureDerivation is the derived view of a creature draft.
type CreatureDerivation struct {
	Budgets   character.Budgets       `json:"budgets"`
	Abilities character.AbilityReport `json:"abilities"`
}

// derive recomputes a draft's totals from its stored payload against the
// current catalog snapshot.
func (s *service) derive(ctx context.Context, draft *domain.Draft) (interface{}, error) {
	var (
		derived  interface{}
		warnings int
		err      error
	)

	switch draft.Kind {
	case domain.DraftCharacter:
		derived, err = s.deriveCharacter(ctx, draft.Payload)
	case domain.DraftCreature:
		derived, err = s.deriveCreature(ctx, draft.Payload)
	case domain.DraftPower:
		derived, warnings, err = s.derivePower(ctx, draft.Payload)
	case domain.DraftTechnique:
		derived, warnings, err = s.deriveTechnique(ctx, draft.Payload)
	case domain.DraftItem:
		derived, warnings, err = s.deriveItem(ctx, draft.Payload)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, draft.Kind)
	}
	if err != nil {
		return nil, err
	}

	metrics.DerivationsComputed.WithLabelValues(string(draft.Kind)).Inc()
	if warnings > 0 {
		metrics.UnresolvedPartRefs.WithLabelValues(string(draft.Kind)).Add(float64(warnings))
	}

	logger.FromContext(ctx).Debug(LogMsgDerivationComputed,
		"draft_id", draft.ID, "kind", draft.Kind, "warnings", warnings)
	return derived, nil
}

func (s *service) deriveCharacter(ctx context.Context, payload json.RawMessage) (*CharacterDerivation, error) {
	var p domain.CharacterPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}

	return &CharacterDerivation{
		Budgets:   s.characters.PlayerBudgets(ctx, p.Level, p.Archetype, p.Abilities),
		Abilities: s.characters.CheckAbilities(ctx, p.Abilities, p.Level, domain.EntityPlayer),
	}, nil
}

func (s *service) deriveCreature(ctx context.Context, payload json.RawMessage) (*CreatureDerivation, error) {
	var p domain.CreaturePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}

	return &CreatureDerivation{
		Budgets:   s.characters.CreatureBudgets(ctx, p.Level, p.Abilities),
		Abilities: s.characters.CheckAbilities(ctx, p.Abilities, p.Level, domain.EntityCreature),
	}, nil
}

func (s *service) derivePower(ctx context.Context, payload json.RawMessage) (*derive.PowerDerivation, int, error) {
	var p domain.PowerPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}

	idx, err := s.snapshots.Index(ctx, domain.PartKindPower)
	if err != nil {
		return nil, 0, err
	}

	result := derive.Power(PowerDeriveInput(p), idx)
	return &result, len(result.Warnings), nil
}

func (s *service) deriveTechnique(ctx context.Context, payload json.RawMessage) (*derive.TechniqueDerivation, int, error) {
	var p domain.TechniquePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}

	idx, err := s.snapshots.Index(ctx, domain.PartKindTechnique)
	if err != nil {
		return nil, 0, err
	}

	result := derive.Technique(TechniqueDeriveInput(p), idx)
	return &result, len(result.Warnings), nil
}

func (s *service) deriveItem(ctx context.Context, payload json.RawMessage) (*derive.ItemDerivation, int, error) {
	var p domain.ItemPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}

	idx, err := s.snapshots.Index(ctx, domain.PartKindItem)
	if err != nil {
		return nil, 0, err
	}

	result := derive.Item(ItemDeriveInput(p), idx)
	return &result, len(result.Warnings), nil
}

// selections maps stored selection payloads to derivation selections.
func selections(payloads []domain.SelectionPayload) []derive.Selection {
	if len(payloads) == 0 {
		return nil
	}
	out := make([]derive.Selection, len(payloads))
	for i, p := range payloads {
		out[i] = derive.Selection{
			Ref:           derive.Ref{ID: p.PartID, Name: p.PartName},
			Levels:        p.Levels,
			ApplyDuration: p.ApplyDuration,
		}
	}
	return out
}

// PowerDeriveInput maps a stored power payload to a derivation input.
func PowerDeriveInput(p domain.PowerPayload) derive.PowerInput {
	return derive.PowerInput{
		Selections:       selections(p.Parts),
		RangeSteps:       p.RangeSteps,
		AreaShape:        derive.AreaShape(p.AreaShape),
		AreaLevel:        p.AreaLevel,
		AreaDuration:     p.AreaDuration,
		DurationUnit:     derive.DurationUnit(p.DurationUnit),
		DurationValue:    p.DurationValue,
		Action:           derive.ActionType(p.Action),
		Reaction:         p.Reaction,
		Focus:            p.Focus,
		NoHarm:           p.NoHarm,
		EndsOnActivation: p.EndsOnActivation,
		SustainRounds:    p.SustainRounds,
	}
}

// TechniqueDeriveInput maps a stored technique payload to a derivation input.
func TechniqueDeriveInput(p domain.TechniquePayload) derive.TechniqueInput {
	return derive.TechniqueInput{
		Selections: selections(p.Parts),
		WeaponName: p.WeaponName,
		DieCount:   p.DieCount,
		DieSize:    p.DieSize,
		DamageType: derive.DamageType(p.DamageType),
		Action:     derive.ActionType(p.Action),
		Reaction:   p.Reaction,
	}
}

// ItemDeriveInput maps a stored item payload to a derivation input.
func ItemDeriveInput(p domain.ItemPayload) derive.ItemInput {
	return derive.ItemInput{
		Selections:          selections(p.Properties),
		Armament:            derive.ArmamentType(p.Armament),
		TwoHanded:           p.TwoHanded,
		DieCount:            p.DieCount,
		DieSize:             p.DieSize,
		DamageType:          derive.DamageType(p.DamageType),
		AbilityRequirements: p.AbilityRequirements,
		SkillRequirements:   p.SkillRequirements,
	}
}
