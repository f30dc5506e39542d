package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tessera-games/loreforge/internal/database/generated"
	"github.com/tessera-games/loreforge/internal/domain"
)

// parseDraftUUID parses a draft ID string to uuid.UUID with consistent error message.
func parseDraftUUID(draftID string) (uuid.UUID, error) {
	u, err := uuid.Parse(draftID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid draft id: %w", err)
	}
	return u, nil
}

// timeToTimestamptz converts a time.Time to pgtype.Timestamptz
func timeToTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// mapPartRow maps a generated parts row to a domain Part, decoding the
// tiers JSONB column.
func mapPartRow(row generated.Part) (domain.Part, error) {
	var tiers []domain.Tier
	if len(row.Tiers) > 0 {
		if err := json.Unmarshal(row.Tiers, &tiers); err != nil {
			return domain.Part{}, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalTiers, err)
		}
	}

	return domain.Part{
		ID:       int(row.PartID),
		Kind:     domain.PartKind(row.Kind),
		Name:     row.Name,
		Category: row.Category,
		Mechanic: row.Mechanic,
		Base: domain.Cost{
			Energy:         row.BaseEnergy,
			TrainingPoints: int(row.BaseTrainingPoints),
			ItemPoints:     int(row.BaseItemPoints),
			Currency:       int(row.BaseCurrency),
		},
		Tiers: tiers,
	}, nil
}

// mapDraftRow maps a generated drafts row to a domain Draft
func mapDraftRow(row generated.Draft) domain.Draft {
	return domain.Draft{
		ID:        row.DraftID.String(),
		OwnerID:   row.OwnerID,
		Kind:      domain.DraftKind(row.Kind),
		Name:      row.Name,
		Payload:   json.RawMessage(row.Payload),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
