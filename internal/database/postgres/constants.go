package postgres

// Error message constants
const (
	ErrMsgFailedToGetParts       = "failed to get parts"
	ErrMsgFailedToGetPart        = "failed to get part"
	ErrMsgFailedToUpsertPart     = "failed to upsert part"
	ErrMsgFailedToCountParts     = "failed to count parts"
	ErrMsgFailedToGetSync        = "failed to get catalog sync metadata"
	ErrMsgFailedToUpsertSync     = "failed to upsert catalog sync metadata"
	ErrMsgFailedToInsertDraft    = "failed to insert draft"
	ErrMsgFailedToGetDraft       = "failed to get draft"
	ErrMsgFailedToListDrafts     = "failed to list drafts"
	ErrMsgFailedToUpdateDraft    = "failed to update draft"
	ErrMsgFailedToDeleteDraft    = "failed to delete draft"
	ErrMsgFailedToMarshalTiers   = "failed to marshal part tiers"
	ErrMsgFailedToUnmarshalTiers = "failed to unmarshal part tiers"
)
