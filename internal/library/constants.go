package library

// Input limits
const (
	MaxDraftNameLength = 120
	MaxPayloadBytes    = 64 * 1024
)

// Error message format constants
const (
	ErrMsgNameRequired     = "draft name is required"
	ErrMsgNameTooLong      = "draft name exceeds maximum length"
	ErrMsgPayloadTooLarge  = "draft payload exceeds maximum size"
	ErrMsgSaveDraftFailed  = "failed to save draft: %w"
	ErrMsgGetDraftFailed   = "failed to get draft: %w"
	ErrMsgListDraftsFailed = "failed to list drafts: %w"
	ErrMsgDeleteFailed     = "failed to delete draft: %w"
)

// Log message constants
const (
	LogMsgDraftCreated       = "Draft created"
	LogMsgDraftUpdated       = "Draft updated"
	LogMsgDraftDeleted       = "Draft deleted"
	LogMsgDerivationComputed = "Draft derivation computed"
	LogMsgEventPublishFailed = "Failed to publish draft event"
)
