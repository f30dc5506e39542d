package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLevel      = "Invalid level parameter"
	ErrMsgInvalidKindParam  = "Invalid kind parameter"

	// Rules error messages
	ErrMsgGetBudgetsFailed     = "Failed to compute progression budgets"
	ErrMsgAbilityCheckFailed   = "Failed to check ability scores"
	ErrMsgUnknownArchetypeHTTP = "Unknown archetype"

	// Derivation error messages
	ErrMsgDeriveFailed = "Failed to derive costs"

	// Catalog error messages
	ErrMsgListPartsFailed   = "Failed to list parts"
	ErrMsgReloadPartsFailed = "Failed to reload part catalogs"

	// Library error messages
	ErrMsgSaveDraftFailed   = "Failed to save draft"
	ErrMsgGetDraftFailed    = "Failed to get draft"
	ErrMsgListDraftsFailed  = "Failed to list drafts"
	ErrMsgDeleteDraftFailed = "Failed to delete draft"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgPartNotFoundError   = "Part not found"
	ErrMsgDraftNotFoundError  = "Draft not found"
	ErrMsgDraftForbiddenError = "Draft belongs to another owner"
	ErrMsgInvalidKindError    = "Unknown draft kind"
	ErrMsgInvalidPayloadError = "Draft payload is not valid for its kind"
	ErrMsgCatalogMissingError = "Catalog has not been loaded"
)

// Success messages for API responses
const (
	MsgDraftDeletedSuccess   = "Draft deleted successfully"
	MsgCatalogReloadSuccess  = "Part catalogs reloaded successfully"
	MsgSnapshotInvalidatedOK = "Catalog snapshots invalidated"
)
