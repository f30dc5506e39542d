package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgPartNotFound    = "part not found"
	ErrMsgCatalogNotFound = "catalog not found"

	// Library errors
	ErrMsgDraftNotFound  = "draft not found"
	ErrMsgDraftForbidden = "draft belongs to another owner"
	ErrMsgInvalidKind    = "invalid draft kind"
	ErrMsgInvalidPayload = "invalid draft payload"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrPartNotFound    = errors.New(ErrMsgPartNotFound)
	ErrCatalogNotFound = errors.New(ErrMsgCatalogNotFound)

	// Library errors
	ErrDraftNotFound  = errors.New(ErrMsgDraftNotFound)
	ErrDraftForbidden = errors.New(ErrMsgDraftForbidden)
	ErrInvalidKind    = errors.New(ErrMsgInvalidKind)
	ErrInvalidPayload = errors.New(ErrMsgInvalidPayload)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
