package catalog

// Schema paths
const (
	PartsSchemaPath = "configs/schemas/parts.schema.json"
)

// Error message format constants
const (
	ErrMsgReadConfigFileFailed = "failed to read config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse config file: %w"
	ErrMsgConfigNil            = "config is nil"
	ErrMsgNoPartsDefined       = "no parts defined"
	ErrMsgKindMismatch         = "config kind %q does not match expected kind %q"

	ErrFmtPartAtIndexNoName  = "%w: part at index %d has empty name"
	ErrFmtPartAtIndexBadID   = "%w: part %q has invalid id %d"
	ErrFmtDuplicateName      = "%w: '%s'"
	ErrFmtDuplicateID        = "%w: %d"
	ErrFmtPartTooManyTiers   = "%w: part %q defines %d tiers (max %d)"
	ErrMsgUpsertPartFailed   = "failed to upsert part %q: %w"
	ErrMsgCheckSyncFailed    = "failed to check sync state: %w"
	ErrMsgLoadSnapshotFailed = "failed to load %s catalog: %w"

	ErrMsgListCatalogDirFailed = "failed to list catalog dir %s: %w"
	ErrMsgNoCatalogFiles       = "no catalog files found in %s"
)

// Log message constants
const (
	LogMsgConfigUnchanged      = "Catalog config unchanged, skipping sync"
	LogMsgSyncCompleted        = "Catalog sync completed"
	LogMsgUpdateMetadataFailed = "Failed to update catalog sync metadata"
	LogMsgSnapshotRefreshed    = "Catalog snapshot refreshed"
	LogMsgSnapshotInvalidated  = "Catalog snapshots invalidated"
	LogMsgSyncDirCompleted     = "Catalog directory sync completed"
)
