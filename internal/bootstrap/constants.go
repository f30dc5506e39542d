package bootstrap

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// Logger configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log level string constants
const (
	LogLevelDebug = "DEBUG"
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingLoreforge   = "Starting Loreforge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory: %w"
	ErrMsgFailedOpenLogFile   = "failed to open log file: %w"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector: %w"
	ErrMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory: %w"
	ErrMsgFailedCreateDeadLetter     = "failed to create dead-letter writer: %w"

	// EventDeadLetterFileName is the dead-letter log filename inside LogDir
	EventDeadLetterFileName = "event_deadletter.jsonl"
)

// Catalog sync messages
const (
	LogMsgSyncingCatalog        = "Syncing part catalog from JSON configs..."
	LogMsgCatalogConfigSynced   = "Catalog config synced successfully"
	LogMsgCatalogConfigSkipped  = "Catalog config unchanged, sync skipped"
	ErrMsgFailedSyncCatalog     = "failed to sync part catalog: %w"
	LogMsgCatalogEventPubFailed = "Catalog sync event publish failed"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
