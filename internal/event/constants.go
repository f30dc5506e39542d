package event

import "time"

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Retry configuration constants
const (
	// RetryInitialDelaySeconds is the initial retry delay in seconds
	RetryInitialDelaySeconds = 2

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// DeadLetterFilePermissions is the file permission mode for dead-letter files
const DeadLetterFilePermissions = 0644

// Log message constants
const (
	LogMsgEventPublishFailed  = "Event publish failed, scheduling retry"
	LogMsgEventRetryFailed    = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded = "Event retry succeeded"
	LogMsgEventDeadLettered   = "Event written to dead-letter log"
	LogMsgDeadLetterFailed    = "Failed to write dead-letter entry"

	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay returns the exponential backoff delay for an attempt:
// baseDelay * 2^(attempt-1).
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
