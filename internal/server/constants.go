package server

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized = "Unauthorized"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// MaxRequestBodyBytes bounds request bodies. Draft payloads cap at 64KiB so
// 1MiB leaves generous headroom.
const MaxRequestBodyBytes = 1 << 20

// Header redaction marker
const RedactedValue = "[REDACTED]"
