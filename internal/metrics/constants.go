package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameDerivationsComputed = "derivations_computed_total"
	MetricNameUnresolvedPartRefs  = "unresolved_part_refs_total"
	MetricNameDraftsSaved         = "drafts_saved_total"
	MetricNameDraftsDeleted       = "drafts_deleted_total"
	MetricNameCatalogSyncs        = "catalog_syncs_total"
	MetricNameSnapshotRebuilds    = "catalog_snapshot_rebuilds_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

const (
	HelpTextDerivationsComputed = "Total number of cost derivations computed"
	HelpTextUnresolvedPartRefs  = "Total number of part references that failed to resolve during derivation"
	HelpTextDraftsSaved         = "Total number of library drafts created or updated"
	HelpTextDraftsDeleted       = "Total number of library drafts deleted"
	HelpTextCatalogSyncs        = "Total number of catalog config syncs"
	HelpTextSnapshotRebuilds    = "Total number of catalog snapshot rebuilds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelKind   = "kind"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
