package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	DerivationsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDerivationsComputed,
			Help: HelpTextDerivationsComputed,
		},
		[]string{LabelKind},
	)

	UnresolvedPartRefs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnresolvedPartRefs,
			Help: HelpTextUnresolvedPartRefs,
		},
		[]string{LabelKind},
	)

	DraftsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDraftsSaved,
			Help: HelpTextDraftsSaved,
		},
		[]string{LabelKind},
	)

	DraftsDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDraftsDeleted,
			Help: HelpTextDraftsDeleted,
		},
		[]string{LabelKind},
	)

	CatalogSyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogSyncs,
			Help: HelpTextCatalogSyncs,
		},
		[]string{LabelKind},
	)

	SnapshotRebuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotRebuilds,
			Help: HelpTextSnapshotRebuilds,
		},
		[]string{LabelKind},
	)
)
