package metrics

import (
	"context"

	"github.com/tessera-games/loreforge/internal/event"
	"github.com/tessera-games/loreforge/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all event types the collector cares about
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.DraftCreated,
		event.DraftUpdated,
		event.DraftDeleted,
		event.CatalogSynced,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.DraftCreated, event.DraftUpdated:
		if payload, ok := evt.Payload.(event.DraftPayloadV1); ok {
			DraftsSaved.WithLabelValues(payload.Kind).Inc()
		}

	case event.DraftDeleted:
		if payload, ok := evt.Payload.(event.DraftPayloadV1); ok {
			DraftsDeleted.WithLabelValues(payload.Kind).Inc()
		}

	case event.CatalogSynced:
		if payload, ok := evt.Payload.(event.CatalogSyncedPayloadV1); ok {
			CatalogSyncs.WithLabelValues(payload.Kind).Inc()
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
