package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tessera-games/loreforge/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	DraftCreated  Type = "draft.created"
	DraftUpdated  Type = "draft.updated"
	DraftDeleted  Type = "draft.deleted"
	CatalogSynced Type = "catalog.synced"
)

// Typed event payloads

// DraftPayloadV1 is the typed payload for draft lifecycle events
type DraftPayloadV1 struct {
	DraftID   string `json:"draft_id"`
	OwnerID   string `json:"owner_id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
}

// CatalogSyncedPayloadV1 is the typed payload for catalog sync events
type CatalogSyncedPayloadV1 struct {
	ConfigName  string `json:"config_name"`
	Kind        string `json:"kind"`
	PartsSynced int    `json:"parts_synced"`
	Timestamp   int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewDraftEvent creates a draft lifecycle event of the given type
func NewDraftEvent(eventType Type, draft *domain.Draft) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: DraftPayloadV1{
			DraftID:   draft.ID,
			OwnerID:   draft.OwnerID,
			Kind:      string(draft.Kind),
			Name:      draft.Name,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCatalogSyncedEvent creates a catalog sync event
func NewCatalogSyncedEvent(configName string, kind domain.PartKind, partsSynced int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogSynced,
		Payload: CatalogSyncedPayloadV1{
			ConfigName:  configName,
			Kind:        string(kind),
			PartsSynced: partsSynced,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
