package event

import (
	"context"
	"time"

	"github.com/tessera-games/loreforge/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	DeadLetter *DeadLetterWriter
}

// ResilientPublisher wraps a Bus to add retry logic with exponential backoff
// and dead-letter capture. Publish never surfaces transient failures to the
// caller; a failed event is retried in the background and dead-lettered only
// when every attempt fails.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelaySeconds * time.Second
	}
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish attempts to publish an event, falling back to a background retry
// loop on failure. Returns nil once the event is accepted for processing.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"max_retries", p.config.MaxRetries)

	// Detached from the request context: the caller's request may finish
	// long before the retries do.
	go p.retryLoop(event, err)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.config.RetryDelay, attempt))

		if err := p.inner.Publish(ctx, event); err != nil {
			lastErr = err
			log.Warn(LogMsgEventRetryFailed,
				"event_type", event.Type,
				"attempt", attempt,
				"error", err)
			continue
		}

		log.Info(LogMsgEventRetrySucceeded,
			"event_type", event.Type,
			"attempt", attempt)
		return
	}

	if p.config.DeadLetter != nil {
		if err := p.config.DeadLetter.Write(event, p.config.MaxRetries, lastErr); err != nil {
			log.Error(LogMsgDeadLetterFailed, "error", err)
		}
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
