package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tessera-games/loreforge/internal/config"
	"github.com/tessera-games/loreforge/internal/event"
	"github.com/tessera-games/loreforge/internal/metrics"
)

// InitializeEventSystem creates the in-memory event bus wrapped in a
// resilient publisher, and registers the metrics collector so draft and
// catalog events feed Prometheus counters. Events that exhaust their
// retries land in a dead-letter log under the configured log directory.
func InitializeEventSystem(cfg *config.Config) (event.Bus, error) {
	eventBus := event.NewMemoryBus()

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	deadLetterPath := filepath.Join(cfg.LogDir, EventDeadLetterFileName)
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf(ErrMsgFailedCreateDeadLetterDir, err)
	}

	deadLetter, err := event.NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedCreateDeadLetter, err)
	}

	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		DeadLetter: deadLetter,
	})

	slog.Info(LogMsgEventSystemInitialized, "deadletter_path", deadLetterPath)
	return publisher, nil
}
