package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tessera-games/loreforge/internal/catalog"
	"github.com/tessera-games/loreforge/internal/event"
	"github.com/tessera-games/loreforge/internal/repository"
)

// SyncCatalog loads, validates, and syncs every part catalog config under the
// catalog directory to the database. It handles the complete lifecycle:
// load JSON, validate against the schema, sync to DB, log results.
// Uses checksum-based change detection to skip configs whose files are
// unchanged. A CatalogSynced event is published for every config that
// actually wrote parts.
func SyncCatalog(ctx context.Context, repo repository.Part, bus event.Bus, catalogDir string) ([]catalog.SyncReport, error) {
	slog.Info(LogMsgSyncingCatalog, "dir", catalogDir)

	loader := catalog.NewLoader()
	reports, err := catalog.SyncDir(ctx, loader, repo, catalogDir)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedSyncCatalog, err)
	}

	for _, report := range reports {
		if report.Skipped {
			slog.Info(LogMsgCatalogConfigSkipped, "config", report.ConfigName)
			continue
		}

		slog.Info(LogMsgCatalogConfigSynced,
			"config", report.ConfigName,
			"kind", report.Kind,
			"parts_synced", report.PartsSynced)

		if bus != nil {
			evt := event.NewCatalogSyncedEvent(report.ConfigName, report.Kind, report.PartsSynced)
			if pubErr := bus.Publish(ctx, evt); pubErr != nil {
				slog.Warn(LogMsgCatalogEventPubFailed, "config", report.ConfigName, "error", pubErr)
			}
		}
	}

	return reports, nil
}
