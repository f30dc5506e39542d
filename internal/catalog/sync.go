package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/tessera-games/loreforge/internal/domain"
	"github.com/tessera-games/loreforge/internal/logger"
	"github.com/tessera-games/loreforge/internal/repository"
)

// SyncReport describes the outcome of syncing one catalog file.
type SyncReport struct {
	ConfigName  string          `json:"config_name"`
	Kind        domain.PartKind `json:"kind"`
	PartsSynced int             `json:"parts_synced"`
	Skipped     bool            `json:"skipped"`
}

// SyncDir loads, validates and syncs every catalog JSON file in dir.
// Files are processed in name order so failures are reproducible; the first
// failure aborts the run.
func SyncDir(ctx context.Context, loader Loader, repo repository.Part, dir string) ([]SyncReport, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCatalogDirFailed, dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf(ErrMsgNoCatalogFiles, dir)
	}
	sort.Strings(paths)

	log := logger.FromContext(ctx)
	reports := make([]SyncReport, 0, len(paths))

	for _, path := range paths {
		config, err := loader.Load(path)
		if err != nil {
			return nil, err
		}
		if err := loader.Validate(config); err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}

		result, err := loader.SyncToDatabase(ctx, config, repo, path)
		if err != nil {
			return nil, err
		}

		reports = append(reports, SyncReport{
			ConfigName:  filepath.Base(path),
			Kind:        config.Kind,
			PartsSynced: result.PartsSynced,
			Skipped:     result.Skipped,
		})
	}

	log.Info(LogMsgSyncDirCompleted, "dir", dir, "configs", len(reports))
	return reports, nil
}
