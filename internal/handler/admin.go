package handler

import (
	"net/http"

	"github.com/tessera-games/loreforge/internal/catalog"
	"github.com/tessera-games/loreforge/internal/event"
	"github.com/tessera-games/loreforge/internal/logger"
	"github.com/tessera-games/loreforge/internal/repository"
)

// AdminHandlers contains HTTP handlers for operational admin tasks
type AdminHandlers struct {
	loader     catalog.Loader
	repo       repository.Part
	snapshots  catalog.Snapshots
	bus        event.Bus
	catalogDir string
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(loader catalog.Loader, repo repository.Part, snapshots catalog.Snapshots, bus event.Bus, catalogDir string) *AdminHandlers {
	return &AdminHandlers{
		loader:     loader,
		repo:       repo,
		snapshots:  snapshots,
		bus:        bus,
		catalogDir: catalogDir,
	}
}

// ReloadPartsResponse reports the outcome of a catalog reload
type ReloadPartsResponse struct {
	Message string               `json:"message"`
	Reports []catalog.SyncReport `json:"reports"`
}

// HandleReloadParts re-syncs the part catalogs from disk and drops cached snapshots
// @Summary Reload part catalogs
// @Description Re-reads the catalog JSON files, syncs changed ones to the database and invalidates cached snapshots
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadPartsResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/reload-parts [post]
func (h *AdminHandlers) HandleReloadParts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		reports, err := catalog.SyncDir(r.Context(), h.loader, h.repo, h.catalogDir)
		if err != nil {
			log.Error("Reload parts: sync failed", "error", err, "dir", h.catalogDir)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadPartsFailed)
			return
		}

		h.snapshots.Invalidate(r.Context())

		for _, report := range reports {
			if report.Skipped {
				continue
			}
			evt := event.NewCatalogSyncedEvent(report.ConfigName, report.Kind, report.PartsSynced)
			if err := h.bus.Publish(r.Context(), evt); err != nil {
				log.Warn("Reload parts: failed to publish sync event", "error", err, "config", report.ConfigName)
			}
		}

		log.Info("Admin reloaded part catalogs", "configs", len(reports))
		respondJSON(w, http.StatusOK, ReloadPartsResponse{
			Message: MsgCatalogReloadSuccess,
			Reports: reports,
		})
	}
}
