package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tessera-games/loreforge/internal/bootstrap"
	"github.com/tessera-games/loreforge/internal/catalog"
	"github.com/tessera-games/loreforge/internal/character"
	"github.com/tessera-games/loreforge/internal/config"
	"github.com/tessera-games/loreforge/internal/database"
	"github.com/tessera-games/loreforge/internal/library"
	"github.com/tessera-games/loreforge/internal/server"
)

const (
	// ShutdownTimeout is how long in-flight requests get to finish
	ShutdownTimeout = 10 * time.Second

	// Pool connection lifetimes
	PoolMaxConnIdleTime = 5 * time.Minute
	PoolMaxConnLifetime = 30 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := logFile.Close(); closeErr != nil {
			slog.Warn("Failed to close log file", "error", closeErr)
		}
	}()

	ctx := context.Background()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), database.DefaultMaxConnections, PoolMaxConnIdleTime, PoolMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		slog.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	eventBus, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system setup failed", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	if _, err := bootstrap.SyncCatalog(ctx, repos.Part, eventBus, cfg.CatalogDir); err != nil {
		slog.Error("Catalog sync failed", "error", err)
		os.Exit(1)
	}

	snapshots := catalog.NewSnapshots(repos.Part, cfg.SnapshotTTL)
	characterService := character.NewService()
	libraryService := library.NewService(repos.Draft, snapshots, characterService, eventBus)

	srv := server.NewServer(cfg.Port, cfg.APIKey, server.Deps{
		DBPool:           dbPool,
		PartRepo:         repos.Part,
		Loader:           catalog.NewLoader(),
		Snapshots:        snapshots,
		CharacterService: characterService,
		LibraryService:   libraryService,
		EventBus:         eventBus,
		CatalogDir:       cfg.CatalogDir,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
