package bootstrap

import (
	"context"
	"log/slog"

	"github.com/tessera-games/loreforge/internal/database"
	"github.com/tessera-games/loreforge/internal/server"
)

// ShutdownComponents holds the components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	DBPool database.Pool
}

// GracefulShutdown stops the HTTP server first so no new requests arrive,
// then closes the database pool. Errors during shutdown are logged but do
// not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
