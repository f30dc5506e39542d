package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all pending goose migrations from the embedded filesystem.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("Failed to close migration connection", "error", err)
		}
	}()

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}

	slog.Info(LogMsgMigrationsApplied)
	return nil
}
