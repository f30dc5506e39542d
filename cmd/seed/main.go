package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tessera-games/loreforge/internal/catalog"
	"github.com/tessera-games/loreforge/internal/config"
	"github.com/tessera-games/loreforge/internal/database"
	"github.com/tessera-games/loreforge/internal/database/postgres"
)

// Seeds the part catalog into the database without starting the API server.
// Useful for CI pipelines and fresh environments.
func main() {
	catalogDir := flag.String("dir", "", "catalog directory (defaults to CATALOG_DIR or configs/parts)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "loreforge")

	dir := *catalogDir
	if dir == "" {
		dir = getEnv("CATALOG_DIR", config.DefaultCatalogDir)
	}

	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	ctx := context.Background()

	pool, err := database.NewPool(connString, database.DefaultMaxConnections, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", dbname, err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := postgres.NewPartRepository(pool)
	loader := catalog.NewLoader()

	fmt.Printf("Syncing catalog from %s...\n", dir)
	reports, err := catalog.SyncDir(ctx, loader, repo, dir)
	if err != nil {
		log.Fatalf("Catalog sync failed: %v", err)
	}

	for _, report := range reports {
		if report.Skipped {
			fmt.Printf("  %s: unchanged, skipped\n", report.ConfigName)
			continue
		}
		fmt.Printf("  %s: synced %d %s parts\n", report.ConfigName, report.PartsSynced, report.Kind)
	}

	fmt.Println("Catalog sync completed successfully.")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
