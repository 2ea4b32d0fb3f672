package main

import (
	"context"
	"fmt"
	"os"

	"github.com/platewise/platewise-backend/internal/data/db"
	"github.com/platewise/platewise-backend/internal/platform/envutil"
	"github.com/platewise/platewise-backend/internal/platform/logger"
)

// Seeds the preference catalog and the original recipe corpus. Safe to run
// repeatedly.
func main() {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}

	if err := db.Seed(context.Background(), postgresService.DB()); err != nil {
		log.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
	log.Info("Seeding complete")
}
