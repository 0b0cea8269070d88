// Command cleanup_analytics removes analytics events older than the retention
// window. Intended to run from cron.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"paradise/internal/config"
	"paradise/internal/database"
	"paradise/internal/modules/analytics"
	"paradise/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	days := flag.Int("days", cfg.AnalyticsMaxAge, "delete events older than this many days")
	dryRun := flag.Bool("dry-run", false, "count matching events without deleting")
	flag.Parse()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	svc := analytics.NewService(repository.NewAnalyticsRepository(db))

	result, err := svc.Cleanup(context.Background(), *days, *dryRun)
	if err != nil {
		log.Fatalf("cleanup: %v", err)
	}

	if result.DryRun {
		log.Printf("dry run: %d events older than %s would be removed", result.Removed, result.Cutoff.Format("2006-01-02"))
		return
	}
	log.Printf("removed %d events older than %s", result.Removed, result.Cutoff.Format("2006-01-02"))
}
