// Command export_leads writes the lead table to a CSV file for the sales team.
// By default only the last 30 days are exported.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"paradise/internal/config"
	"paradise/internal/database"
	"paradise/internal/modules/lead"
	"paradise/internal/repository"
)

func main() {
	output := flag.String("output", "", "output file path (default leads_<date>.csv)")
	status := flag.String("status", "", "filter by status (new, contacted, qualified, closed, rejected)")
	startDate := flag.String("start-date", "", "export from this date, YYYY-MM-DD")
	endDate := flag.String("end-date", "", "export up to this date inclusive, YYYY-MM-DD")
	all := flag.Bool("all", false, "export everything, ignoring the default 30 day window")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	filters, err := buildFilters(*status, *startDate, *endDate, *all)
	if err != nil {
		log.Fatalf("flags: %v", err)
	}

	path := *output
	if path == "" {
		path = fmt.Sprintf("leads_%s.csv", time.Now().Format("2006-01-02"))
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	svc := lead.NewService(repository.NewLeadRepository(db), nil, nil, nil, cfg.UploadDir, cfg.MaxUploadSize)

	count, err := svc.ExportCSV(context.Background(), filters, f)
	if err != nil {
		log.Fatalf("export: %v", err)
	}

	log.Printf("exported %d leads to %s", count, path)
}

func buildFilters(status, startDate, endDate string, all bool) (repository.LeadFilters, error) {
	f := repository.LeadFilters{Status: status}

	if startDate != "" {
		t, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return f, fmt.Errorf("invalid -start-date %q", startDate)
		}
		f.StartDate = &t
	}
	if endDate != "" {
		t, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return f, fmt.Errorf("invalid -end-date %q", endDate)
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		f.EndDate = &end
	}

	// default window applies only when no explicit range was given
	if !all && f.StartDate == nil && f.EndDate == nil {
		since := time.Now().AddDate(0, 0, -30)
		f.StartDate = &since
	}

	return f, nil
}
