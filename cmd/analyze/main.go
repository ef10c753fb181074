package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/nourishbox/nourishbox-data/config"
	"github.com/nourishbox/nourishbox-data/pkg/analytics"
	"github.com/nourishbox/nourishbox-data/pkg/export"
)

func main() {
	workbook := flag.Bool("workbook", false, "also save the reports as an Excel workbook")
	progress := flag.Bool("progress", true, "render progress bars on long stages")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("🔧 Reading dataset from %s", cfg.OutputDir)

	customers, err := analytics.LoadCustomers(cfg.OutputDir)
	if err != nil {
		log.Fatalf("❌ Failed to load customers: %v", err)
	}
	orders, err := analytics.LoadOrders(cfg.OutputDir)
	if err != nil {
		log.Fatalf("❌ Failed to load orders: %v", err)
	}
	churns, err := analytics.LoadChurnEvents(cfg.OutputDir)
	if err != nil {
		log.Fatalf("❌ Failed to load churn events: %v", err)
	}
	snapshots, err := analytics.LoadSnapshots(cfg.OutputDir)
	if err != nil {
		log.Fatalf("❌ Failed to load snapshots: %v", err)
	}

	seasonal := analytics.BuildSeasonalityReport(customers, orders, churns)
	seasonal.Print()

	cohorts := analytics.BuildCohortReport(customers, orders, *progress)
	cohorts.Print()

	mrr := analytics.BuildMRRSeries(snapshots)
	analytics.PrintMRR(mrr)

	if *workbook {
		if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
			log.Fatalf("❌ Failed to create export dir: %v", err)
		}
		path := filepath.Join(cfg.ExportDir, "nourishbox_analytics.xlsx")
		if err := export.WriteAnalyticsWorkbook(path, seasonal, mrr); err != nil {
			log.Fatalf("❌ Failed to write workbook: %v", err)
		}
		log.Printf("✅ Workbook written to %s", path)
	}
}
