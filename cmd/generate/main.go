package main

import (
	"flag"
	"log"

	"github.com/nourishbox/nourishbox-data/config"
	"github.com/nourishbox/nourishbox-data/pkg/export"
	"github.com/nourishbox/nourishbox-data/pkg/generator"
	"github.com/nourishbox/nourishbox-data/pkg/models"
)

func main() {
	progress := flag.Bool("progress", true, "render progress bars on long stages")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}
	start, end, err := cfg.Window()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("🔧 Configuration loaded (seed=%d, customers=%d, window=%s..%s)",
		cfg.Seed, cfg.NumCustomers, cfg.StartDate, cfg.EndDate)

	gen, err := generator.New(generator.Config{
		Seed:         cfg.Seed,
		NumCustomers: cfg.NumCustomers,
		WindowStart:  start,
		WindowEnd:    end,
		Progress:     *progress,
	})
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ds, err := gen.Run()
	if err != nil {
		log.Fatalf("❌ Generation failed: %v", err)
	}

	// Only a fully generated dataset reaches disk.
	if err := export.WriteCSV(ds, cfg.OutputDir); err != nil {
		log.Fatalf("❌ Export failed: %v", err)
	}
	log.Printf("✅ Dataset written to %s", cfg.OutputDir)

	printSummary(ds)
}

func printSummary(ds *models.Dataset) {
	var revenue float64
	for _, o := range ds.Orders {
		revenue += o.OrderTotal
	}
	avgOrder := 0.0
	if len(ds.Orders) > 0 {
		avgOrder = revenue / float64(len(ds.Orders))
	}

	churnRate := 0.0
	if len(ds.Subscriptions) > 0 {
		churnRate = float64(len(ds.ChurnEvents)) / float64(len(ds.Subscriptions)) * 100
	}

	var ratingSum int
	for _, r := range ds.Reviews {
		ratingSum += r.Rating
	}
	avgRating := 0.0
	if len(ds.Reviews) > 0 {
		avgRating = float64(ratingSum) / float64(len(ds.Reviews))
	}

	log.Println("📊 Dataset summary")
	log.Printf("  customers:      %d", len(ds.Customers))
	log.Printf("  subscriptions:  %d (churn rate %.1f%%)", len(ds.Subscriptions), churnRate)
	log.Printf("  orders:         %d", len(ds.Orders))
	log.Printf("  order items:    %d", len(ds.OrderItems))
	log.Printf("  reviews:        %d (avg rating %.2f)", len(ds.Reviews), avgRating)
	log.Printf("  campaigns:      %d", len(ds.Campaigns))
	log.Printf("  total revenue:  $%.2f (avg order $%.2f)", revenue, avgOrder)
}
