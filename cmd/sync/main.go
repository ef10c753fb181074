package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nourishbox/nourishbox-data/config"
	"github.com/nourishbox/nourishbox-data/pkg/jobs"
	"github.com/nourishbox/nourishbox-data/pkg/warehouse"
)

func main() {
	clearFirst := flag.Bool("clear", false, "truncate warehouse tables before loading")
	schedule := flag.String("schedule", "", "cron spec for recurring syncs (e.g. \"0 2 * * *\"); empty runs once")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	dsn := cfg.DatabaseURL
	if cfg.WarehouseDriver == "sqlite3" {
		dsn = cfg.SQLitePath
	}
	log.Printf("🔧 Connecting to %s warehouse...", cfg.WarehouseDriver)

	syncer, err := warehouse.Open(cfg.WarehouseDriver, dsn, cfg.SyncBatchSize)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer syncer.Close()

	manager := jobs.NewCronManager(syncer, cfg.OutputDir, *clearFirst, log.Default())

	if *schedule == "" {
		if err := manager.RunSync(context.Background()); err != nil {
			log.Fatalf("❌ Sync failed: %v", err)
		}
		log.Println("✅ Warehouse sync completed")
		return
	}

	if err := manager.SetupJobs(*schedule); err != nil {
		log.Fatalf("❌ Invalid schedule %q: %v", *schedule, err)
	}
	manager.Start()
	defer manager.Stop()

	// Block until interrupted.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down...")
}
