// Package jobs schedules recurring warehouse syncs.
package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nourishbox/nourishbox-data/pkg/warehouse"
)

// SyncTimeout bounds one scheduled warehouse load.
const SyncTimeout = 30 * time.Minute

// CronManager manages scheduled warehouse sync jobs
type CronManager struct {
	cron    *cron.Cron
	syncer  *warehouse.Syncer
	dataDir string
	clear   bool
	logger  *log.Logger
}

// NewCronManager creates a new cron manager. dataDir is the directory
// holding the generated CSV tables; clear controls whether each run
// truncates the warehouse before loading.
func NewCronManager(syncer *warehouse.Syncer, dataDir string, clear bool, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		syncer:  syncer,
		dataDir: dataDir,
		clear:   clear,
		logger:  logger,
	}
}

// SetupJobs configures the scheduled sync on the given cron spec
// (standard 5-field syntax, e.g. "0 2 * * *" for daily at 2 AM).
func (cm *CronManager) SetupJobs(spec string) error {
	cm.logger.Println("Setting up cron jobs...")

	_, err := cm.cron.AddFunc(spec, func() {
		cm.logger.Println("🕐 Running scheduled warehouse sync...")

		ctx, cancel := context.WithTimeout(context.Background(), SyncTimeout)
		defer cancel()

		if err := cm.RunSync(ctx); err != nil {
			cm.logger.Printf("❌ Scheduled sync failed: %v", err)
			return
		}

		cm.logger.Println("✅ Scheduled warehouse sync completed")
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Printf("  - %s: sync %s into warehouse", spec, cm.dataDir)

	return nil
}

// RunSync executes one full warehouse load: ensure schema, optionally
// clear, then load every table from the data directory.
func (cm *CronManager) RunSync(ctx context.Context) error {
	if err := cm.syncer.EnsureSchema(ctx); err != nil {
		return err
	}
	if cm.clear {
		cm.logger.Println("⚠️ Clearing warehouse tables before load...")
		if err := cm.syncer.Clear(ctx); err != nil {
			return err
		}
	}

	counts, err := cm.syncer.LoadDir(ctx, cm.dataDir)
	if err != nil {
		return err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	cm.logger.Printf("📊 Loaded %d rows across %d tables", total, len(counts))
	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
