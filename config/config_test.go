package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Neutralize any ambient overrides.
	for _, key := range []string{
		"NOURISHBOX_SEED", "NOURISHBOX_CUSTOMERS", "NOURISHBOX_START_DATE",
		"NOURISHBOX_END_DATE", "WAREHOUSE_DRIVER", "SYNC_BATCH_SIZE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Seed != 42 {
		t.Errorf("default seed = %d, want 42", cfg.Seed)
	}
	if cfg.NumCustomers != 4015 {
		t.Errorf("default customers = %d, want 4015", cfg.NumCustomers)
	}
	if cfg.StartDate != "2021-01-01" || cfg.EndDate != "2025-12-31" {
		t.Errorf("default window = %s..%s", cfg.StartDate, cfg.EndDate)
	}
	if cfg.WarehouseDriver != "postgres" {
		t.Errorf("default warehouse driver = %s", cfg.WarehouseDriver)
	}
	if cfg.SyncBatchSize != 500 {
		t.Errorf("default batch size = %d", cfg.SyncBatchSize)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default configuration should validate: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NOURISHBOX_SEED", "7")
	t.Setenv("NOURISHBOX_CUSTOMERS", "100")
	t.Setenv("WAREHOUSE_DRIVER", "sqlite3")

	cfg := Load()
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
	if cfg.NumCustomers != 100 {
		t.Errorf("customers = %d, want 100", cfg.NumCustomers)
	}
	if cfg.WarehouseDriver != "sqlite3" {
		t.Errorf("driver = %s", cfg.WarehouseDriver)
	}
}

func TestBadIntFallsBackToDefault(t *testing.T) {
	t.Setenv("NOURISHBOX_CUSTOMERS", "not-a-number")

	cfg := Load()
	if cfg.NumCustomers != 4015 {
		t.Errorf("customers = %d, want the default on a bad value", cfg.NumCustomers)
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cfg := Load()
	cfg.WarehouseDriver = "oracle"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown warehouse driver should fail validation")
	}

	cfg = Load()
	cfg.NumCustomers = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero customers should fail validation")
	}

	cfg = Load()
	cfg.EndDate = "2020-01-01"
	if err := cfg.Validate(); err == nil {
		t.Error("inverted window should fail validation")
	}

	cfg = Load()
	cfg.StartDate = "01/01/2021"
	if err := cfg.Validate(); err == nil {
		t.Error("non-ISO dates should fail validation")
	}
}

func TestWindow(t *testing.T) {
	cfg := Load()
	start, end, err := cfg.Window()
	if err != nil {
		t.Fatalf("Window failed: %v", err)
	}
	if !end.After(start) {
		t.Error("window end should be after start")
	}
	if got := end.Sub(start).Hours() / 24; got < 365 {
		t.Errorf("default window spans %.0f days", got)
	}
}
