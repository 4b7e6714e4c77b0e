package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Expected defaults to load, but got '%v'", err)
	}

	if cfg.Ledger.Strategy != "atomic" {
		t.Errorf("Expected the default strategy 'atomic', but got '%s'", cfg.Ledger.Strategy)
	}
	if cfg.Sync.Enabled {
		t.Error("Expected sync to be disabled by default")
	}
	if cfg.Sync.Subject != "lootvault.store.changed" {
		t.Errorf("Expected the default subject, but got '%s'", cfg.Sync.Subject)
	}
	if cfg.Database.Path == "" {
		t.Error("Expected a default database path")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"database": {"path": "/tmp/custom.db"},
		"ledger": {"strategy": "naive"},
		"sync": {"enabled": true, "subject": "custom.subject"},
		"catalog": [
			{"id": "x1", "name": "Custom Pack", "kind": "currency", "unit_amount": 700, "unit_price": 5.99}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Expected the config file to be written, but got '%v'", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected the config to load, but got '%v'", err)
	}

	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("Expected the configured database path, but got '%s'", cfg.Database.Path)
	}
	if cfg.Ledger.Strategy != "naive" {
		t.Errorf("Expected the configured strategy 'naive', but got '%s'", cfg.Ledger.Strategy)
	}
	if !cfg.Sync.Enabled {
		t.Error("Expected sync to be enabled")
	}
	if len(cfg.Catalog) != 1 || cfg.Catalog[0].ID != "x1" {
		t.Errorf("Expected one configured catalog entry, but got %+v", cfg.Catalog)
	}
	if cfg.Catalog[0].UnitAmount != 700 {
		t.Errorf("Expected a unit amount of 700, but got %d", cfg.Catalog[0].UnitAmount)
	}
}
