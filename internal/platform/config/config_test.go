package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServiceName != "gaadi" {
		t.Fatalf("expected default service name, got %q", cfg.ServiceName)
	}
	if cfg.ListingsKey != "listings" || cfg.DraftsKey != "drafts" {
		t.Fatalf("expected default partition keys, got %q/%q", cfg.ListingsKey, cfg.DraftsKey)
	}
	if !cfg.SeedSample {
		t.Fatalf("expected sample seeding on by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GAADI_STORAGE_PATH", "/tmp/gaadi.db")
	t.Setenv("GAADI_SEED_SAMPLE", "off")
	t.Setenv("GAADI_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StoragePath != "/tmp/gaadi.db" {
		t.Fatalf("expected storage path override, got %q", cfg.StoragePath)
	}
	if cfg.SeedSample {
		t.Fatalf("expected seeding disabled")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level override, got %q", cfg.LogLevel)
	}
}

func TestLoadYAMLFileThenEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gaadi.yaml")
	payload := "storage_path: /data/from-file.db\nlistings_key: jbm_listings_v1\ndrafts_key: jbm_drafts_v1\n"
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("GAADI_CONFIG", path)
	t.Setenv("GAADI_STORAGE_PATH", "/data/from-env.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListingsKey != "jbm_listings_v1" || cfg.DraftsKey != "jbm_drafts_v1" {
		t.Fatalf("expected keys from file, got %q/%q", cfg.ListingsKey, cfg.DraftsKey)
	}
	if cfg.StoragePath != "/data/from-env.db" {
		t.Fatalf("expected env to override file, got %q", cfg.StoragePath)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Setenv("GAADI_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
