package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is centralized process configuration.
// Defaults run the engine fully in memory; a storage path switches the
// key-value medium to the embedded SQLite database.
type Config struct {
	ServiceName string `yaml:"service_name"`
	StoragePath string `yaml:"storage_path"`
	ListingsKey string `yaml:"listings_key"`
	DraftsKey   string `yaml:"drafts_key"`
	SeedSample  bool   `yaml:"seed_sample"`
	LogLevel    string `yaml:"log_level"`
}

// Load resolves configuration from the optional YAML file named by
// GAADI_CONFIG, then lets environment variables override field by field.
func Load() (Config, error) {
	cfg := Config{
		ServiceName: "gaadi",
		ListingsKey: "listings",
		DraftsKey:   "drafts",
		SeedSample:  true,
		LogLevel:    "info",
	}

	if path := strings.TrimSpace(os.Getenv("GAADI_CONFIG")); path != "" {
		loaded, err := LoadFile(path, cfg)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	if v := os.Getenv("SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := os.Getenv("GAADI_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("GAADI_LISTINGS_KEY"); v != "" {
		cfg.ListingsKey = v
	}
	if v := os.Getenv("GAADI_DRAFTS_KEY"); v != "" {
		cfg.DraftsKey = v
	}
	if v := os.Getenv("GAADI_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.SeedSample = envBool("GAADI_SEED_SAMPLE", cfg.SeedSample)

	return cfg, nil
}

// LoadFile parses a YAML config file over the given base values.
func LoadFile(path string, base Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
