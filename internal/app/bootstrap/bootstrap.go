// Package bootstrap is the composition root: configuration, logging and
// storage selection happen here so the engine stays wiring-agnostic.
package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"strings"

	listingengine "gaadi/contexts/marketplace/listing-engine"
	memoryadapter "gaadi/contexts/marketplace/listing-engine/adapters/memory"
	sqliteadapter "gaadi/contexts/marketplace/listing-engine/adapters/sqlite"
	"gaadi/contexts/marketplace/listing-engine/ports"
	"gaadi/internal/platform/config"
	"gaadi/internal/platform/db"
)

type App struct {
	Module listingengine.Module
	Config config.Config
	Logger *slog.Logger

	sqlite *db.SQLite
}

// Build loads configuration and wires the engine against either the
// embedded SQLite medium (when a storage path is configured) or the
// in-memory one.
func Build(ctx context.Context, notifier ports.Notifier) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})).With("service", cfg.ServiceName)

	app := &App{Config: cfg, Logger: logger}

	deps := listingengine.Dependencies{
		Notifier:    notifier,
		ListingsKey: cfg.ListingsKey,
		DraftsKey:   cfg.DraftsKey,
		Logger:      logger,
	}

	if strings.TrimSpace(cfg.StoragePath) == "" {
		store := memoryadapter.NewStore()
		deps.KV = store
		deps.Clock = store
		deps.IDGenerator = sqliteadapter.UUIDGenerator{}
	} else {
		sq, err := db.Connect(cfg.StoragePath)
		if err != nil {
			return nil, err
		}
		if err := sqliteadapter.Migrate(sq.DB); err != nil {
			_ = sq.Close()
			return nil, err
		}
		app.sqlite = sq
		deps.KV = sqliteadapter.NewStore(sq.DB, logger)
		deps.Clock = sqliteadapter.SystemClock{}
		deps.IDGenerator = sqliteadapter.UUIDGenerator{}
	}

	app.Module = listingengine.NewModule(deps)

	if cfg.SeedSample {
		if err := app.Module.SeedSample(ctx); err != nil {
			_ = app.Close()
			return nil, err
		}
	}

	logger.Debug("engine wired",
		"event", "bootstrap_engine_wired",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"storage_path", cfg.StoragePath,
	)
	return app, nil
}

func (a *App) Close() error {
	if a.sqlite != nil {
		return a.sqlite.Close()
	}
	return nil
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
