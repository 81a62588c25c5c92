package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/local"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/pgstore"
	"github.com/heartmarshall/habitflow-backend/internal/config"
	"github.com/heartmarshall/habitflow-backend/internal/store"
)

// OpenBackend connects the store selected by cfg.Storage.Backend. The caller
// owns the returned backend and must call its Close.
func OpenBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		if cfg.Database.AutoMigrate {
			if err := MigratePostgres(ctx, cfg.Database.DSN, logger); err != nil {
				return store.Backend{}, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return store.Backend{}, fmt.Errorf("open postgres: %w", err)
		}
		return pgstore.New(pool), nil

	case config.BackendSQLite:
		kv, err := local.OpenSQLite(ctx, cfg.Storage.LocalPath)
		if err != nil {
			return store.Backend{}, fmt.Errorf("open sqlite: %w", err)
		}
		b := local.New(kv, nil).Backend(func() {
			if err := kv.Close(); err != nil {
				logger.Warn("close sqlite", slog.String("error", err.Error()))
			}
		})
		b.Name = config.BackendSQLite
		return b, nil

	case config.BackendMemory:
		b := local.New(local.NewMemoryKV(), nil).Backend(nil)
		b.Name = config.BackendMemory
		return b, nil

	default:
		return store.Backend{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// MigratePostgres applies every pending embedded migration to dsn.
func MigratePostgres(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer m.Close()

	results, err := m.Up(ctx)
	if err != nil {
		return err
	}
	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}
