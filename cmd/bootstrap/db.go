package bootstrap

import (
	"context"
	"log/slog"

	"hostel-admin/internal/infra/db"
	"hostel-admin/internal/infra/migration"
	"hostel-admin/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.AutoMigrate {
		if err := migrateUp(cfg.DB, logger); err != nil {
			return nil, err
		}
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func migrateUp(cfg config.DBConfig, logger *slog.Logger) error {
	m, err := migration.New(cfg.BuildMigrateURL(), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			logger.Warn("failed to close migrator", "error", err.Error())
		}
	}()
	return m.Up()
}
