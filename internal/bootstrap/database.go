package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BoobaMarket_Go/internal/config"
	"github.com/osse101/BoobaMarket_Go/internal/database"
)

// ConnectDatabase opens the pool and, when configured, brings the schema up to date.
func ConnectDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
	}
	slog.Info(LogMsgDatabaseConnected, "host", cfg.DBHost, "database", cfg.DBName)

	if !cfg.MigrateOnStart {
		return pool, nil
	}

	slog.Info(LogMsgRunningMigrations)
	if err := database.MigrateUp(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgRunMigrations, err)
	}
	slog.Info(LogMsgMigrationsComplete)

	return pool, nil
}
