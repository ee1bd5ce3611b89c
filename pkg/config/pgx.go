package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const pingAttempts = 3

// MustInitDB builds the pgx pool and verifies connectivity with a few
// pings, so a service racing its database at startup does not flap.
func MustInitDB(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	poolConfig.MaxConns = cfg.DB.MaxConns
	poolConfig.MinConns = cfg.DB.MinConns
	poolConfig.MaxConnLifetime = cfg.DB.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.DB.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = cfg.DB.HealthCheckPeriod

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	var pingErr error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		pingErr = pool.Ping(pingCtx)
		pingCancel()

		if pingErr == nil {
			return pool, nil
		}

		slog.Warn("database ping failed",
			slog.Int("attempt", attempt),
			slog.String("error", pingErr.Error()),
		)

		if attempt < pingAttempts {
			time.Sleep(500 * time.Millisecond)
		}
	}

	pool.Close()
	return nil, fmt.Errorf("failed to ping pool: %w", pingErr)
}
