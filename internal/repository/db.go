package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/billfeed/billfeed/gen/ent"
)

// Config carries the connection settings for the Postgres pool. A zero
// StatementTimeout leaves the server default in place.
type Config struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

func (c Config) poolConfig() (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing dsn: %w", err)
	}
	pc.MaxConns = c.MaxConns
	pc.MinConns = c.MinConns
	pc.MaxConnLifetime = c.MaxConnLifetime
	pc.MaxConnIdleTime = c.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "billfeed"
	if c.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = c.StatementTimeout.String()
	}
	return pc, nil
}

// Open dials Postgres through pgx and hands the same pool to Ent via the
// stdlib adapter, so repositories and raw pool callers share connections.
// Row locks in the account repository require the Postgres dialect here.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	pc, err := cfg.poolConfig()
	if err != nil {
		logger.Error("db.config_invalid", "error", err)
		return nil, nil, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(dialCtx, pc)
	if err != nil {
		logger.Error("db.connect_failed", "host", pc.ConnConfig.Host, "error", err)
		return nil, nil, err
	}

	drv := entsql.OpenDB(dialect.Postgres, stdlib.OpenDBFromPool(pool))
	client := ent.NewClient(ent.Driver(drv))

	logger.Info("db.connected",
		"host", pc.ConnConfig.Host,
		"database", pc.ConnConfig.Database,
		"max_conns", pc.MaxConns,
	)
	return client, pool, nil
}

// Close releases the Ent client first so in-flight statements finish
// before the pool underneath them goes away.
func Close(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	if entc != nil {
		if err := entc.Close(); err != nil {
			logger.Error("db.close_failed", "error", err)
		}
	}
	if pool != nil {
		pool.Close()
	}
	logger.Info("db.closed")
}

// HealthCheck pings over the pool, bounded by timeout when one is given.
func HealthCheck(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := pool.Ping(ctx); err != nil {
		logger.Error("db.ping_failed", "error", err)
		return err
	}
	return nil
}
