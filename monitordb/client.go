package monitordb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thomad99/lab007-scraper/internal/logging"
)

// Client is the main entry point for the database layer
type Client struct {
	config  Config
	Pool    *pgxpool.Pool
	Queries *Queries
}

// NewClient connects a pgx pool using the provided configuration, verifies the
// connection, and applies pending migrations.
func NewClient(ctx context.Context, config Config) (*Client, error) {
	poolCfg, err := pgxpool.ParseConfig(config.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	poolCfg.MaxConns = config.MaxConns
	poolCfg.ConnConfig.ConnectTimeout = config.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, config.PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := applyMigrations(ctx, config.DSN()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	if config.verbose {
		logging.LogOperation(logging.FromContext(ctx), "database_ready",
			slog.String("host", config.Host),
			slog.String("db_name", config.DBName))
	}

	client := &Client{
		config:  config,
		Pool:    pool,
		Queries: New(pool),
	}
	return client, nil
}

// Close shuts down the connection pool.
func (c *Client) Close() {
	c.Pool.Close()
}

// HealthCheck verifies the connection is alive.
func (c *Client) HealthCheck(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, c.config.PingTimeout)
	defer cancel()
	if err := c.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}
