// Package db builds the pgx connection pool behind the Postgres store. It is
// only reached when DATABASE_URL is configured; the in-memory store path never
// touches this package.
package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool sizing for a small API serving mostly read traffic. Generation bursts
// are already bounded upstream by the per-user rate limit.
const (
	maxConns        = 8
	minConns        = 2
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

// NewPool connects to Postgres with a bounded retry loop, so the server
// survives the database coming up a few seconds after it does.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: parse DATABASE_URL: %w", err)
	}

	cfg.MaxConns = maxConns
	cfg.MinConns = minConns
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute
	cfg.HealthCheckPeriod = time.Minute

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, cfg)
		if err == nil {
			pingErr := pool.Ping(ctx)
			if pingErr == nil {
				log.Println("db: connected")
				return pool, nil
			}
			pool.Close()
			err = pingErr
		}
		lastErr = err

		log.Printf("db: connection attempt %d/%d failed: %v", attempt, connectAttempts, err)
		if attempt < connectAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(connectBackoff):
			}
		}
	}

	return nil, fmt.Errorf("db: connection failed after %d attempts: %w", connectAttempts, lastErr)
}
