package main

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/ProjectLife_Go/internal/config"
)

const (
	defaultDBRetries     = 30
	dbRetryInterval      = 2 * time.Second
	dbPingAttemptTimeout = 3 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for PostgreSQL to be ready (with retries) [max_retries]"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	maxRetries := defaultDBRetries
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid max_retries %q", args[0])
		}
		maxRetries = n
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.GetDBConnString())
	if err != nil {
		return err
	}
	defer db.Close()

	return waitForDB(context.Background(), db.PingContext, maxRetries, dbRetryInterval)
}

// waitForDB pings until it succeeds or maxRetries attempts have failed
func waitForDB(ctx context.Context, ping func(context.Context) error, maxRetries int, interval time.Duration) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, dbPingAttemptTimeout)
		err = ping(attemptCtx)
		cancel()
		if err == nil {
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, maxRetries, err)
		if i < maxRetries-1 {
			select {
			case <-time.After(interval):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", maxRetries, err)
}
