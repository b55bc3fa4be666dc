package main

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/osse101/ProjectLife_Go/internal/config"
	"github.com/osse101/ProjectLife_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or inspect embedded migrations for the configured store (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status")
	}
	subcmd := args[0]
	if subcmd != "up" && subcmd != "status" {
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		return c.runPostgres(ctx, cfg, subcmd)
	case config.StoreDriverSQLite:
		return c.runSQLite(ctx, cfg, subcmd)
	default:
		PrintWarning("Store driver %q has no schema to migrate", cfg.StoreDriver)
		return nil
	}
}

func (c *MigrateCommand) runPostgres(ctx context.Context, cfg *config.Config, subcmd string) error {
	PrintHeader("PostgreSQL migrations")

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if subcmd == "up" {
		if err := database.MigratePostgres(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Schema is up to date")
		return nil
	}

	states, err := database.PostgresMigrationStatus(ctx, pool)
	if err != nil {
		return err
	}
	printMigrationStates(states)
	return nil
}

func (c *MigrateCommand) runSQLite(ctx context.Context, cfg *config.Config, subcmd string) error {
	PrintHeader(fmt.Sprintf("SQLite migrations (%s)", cfg.SQLitePath))

	db, err := sql.Open("sqlite", filepath.Clean(cfg.SQLitePath))
	if err != nil {
		return err
	}
	defer db.Close()

	if subcmd == "up" {
		if err := database.MigrateSQLite(ctx, db); err != nil {
			return err
		}
		PrintSuccess("Schema is up to date")
		return nil
	}

	states, err := database.SQLiteMigrationStatus(ctx, db)
	if err != nil {
		return err
	}
	printMigrationStates(states)
	return nil
}

func printMigrationStates(states []database.MigrationState) {
	pending := 0
	for _, s := range states {
		if s.Applied {
			PrintSuccess("%05d %s (applied %s)", s.Version, s.Path, s.AppliedAt.Format("2006-01-02 15:04:05"))
			continue
		}
		pending++
		PrintWarning("%05d %s (pending)", s.Version, s.Path)
	}
	if pending == 0 {
		PrintInfo("%d migrations, none pending", len(states))
	} else {
		PrintInfo("%d migrations, %d pending", len(states), pending)
	}
}
