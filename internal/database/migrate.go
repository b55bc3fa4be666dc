package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// MigratePostgres brings the PostgreSQL schema up to date
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return migrate(ctx, goose.DialectPostgres, db, PostgresMigrationsDir)
}

// MigrateSQLite brings a SQLite schema up to date
func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, goose.DialectSQLite3, db, SQLiteMigrationsDir)
}

// MigrationState describes one embedded migration and whether it has been applied
type MigrationState struct {
	Version   int64
	Path      string
	Applied   bool
	AppliedAt time.Time
}

// PostgresMigrationStatus reports the state of every embedded PostgreSQL migration
func PostgresMigrationStatus(ctx context.Context, pool *pgxpool.Pool) ([]MigrationState, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return status(ctx, goose.DialectPostgres, db, PostgresMigrationsDir)
}

// SQLiteMigrationStatus reports the state of every embedded SQLite migration
func SQLiteMigrationStatus(ctx context.Context, db *sql.DB) ([]MigrationState, error) {
	return status(ctx, goose.DialectSQLite3, db, SQLiteMigrationsDir)
}

func newProvider(dialect goose.Dialect, db *sql.DB, dir string) (*goose.Provider, error) {
	fsys, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	return provider, nil
}

func status(ctx context.Context, dialect goose.Dialect, db *sql.DB, dir string) ([]MigrationState, error) {
	provider, err := newProvider(dialect, db, dir)
	if err != nil {
		return nil, err
	}

	results, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadMigrationStatus, err)
	}

	states := make([]MigrationState, 0, len(results))
	for _, r := range results {
		states = append(states, MigrationState{
			Version:   r.Source.Version,
			Path:      r.Source.Path,
			Applied:   r.State == goose.StateApplied,
			AppliedAt: r.AppliedAt,
		})
	}
	return states, nil
}

func migrate(ctx context.Context, dialect goose.Dialect, db *sql.DB, dir string) error {
	provider, err := newProvider(dialect, db, dir)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}

	if len(results) == 0 {
		slog.Default().Debug(LogMsgMigrationsUpToDate, "dialect", dialect)
		return nil
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"dialect", dialect,
			"version", r.Source.Version,
			"duration", r.Duration)
	}
	return nil
}
