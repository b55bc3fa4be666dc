package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/ProjectLife_Go/internal/config"
	"github.com/osse101/ProjectLife_Go/internal/database"
	"github.com/osse101/ProjectLife_Go/internal/database/memory"
	"github.com/osse101/ProjectLife_Go/internal/database/postgres"
	"github.com/osse101/ProjectLife_Go/internal/database/sqlite"
	"github.com/osse101/ProjectLife_Go/internal/logger"
	"github.com/osse101/ProjectLife_Go/internal/repository"
)

// InitializeStore opens the progression store selected by STORE_DRIVER and
// brings its schema up to date. The caller owns the returned store and must Close it.
func InitializeStore(ctx context.Context, cfg *config.Config) (repository.Progression, error) {
	var (
		store repository.Progression
		err   error
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store = memory.NewStore()
	case config.StoreDriverPostgres:
		store, err = openPostgres(ctx, cfg)
	case config.StoreDriverSQLite:
		store, err = sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			err = fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
	default:
		err = fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	logger.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
	return store, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (repository.Progression, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns,
		database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.MigratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
	}

	return postgres.NewStore(pool), nil
}
