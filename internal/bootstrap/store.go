package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/slotengine/internal/config"
	"github.com/osse101/slotengine/internal/database"
	"github.com/osse101/slotengine/internal/database/postgres"
	"github.com/osse101/slotengine/internal/logger"
	"github.com/osse101/slotengine/internal/repository"
	"github.com/osse101/slotengine/internal/storage"
)

// OpenStore opens the machine store selected by cfg.StoreDriver and brings its
// schema up to date. The caller owns the returned store and must Close it.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Machine, error) {
	logger.Info(LogMsgOpeningStore, "driver", cfg.StoreDriver)

	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		store, err := storage.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		logger.Info(LogMsgStoreReady, "driver", cfg.StoreDriver, "path", cfg.SQLitePath)
		return store, nil

	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, database.PoolConfig{
			ConnString:      cfg.GetDBConnString(),
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: cfg.DBMaxConnIdleTime,
			MaxConnLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		logger.Info(LogMsgStoreReady, "driver", cfg.StoreDriver, "host", cfg.DBHost, "db", cfg.DBName)
		return postgres.NewMachineRepository(pool), nil

	default:
		return nil, fmt.Errorf("%s %q", ErrMsgUnsupportedStoreDriver, cfg.StoreDriver)
	}
}
