package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"tzbot/config"
	"tzbot/helper"
	"tzbot/infras/otel"
	"tzbot/infras/postgres"
	"tzbot/infras/redis"
	"tzbot/infras/sqlite"
)

// New opens the backend named by STORE_DRIVER, applies pending SQL
// migrations when DB_AUTO_MIGRATE is on, and returns the matching Timezone
// implementation. The returned func releases the connection.
func New(cfg *config.Config, ot otel.Otel) (Timezone, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		return newSQL(cfg, ot, postgres.New)
	case config.StoreDriverSQLite:
		return newSQL(cfg, ot, sqlite.New)
	case config.StoreDriverRedis:
		client, err := redis.New(cfg)
		if err != nil {
			return nil, nil, err
		}

		cleanup := func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close redis client")
			}
		}

		return NewRedis(client, cfg.Store.Redis.Key, ot), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStoreDriver, cfg.Store.Driver)
	}
}

func newSQL(cfg *config.Config, ot otel.Otel, open func(*config.Config) (*sqlx.DB, error)) (Timezone, func(), error) {
	db, err := open(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := helper.UpWithDB(cfg, db.DB); err != nil {
			_ = db.Close()

			return nil, nil, fmt.Errorf("auto-migrating %s store: %w", cfg.Store.Driver, err)
		}
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("store", cfg.Store.Driver).Msg("Failed to close database")
		}
	}

	return NewSQL(db, ot), cleanup, nil
}
