package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzbot/config"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "DATABASE_URL", "DB_POSTGRES_DATABASE_URL", "STORE_DRIVER", "STORE_STORE_DRIVER", "PORT", "SERVER_PORT", "HOST", "SERVER_HOST")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "10000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, config.StoreDriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "tzbot.db", cfg.DB.SQLite.Path)
	assert.Equal(t, "timezones", cfg.Store.Redis.Key)
}

func TestLoad_BareNames(t *testing.T) {
	unsetenv(t, "SERVER_PORT", "DB_POSTGRES_DATABASE_URL", "STORE_DRIVER", "STORE_STORE_DRIVER")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://bot:secret@db:5432/bot?sslmode=disable")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://bot:secret@db:5432/bot?sslmode=disable", cfg.DB.Postgres.URL)
}

func TestLoad_PrefixedNameWins(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", "redis")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, config.StoreDriverRedis, cfg.Store.Driver)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		url     string
		wantErr error
	}{
		{name: "postgres with url", driver: config.StoreDriverPostgres, url: "postgres://localhost/bot"},
		{name: "postgres without url", driver: config.StoreDriverPostgres, wantErr: config.ErrMissingDatabaseURL},
		{name: "sqlite", driver: config.StoreDriverSQLite},
		{name: "redis", driver: config.StoreDriverRedis},
		{name: "unknown", driver: "mongo", wantErr: config.ErrUnknownStoreDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Store.Driver = tt.driver
			cfg.DB.Postgres.URL = tt.url

			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
