package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"tzbot/shared/constant"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverRedis    = "redis"
)

var (
	ErrUnknownStoreDriver = errors.New("unknown store driver")
	ErrMissingDatabaseURL = errors.New("postgres store requires DATABASE_URL")
)

// Config holds every setting of the service. Each leaf is read from its
// prefixed name (SERVER_PORT) first and falls back to the bare name (PORT).
type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"production"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"10000"`
		Host     string `envconfig:"HOST" default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"2"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name string `envconfig:"APP_NAME" default:"tzbot"`
		CORS struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		Swagger bool `envconfig:"SWAGGER" default:"true"`
	} `envconfig:"APP"`

	Store struct {
		Driver string `envconfig:"STORE_DRIVER"`
		Redis  struct {
			Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
			Password string `envconfig:"REDIS_PASSWORD"`
			DB       int    `envconfig:"REDIS_DB"`
			Key      string `envconfig:"REDIS_KEY" default:"timezones"`
		} `envconfig:"REDIS"`
	} `envconfig:"STORE"`

	DB struct {
		AutoMigrate    bool   `envconfig:"AUTO_MIGRATE" default:"true"`
		MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
		Postgres       struct {
			URL           string `envconfig:"DATABASE_URL"`
			MaxRetry      int    `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MaxIdleConns  int    `envconfig:"MAX_IDLE_CONNS" default:"10"`
			MaxOpenConns  int    `envconfig:"MAX_OPEN_CONNS" default:"10"`
		} `envconfig:"POSTGRES"`
		SQLite struct {
			Path string `envconfig:"SQLITE_PATH" default:"tzbot.db"`
		} `envconfig:"SQLITE"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

// Load reads .env (when present) and the process environment into a new Config.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
	} else {
		log.Info().Msg("Successfully loaded variables from .env file into environment")
	}

	conf := &Config{}

	if err := envconfig.Process("", conf); err != nil {
		return nil, fmt.Errorf("processing environment variables: %w", err)
	}

	if conf.Store.Driver == "" {
		conf.Store.Driver = conf.defaultDriver()
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	log.Info().Str("store", conf.Store.Driver).Msg("Service configuration initialized successfully")

	return conf, nil
}

// Validate checks settings envconfig cannot express as tags.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.Postgres.URL == "" {
			return ErrMissingDatabaseURL
		}
	case StoreDriverSQLite, StoreDriverRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStoreDriver, c.Store.Driver)
	}

	return nil
}

// IsDevelopment reports whether the server runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == constant.ServerEnvDevelopment
}

func (c *Config) defaultDriver() string {
	if c.DB.Postgres.URL != "" {
		return StoreDriverPostgres
	}

	return StoreDriverSQLite
}
