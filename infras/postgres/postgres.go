package postgres

//nolint:revive
import (
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"tzbot/config"
)

const DriverName = "postgres"

// New connects to the managed database named by DATABASE_URL, retrying
// MaxRetry times with RetryWaitTime seconds between attempts.
func New(cfg *config.Config) (*sqlx.DB, error) {
	pg := cfg.DB.Postgres

	return CreatePostgresConnection(pg.URL, max(pg.MaxRetry, 1), pg.RetryWaitTime, pg.MaxIdleConns, pg.MaxOpenConns)
}

// CreatePostgresConnection creates a pooled database connection.
func CreatePostgresConnection(descriptor string, maxRetry, waitTime, maxIdle, maxOpen int) (*sqlx.DB, error) {
	host, dbName := describe(descriptor)

	var err error

	for retry := range maxRetry {
		var sqlDB *sqlx.DB

		sqlDB, err = sqlx.Connect(DriverName, descriptor)
		if err == nil {
			log.
				Info().
				Str("host", host).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(maxIdle)
			sqlDB.SetMaxOpenConns(maxOpen)

			return sqlDB, nil
		}

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		if retry+1 < maxRetry {
			time.Sleep(time.Duration(waitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("connecting to postgres after %d attempts: %w", maxRetry, err)
}

// describe extracts loggable parts of a connection URL without the credentials.
func describe(descriptor string) (host, dbName string) {
	parsed, err := url.Parse(descriptor)
	if err != nil {
		return "", ""
	}

	if len(parsed.Path) > 1 {
		dbName = parsed.Path[1:]
	}

	return parsed.Host, dbName
}
