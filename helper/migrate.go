package helper

//nolint:revive
import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	sqliteMigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"

	"tzbot/config"
	"tzbot/migrations"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var (
	ErrNoMigrations  = errors.New("store driver has no SQL migrations")
	ErrUnknownAction = errors.New("unknown migration action")
)

// databaseURL builds the golang-migrate URL for the configured SQL store.
func databaseURL(cfg *config.Config) (string, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		parsed, err := url.Parse(cfg.DB.Postgres.URL)
		if err != nil {
			return "", fmt.Errorf("parsing DATABASE_URL: %w", err)
		}

		query := parsed.Query()
		query.Set("x-migrations-table", cfg.DB.MigrationTable)
		parsed.RawQuery = query.Encode()

		return parsed.String(), nil
	case config.StoreDriverSQLite:
		return fmt.Sprintf("sqlite://%s?x-migrations-table=%s", cfg.DB.SQLite.Path, url.QueryEscape(cfg.DB.MigrationTable)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrNoMigrations, cfg.Store.Driver)
	}
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	connectionString, err := databaseURL(cfg)
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(migrations.FS, cfg.Store.Driver)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies action against the configured store.
func Runner(cfg *config.Config, action string) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("Failed to close migrate instance")
		}
	}()

	return apply(cfg, mig, action)
}

// UpWithDB applies pending migrations through db, which stays open. SQLite
// is migrated in place so ":memory:" databases get their schema; other
// drivers open their own connection as Up does.
func UpWithDB(cfg *config.Config, db *sql.DB) error {
	if cfg.Store.Driver != config.StoreDriverSQLite {
		return Up(cfg)
	}

	driver, err := sqliteMigrate.WithInstance(db, &sqliteMigrate.Config{MigrationsTable: cfg.DB.MigrationTable})
	if err != nil {
		return fmt.Errorf("error wrapping sqlite handle: %w", err)
	}

	source, err := iofs.New(migrations.FS, cfg.Store.Driver)
	if err != nil {
		return fmt.Errorf("error opening embedded migrations: %w", err)
	}

	// mig is not closed: closing it would close db.
	mig, err := migrate.NewWithInstance("iofs", source, config.StoreDriverSQLite, driver)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	return apply(cfg, mig, ActionUp)
}

func apply(cfg *config.Config, mig *migrate.Migrate, action string) error {
	var err error

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations (%s): %w", action, err)
	}

	log.Info().Str("action", action).Str("store", cfg.Store.Driver).Msg("Database migrations completed successfully")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
