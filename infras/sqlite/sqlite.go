package sqlite

//nolint:revive
import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"tzbot/config"
)

const DriverName = "sqlite"

const pragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// New opens the embedded database file at DB_SQLITE_PATH.
func New(cfg *config.Config) (*sqlx.DB, error) {
	return Open(cfg.DB.SQLite.Path)
}

// Open opens path with modernc's pure-Go driver. A single connection is kept
// so writers serialize in-process and ":memory:" databases stay one database.
func Open(path string) (*sqlx.DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + pragmas
	}

	db, err := sqlx.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %q: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("pinging sqlite database %q: %w", path, err)
	}

	log.Info().Str("path", path).Msg("Opened embedded database")

	return db, nil
}
