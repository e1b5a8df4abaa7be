package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deppfellow/employee-service/internal/config"
	"github.com/rs/zerolog"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteFileName is the database file created inside the configured data directory.
const SQLiteFileName = "employees.db"

// SQLite wraps a database/sql handle opened with modernc.org/sqlite.
//
// The handle is limited to one open connection, so writes are serialized
// through a single writer and never race each other at the driver level.
type SQLite struct {
	DB   *sql.DB
	path string
	log  *zerolog.Logger
}

// NewSQLite opens the SQLite store described by cfg and migrates it.
func NewSQLite(cfg *config.Config, logger *zerolog.Logger) (*SQLite, error) {
	return OpenSQLite(cfg.Database.Path, logger)
}

// OpenSQLite opens (creating if needed) <dataDir>/employees.db in WAL mode and
// applies the embedded migrations.
func OpenSQLite(dataDir string, logger *zerolog.Logger) (*SQLite, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, SQLiteFileName)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	store := &SQLite{
		DB:   db,
		path: dbPath,
		log:  logger,
	}

	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger.Info().
		Str("driver", config.DriverSQLite).
		Str("path", dbPath).
		Msg("connected to the database")

	return store, nil
}

// Path returns the database file path.
func (s *SQLite) Path() string {
	return s.path
}

// Ping checks that the database file is still usable.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close closes the underlying handle.
func (s *SQLite) Close() error {
	s.log.Info().Msg("closing sqlite database")
	return s.DB.Close()
}
