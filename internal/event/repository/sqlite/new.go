package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"voice-scheduler/internal/event/repository"
	"voice-scheduler/pkg/log"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	loc *time.Location
	now func() time.Time
}

// New creates a new SQLite-backed Repository for the event domain.
// Calendar dates read back from storage are placed at midnight in loc.
func New(db *sql.DB, l log.Logger, loc *time.Location) repository.Repository {
	if db == nil {
		panic("event/repository/sqlite: db is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &implRepository{db: db, l: l, loc: loc, now: time.Now}
}

// Open opens the SQLite database at path, creating parent directories as needed.
// The pool is limited to one connection: SQLite serializes writers anyway and an
// in-memory database only exists on the connection that created it.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA foreign_keys = ON;`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	return db, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/sqlite.%s", method)
}
