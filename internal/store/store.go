package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/slr71/mgmt/pkg/types"
)

// Store persists configuration sections, value types, defaults, values, and
// environments in a single SQLite database. All methods are safe for
// concurrent use; the database handle carries its own connection pool.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Open creates the data directory if needed, opens or creates the database,
// applies the schema, and seeds the value types. Opening an existing database
// changes nothing: schema application and seeding are idempotent.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dataDir, cfg.DatabaseName())
	// Foreign keys are off by default in SQLite; the cascade and restrict
	// rules depend on the pragma being set on every connection.
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying indexes: %w", err)
		}
	}

	s := &Store{db: db, path: path}
	if err := s.seedValueTypes(db); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle. Close is idempotent; operations on a
// closed store return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// conn returns the open database handle, or ErrStoreClosed after Close.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}
