package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// Store wraps the database connection and hands out repositories.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects to the database named by driver ("sqlite" or "postgres")
// and dsn, applies connection settings and creates missing tables.
func Open(driver, dsn string) (*Store, error) {
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := dialect.ConfigureConnection(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure connection: %w", err)
	}

	s := &Store{db: db, dialect: dialect}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range s.dialect.Schema() {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns the dialect the store was opened with.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Events returns the LLM request log.
func (s *Store) Events() *EventLog {
	return &EventLog{db: s.db, dialect: s.dialect}
}

// Sessions returns the exam session repository.
func (s *Store) Sessions() *SessionRepo {
	return &SessionRepo{db: s.db, dialect: s.dialect}
}

// q rewrites a ?-placeholder query for the store's dialect.
func q(d Dialect, query string) string {
	return d.RewriteQuery(query)
}

// DefaultDBPath resolves the SQLite database file path in priority order:
// 1. ORALEXAM_DB environment variable
// 2. $XDG_DATA_HOME/oralexam/oralexam.db
// 3. ~/.local/share/oralexam/oralexam.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ORALEXAM_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "oralexam", "oralexam.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
