package store

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	// Postgres driver registered as "pgx".
	_ "github.com/jackc/pgx/v5/stdlib"
	// Pure Go SQLite driver (no CGO), registered as "sqlite".
	_ "modernc.org/sqlite"
)

// Dialect hides the differences between the supported databases.
// Queries are written with ? placeholders and rewritten per dialect.
type Dialect interface {
	// Name is the value accepted by --db-driver.
	Name() string

	// DriverName returns the database/sql driver name.
	DriverName() string

	// RewriteQuery converts placeholder syntax if needed.
	RewriteQuery(query string) string

	// ConfigureConnection applies connection settings after open.
	ConfigureConnection(db *sql.DB) error

	// Schema returns the DDL creating all tables.
	Schema() []string
}

// DialectFor returns the dialect for a --db-driver value.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "", "sqlite", "sqlite3":
		return sqliteDialect{}, nil
	case "postgres", "postgresql", "pgx":
		return postgresDialect{}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q (want sqlite or postgres)", name)
}

var placeholderRegexp = regexp.MustCompile(`\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, ...
func rewritePlaceholdersToNumbered(query string) string {
	n := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(string) string {
		n++
		return "$" + strconv.Itoa(n)
	})
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string       { return "sqlite" }
func (sqliteDialect) DriverName() string { return "sqlite" }

func (sqliteDialect) RewriteQuery(query string) string { return query }

// ConfigureConnection applies pragmas for single-user local use. A single
// connection keeps in-memory databases shared across queries.
func (sqliteDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (sqliteDialect) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS llm_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at    TIMESTAMP NOT NULL,
			provider      TEXT NOT NULL,
			model         TEXT NOT NULL,
			purpose       TEXT NOT NULL,
			input_tokens  INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			latency_ms    INTEGER NOT NULL DEFAULT 0,
			success       BOOLEAN NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			request_body  TEXT NOT NULL DEFAULT '',
			response_body TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS exam_sessions (
			id           TEXT PRIMARY KEY,
			student_name TEXT NOT NULL,
			student_key  TEXT NOT NULL,
			domain       TEXT NOT NULL,
			started_at   TIMESTAMP NOT NULL,
			questions    INTEGER NOT NULL,
			total_score  REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS exam_records (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id     TEXT NOT NULL REFERENCES exam_sessions(id) ON DELETE CASCADE,
			position       INTEGER NOT NULL,
			question       TEXT NOT NULL,
			student_answer TEXT NOT NULL,
			evaluation     TEXT NOT NULL,
			feedback       TEXT NOT NULL,
			score          REAL NOT NULL,
			difficulty     TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_exam_sessions_student ON exam_sessions(student_key)`,
	}
}

type postgresDialect struct{}

func (postgresDialect) Name() string       { return "postgres" }
func (postgresDialect) DriverName() string { return "pgx" }

func (postgresDialect) RewriteQuery(query string) string {
	return rewritePlaceholdersToNumbered(query)
}

func (postgresDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
	return nil
}

func (postgresDialect) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS llm_events (
			id            BIGSERIAL PRIMARY KEY,
			created_at    TIMESTAMPTZ NOT NULL,
			provider      TEXT NOT NULL,
			model         TEXT NOT NULL,
			purpose       TEXT NOT NULL,
			input_tokens  INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			latency_ms    BIGINT NOT NULL DEFAULT 0,
			success       BOOLEAN NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			request_body  TEXT NOT NULL DEFAULT '',
			response_body TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS exam_sessions (
			id           TEXT PRIMARY KEY,
			student_name TEXT NOT NULL,
			student_key  TEXT NOT NULL,
			domain       TEXT NOT NULL,
			started_at   TIMESTAMPTZ NOT NULL,
			questions    INTEGER NOT NULL,
			total_score  DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS exam_records (
			id             BIGSERIAL PRIMARY KEY,
			session_id     TEXT NOT NULL REFERENCES exam_sessions(id) ON DELETE CASCADE,
			position       INTEGER NOT NULL,
			question       TEXT NOT NULL,
			student_answer TEXT NOT NULL,
			evaluation     TEXT NOT NULL,
			feedback       TEXT NOT NULL,
			score          DOUBLE PRECISION NOT NULL,
			difficulty     TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_exam_sessions_student ON exam_sessions(student_key)`,
	}
}
