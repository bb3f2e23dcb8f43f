// Package sqlite provides the SQLite dataset container for harvested
// records: forum topics with their posts, wiki pages, and image references.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait up to 5 seconds on lock contention instead of failing with
	// "database is locked".
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL gives much faster batch inserts for file-based databases at the
	// cost of -wal/-shm sidecar files. Not supported for :memory:.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS topics (
			id TEXT PRIMARY KEY,
			topic_id INTEGER,
			post_id INTEGER,
			title TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			section TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			author_id INTEGER,
			timestamp TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_topics_topic_id ON topics(topic_id);
		CREATE INDEX IF NOT EXISTS idx_topics_section ON topics(section);

		CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			topic_row_id TEXT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
			post_id INTEGER,
			author TEXT NOT NULL DEFAULT '',
			author_id INTEGER,
			date TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			quotes TEXT NOT NULL DEFAULT '[]',
			position INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_posts_topic_row_id ON posts(topic_row_id);

		CREATE TABLE IF NOT EXISTS wiki_pages (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			categories TEXT NOT NULL DEFAULT '[]',
			links TEXT NOT NULL DEFAULT '[]',
			content TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_wiki_pages_title ON wiki_pages(title);

		CREATE TABLE IF NOT EXISTS images (
			id TEXT PRIMARY KEY,
			image_name TEXT NOT NULL UNIQUE,
			extension TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			src TEXT NOT NULL DEFAULT '',
			alt TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL DEFAULT '',
			source_file TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
	`

	_, err := db.db.Exec(schema)
	return err
}
