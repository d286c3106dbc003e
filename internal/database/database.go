package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn *sql.DB
	path string
}

func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, path: path}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Path() string {
	return db.path
}

func (db *DB) Exec(query string, args ...any) (sql.Result, error) {
	return db.conn.Exec(query, args...)
}

func (db *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

func (db *DB) QueryRow(query string, args ...any) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

func (db *DB) Begin() (*sql.Tx, error) {
	return db.conn.Begin()
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY,
		input_path TEXT NOT NULL,
		idf_scope TEXT NOT NULL,
		top_k INTEGER NOT NULL,
		document_count INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS run_categories (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		category TEXT NOT NULL,
		document_count INTEGER NOT NULL,
		PRIMARY KEY (run_id, position),
		UNIQUE (run_id, category)
	);

	CREATE TABLE IF NOT EXISTS run_terms (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		category TEXT NOT NULL,
		rank INTEGER NOT NULL,
		term TEXT NOT NULL,
		score REAL NOT NULL,
		PRIMARY KEY (run_id, category, rank)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_run_terms_term ON run_terms(term);
	`

	_, err := db.conn.Exec(schema)
	return err
}
