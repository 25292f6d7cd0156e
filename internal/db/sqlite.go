package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// schemaSQL is the single source of truth for the trip table schema.
//
//go:embed schema.sql
var schemaSQL string

// DB wraps an in-memory SQLite database holding one table of trips
// and is used by a single goroutine.
type DB struct {
	conn *sql.DB
}

// Open creates a private in-memory database with the trip schema
func Open(ctx context.Context) (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every new connection to ":memory:" is a separate, empty database.
	// A single connection that is never recycled keeps the table alive for
	// the lifetime of the DB. Never run a query while iterating another.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(0)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Rows are rebuilt from the source file on every load
	pragmas := []string{
		"PRAGMA journal_mode = OFF",
		"PRAGMA synchronous = OFF",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			log.Printf("Warning: failed to set %s: %v", pragma, err)
		}
	}

	db := &DB{conn: conn}
	if err := db.ensureSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// Close releases the database and every row in it
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) ensureSchema(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
