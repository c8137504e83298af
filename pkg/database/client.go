// Package database provides the SQLite client, schema versioning, and
// migration utilities.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/mattn/go-sqlite3" // Register sqlite3 driver for database/sql

	"github.com/llimit/gateway/ent"
)

// Client wraps the Ent client and provides access to the underlying
// database.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB returns the underlying database connection for health checks and
// direct queries.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// NewClientFromEnt wraps an existing Ent client (useful for testing).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{
		Client: entClient,
		db:     db,
	}
}

// NewClient opens the SQLite database, reconciles its schema version,
// and applies pending migrations. A database recorded at a different
// schema version than this binary expects is moved aside (or deleted,
// per config) and recreated from scratch.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := openSQLite(ctx, cfg.Path)
	if err != nil {
		return nil, err
	}

	ok, err := schemaVersionMatches(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if !ok {
		_ = db.Close()
		if err := discardDatabase(cfg); err != nil {
			return nil, err
		}
		db, err = openSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	entClient := ent.NewClient(ent.Driver(drv))

	return &Client{
		Client: entClient,
		db:     db,
	}, nil
}

func openSQLite(ctx context.Context, path string) (*stdsql.DB, error) {
	// _fk=1 turns on foreign key enforcement, which SQLite leaves off
	// by default.
	db, err := stdsql.Open("sqlite3", fmt.Sprintf("file:%s?_fk=1", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite serializes writers; a single connection avoids
	// SQLITE_BUSY under concurrent access.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// discardDatabase moves the database file aside with a timestamp
// suffix, or deletes it when preservation is off.
func discardDatabase(cfg Config) error {
	if !cfg.PreserveOldDB {
		slog.Warn("Schema version mismatch, deleting database", "path", cfg.Path)
		if err := os.Remove(cfg.Path); err != nil {
			return fmt.Errorf("failed to delete outdated database: %w", err)
		}
		return nil
	}

	base := strings.TrimSuffix(cfg.Path, filepath.Ext(cfg.Path))
	renamed := fmt.Sprintf("%s-%s.db", base, time.Now().Format("20060102150405"))
	slog.Warn("Schema version mismatch, preserving old database",
		"path", cfg.Path,
		"renamed_to", renamed)
	if err := os.Rename(cfg.Path, renamed); err != nil {
		return fmt.Errorf("failed to move outdated database aside: %w", err)
	}
	return nil
}
