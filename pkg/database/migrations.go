package database

import (
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// schemaVersion is the migration version this binary is built for. A
// database recorded at any other non-zero version is recreated rather
// than migrated in place.
const schemaVersion = 1

// schemaVersionMatches reports whether the database can be used as-is:
// either it is brand new (no recorded version) or it sits exactly at
// this binary's schema version and is not mid-migration.
func schemaVersionMatches(db *stdsql.DB) (bool, error) {
	m, source, err := newMigrator(db)
	if err != nil {
		return false, err
	}
	defer source.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read schema version: %w", err)
	}
	return !dirty && version == schemaVersion, nil
}

// runMigrations applies all pending migrations from the embedded
// migration files.
func runMigrations(db *stdsql.DB) error {
	m, source, err := newMigrator(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Close only the source driver. m.Close() would also close the
	// shared *sql.DB the Ent client is about to use.
	if err := source.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}
	return nil
}

func newMigrator(db *stdsql.DB) (*migrate.Migrate, source.Driver, error) {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create sqlite driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, src, nil
}
