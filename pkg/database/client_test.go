package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientCreatesFreshDatabase(t *testing.T) {
	cfg := Config{Path: filepath.Join(t.TempDir(), "data", "llimit.db"), PreserveOldDB: true}
	ctx := context.Background()

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()

	// Migrations applied; the domain tables exist.
	var name string
	err = client.DB().QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name='tasks'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "tasks", name)

	// Ent works over the migrated schema.
	_, err = client.User.Create().SetID("u1").Save(ctx)
	require.NoError(t, err)
}

func TestNewClientReopensMatchingDatabase(t *testing.T) {
	cfg := Config{Path: filepath.Join(t.TempDir(), "llimit.db"), PreserveOldDB: true}
	ctx := context.Background()

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	_, err = client.User.Create().SetID("u1").Save(ctx)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	client, err = NewClient(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()

	// Existing data survives a clean reopen.
	n, err := client.User.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// forgeSchemaVersion rewrites the recorded migration version so the
// database looks like it came from a different binary.
func forgeSchemaVersion(t *testing.T, path string, version int) {
	t.Helper()
	db, err := stdsql.Open("sqlite3", "file:"+path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec("UPDATE schema_migrations SET version = ?", version)
	require.NoError(t, err)
}

func TestNewClientPreservesMismatchedDatabase(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Path: filepath.Join(dir, "llimit.db"), PreserveOldDB: true}
	ctx := context.Background()

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	_, err = client.User.Create().SetID("u1").Save(ctx)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	forgeSchemaVersion(t, cfg.Path, 999)

	client, err = NewClient(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()

	// The fresh database is empty; the old one was moved aside.
	n, err := client.User.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var preserved []string
	for _, e := range entries {
		if name := e.Name(); name != "llimit.db" && strings.HasPrefix(name, "llimit-") && strings.HasSuffix(name, ".db") {
			preserved = append(preserved, name)
		}
	}
	assert.Len(t, preserved, 1, "expected exactly one preserved copy")
}

func TestNewClientDeletesMismatchedDatabase(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{Path: filepath.Join(dir, "llimit.db"), PreserveOldDB: false}
	ctx := context.Background()

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	forgeSchemaVersion(t, cfg.Path, 999)

	client, err = NewClient(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"llimit.db"}, names)
}

func TestHealth(t *testing.T) {
	cfg := Config{Path: filepath.Join(t.TempDir(), "llimit.db"), PreserveOldDB: true}
	ctx := context.Background()

	client, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()

	status, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
}
