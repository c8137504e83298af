package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/llimit/gateway/ent"
	"github.com/llimit/gateway/ent/enttest"
)

// newTestClient opens a private in-memory SQLite database with the
// schema migrated.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.New().String())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func newTestUser(t *testing.T, client *ent.Client) string {
	t.Helper()
	u, err := client.User.Create().
		SetID(uuid.New().String()).
		Save(context.Background())
	require.NoError(t, err)
	return u.ID
}
