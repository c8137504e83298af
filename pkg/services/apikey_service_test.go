package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateKeyAndAuthenticate(t *testing.T) {
	client := newTestClient(t)
	svc := NewAPIKeyService(client)
	userID := newTestUser(t, client)
	ctx := context.Background()

	key, plaintext, err := svc.CreateKey(ctx, userID, "laptop")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plaintext, "llimit_"))
	assert.NotContains(t, key.KeyHash, plaintext, "plaintext must not be stored")
	assert.Equal(t, "laptop", key.Name)

	resolved, err := svc.Authenticate(ctx, plaintext)
	require.NoError(t, err)
	assert.Equal(t, key.ID, resolved.ID)
	assert.Equal(t, userID, resolved.UserID)
}

func TestCreateKeyRequiresName(t *testing.T) {
	client := newTestClient(t)
	svc := NewAPIKeyService(client)
	userID := newTestUser(t, client)

	_, _, err := svc.CreateKey(context.Background(), userID, "")
	assert.True(t, IsValidationError(err))
}

func TestAuthenticateUnknownKey(t *testing.T) {
	client := newTestClient(t)
	svc := NewAPIKeyService(client)

	_, err := svc.Authenticate(context.Background(), "llimit_not-a-real-key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteKey(t *testing.T) {
	client := newTestClient(t)
	svc := NewAPIKeyService(client)
	userID := newTestUser(t, client)
	ctx := context.Background()

	authKey, _, err := svc.CreateKey(ctx, userID, "auth")
	require.NoError(t, err)
	victim, victimPlaintext, err := svc.CreateKey(ctx, userID, "old laptop")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteKey(ctx, userID, victim.ID, authKey.ID))

	// Deleted keys no longer authenticate and disappear from listings.
	_, err = svc.Authenticate(ctx, victimPlaintext)
	assert.ErrorIs(t, err, ErrNotFound)
	keys, err := svc.ListKeys(ctx, userID)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, authKey.ID, keys[0].ID)

	// Deleting again reports not found.
	assert.ErrorIs(t, svc.DeleteKey(ctx, userID, victim.ID, authKey.ID), ErrNotFound)
}

func TestDeleteKeyRefusesSelfDeletion(t *testing.T) {
	client := newTestClient(t)
	svc := NewAPIKeyService(client)
	userID := newTestUser(t, client)
	ctx := context.Background()

	key, _, err := svc.CreateKey(ctx, userID, "only key")
	require.NoError(t, err)

	err = svc.DeleteKey(ctx, userID, key.ID, key.ID)
	assert.ErrorIs(t, err, ErrSelfKeyDeletion)
}

func TestDeleteKeyEnforcesOwnership(t *testing.T) {
	client := newTestClient(t)
	svc := NewAPIKeyService(client)
	owner := newTestUser(t, client)
	other := newTestUser(t, client)
	ctx := context.Background()

	key, _, err := svc.CreateKey(ctx, owner, "owned")
	require.NoError(t, err)

	err = svc.DeleteKey(ctx, other, key.ID, "some-other-key")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBootstrap(t *testing.T) {
	client := newTestClient(t)
	svc := NewAPIKeyService(client)
	ctx := context.Background()

	require.NoError(t, svc.Bootstrap(ctx))

	users, err := client.User.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	keys, err := svc.ListKeys(ctx, users[0].ID)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "bootstrap", keys[0].Name)

	// A populated database is left alone.
	require.NoError(t, svc.Bootstrap(ctx))
	n, err := client.User.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
