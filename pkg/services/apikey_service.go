package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/llimit/gateway/ent"
	"github.com/llimit/gateway/ent/apikey"
)

const keyPrefix = "llimit_"

// APIKeyService manages API keys and request authentication. Keys are
// stored hashed; the plaintext leaves the service only at creation.
type APIKeyService struct {
	client *ent.Client
}

// NewAPIKeyService creates a new APIKeyService
func NewAPIKeyService(client *ent.Client) *APIKeyService {
	return &APIKeyService{client: client}
}

func generateKey() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate key material: %w", err)
	}
	return keyPrefix + base64.RawURLEncoding.EncodeToString(raw), nil
}

func hashKey(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// CreateKey mints a key for the user. The returned plaintext is shown
// to the caller once and cannot be recovered afterwards.
func (s *APIKeyService) CreateKey(ctx context.Context, userID, name string) (*ent.APIKey, string, error) {
	if name == "" {
		return nil, "", NewValidationError("name", "required")
	}

	plaintext, err := generateKey()
	if err != nil {
		return nil, "", err
	}

	key, err := s.client.APIKey.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetName(name).
		SetKeyHash(hashKey(plaintext)).
		Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create API key: %w", err)
	}
	return key, plaintext, nil
}

// ListKeys returns the user's live keys, newest first.
func (s *APIKeyService) ListKeys(ctx context.Context, userID string) ([]*ent.APIKey, error) {
	keys, err := s.client.APIKey.Query().
		Where(apikey.UserID(userID), apikey.DeletedAtIsNil()).
		Order(ent.Desc(apikey.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}
	return keys, nil
}

// DeleteKey soft-deletes a key. Deleting the key that authenticated
// the current request is refused, so a user cannot lock themselves out
// mid-session by accident.
func (s *APIKeyService) DeleteKey(ctx context.Context, userID, keyID, authenticatedKeyID string) error {
	if keyID == authenticatedKeyID {
		return ErrSelfKeyDeletion
	}

	key, err := s.client.APIKey.Get(ctx, keyID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get API key: %w", err)
	}
	if key.UserID != userID {
		return ErrForbidden
	}
	if key.DeletedAt != nil {
		return ErrNotFound
	}

	err = s.client.APIKey.UpdateOne(key).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}
	return nil
}

// Authenticate resolves a plaintext key to its live key row, or
// ErrNotFound when no such key exists.
func (s *APIKeyService) Authenticate(ctx context.Context, plaintext string) (*ent.APIKey, error) {
	key, err := s.client.APIKey.Query().
		Where(apikey.KeyHash(hashKey(plaintext)), apikey.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to authenticate API key: %w", err)
	}
	return key, nil
}

// Bootstrap creates an initial user and key when the database has no
// users at all, and logs the plaintext once so a fresh deployment is
// usable.
func (s *APIKeyService) Bootstrap(ctx context.Context) error {
	n, err := s.client.User.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if n > 0 {
		return nil
	}

	user, err := s.client.User.Create().
		SetID(uuid.New().String()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create bootstrap user: %w", err)
	}

	_, plaintext, err := s.CreateKey(ctx, user.ID, "bootstrap")
	if err != nil {
		return err
	}

	slog.Info("Bootstrap user created", "user_id", user.ID, "api_key", plaintext)
	return nil
}
