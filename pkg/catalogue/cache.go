// Package catalogue caches the upstream model catalogue with a TTL so
// model lookups never hit the provider on the hot path.
package catalogue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/llimit/gateway/pkg/models"
)

// DefaultTTL is how long a fetched catalogue stays fresh.
const DefaultTTL = 24 * time.Hour

// Fetcher retrieves the full catalogue from the provider. Implemented
// by llm.Client.
type Fetcher interface {
	FetchModels(ctx context.Context) ([]models.ModelDescription, error)
}

// Cache is a fetch-once-then-serve catalogue cache. A single refetch
// is in flight at a time; concurrent callers wait for it.
type Cache struct {
	fetcher Fetcher
	ttl     time.Duration
	now     func() time.Time

	mu        sync.Mutex
	snapshot  []models.ModelDescription
	byID      map[string]*models.ModelDescription
	fetchedAt time.Time
}

// New creates a cache over the given fetcher. A non-positive ttl falls
// back to DefaultTTL.
func New(fetcher Fetcher, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{fetcher: fetcher, ttl: ttl, now: time.Now}
}

// ensureFresh refetches when the snapshot is missing or expired. Called
// with c.mu held.
func (c *Cache) ensureFresh(ctx context.Context) error {
	if c.snapshot != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return nil
	}

	fetched, err := c.fetcher.FetchModels(ctx)
	if err != nil {
		if c.snapshot != nil {
			// Serve the stale snapshot rather than failing the caller.
			slog.Warn("Model catalogue refresh failed, serving stale data", "error", err)
			return nil
		}
		return fmt.Errorf("loading model catalogue: %w", err)
	}

	byID := make(map[string]*models.ModelDescription, len(fetched))
	for i := range fetched {
		byID[fetched[i].ID] = &fetched[i]
	}
	c.snapshot = fetched
	c.byID = byID
	c.fetchedAt = c.now()
	slog.Info("Model catalogue refreshed", "models", len(fetched))
	return nil
}

// All returns the cached catalogue, optionally filtered by provider.
// The filter is applied on read so every provider view shares one
// fetch.
func (c *Cache) All(ctx context.Context, provider string) ([]models.ModelDescription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureFresh(ctx); err != nil {
		return nil, err
	}
	if provider == "" {
		out := make([]models.ModelDescription, len(c.snapshot))
		copy(out, c.snapshot)
		return out, nil
	}

	var out []models.ModelDescription
	for _, m := range c.snapshot {
		if m.Provider == provider {
			out = append(out, m)
		}
	}
	return out, nil
}

// ByID returns the model with the given ID, or nil when the catalogue
// has no such model.
func (c *Cache) ByID(ctx context.Context, id string) (*models.ModelDescription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureFresh(ctx); err != nil {
		return nil, err
	}
	m, ok := c.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}
