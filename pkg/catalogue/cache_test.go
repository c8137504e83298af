package catalogue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llimit/gateway/pkg/models"
)

type fakeFetcher struct {
	calls  int
	models []models.ModelDescription
	err    error
}

func (f *fakeFetcher) FetchModels(ctx context.Context) ([]models.ModelDescription, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.models, nil
}

func testModels() []models.ModelDescription {
	return []models.ModelDescription{
		{ID: "openai/gpt-5", Name: "GPT-5", Provider: "openai"},
		{ID: "anthropic/claude-sonnet-4.5", Name: "Claude Sonnet 4.5", Provider: "anthropic"},
		{ID: "openai/gpt-5-mini", Name: "GPT-5 Mini", Provider: "openai"},
	}
}

func TestAllFetchesOnceWithinTTL(t *testing.T) {
	fetcher := &fakeFetcher{models: testModels()}
	cache := New(fetcher, time.Hour)

	first, err := cache.All(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, first, 3)

	second, err := cache.All(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, second, 3)
	assert.Equal(t, 1, fetcher.calls)
}

func TestAllRefetchesAfterTTL(t *testing.T) {
	fetcher := &fakeFetcher{models: testModels()}
	cache := New(fetcher, time.Hour)

	now := time.Now()
	cache.now = func() time.Time { return now }

	_, err := cache.All(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)

	now = now.Add(2 * time.Hour)
	_, err = cache.All(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestAllProviderFilter(t *testing.T) {
	fetcher := &fakeFetcher{models: testModels()}
	cache := New(fetcher, time.Hour)

	openai, err := cache.All(context.Background(), "openai")
	require.NoError(t, err)
	require.Len(t, openai, 2)
	for _, m := range openai {
		assert.Equal(t, "openai", m.Provider)
	}

	// Filter is applied on the cached snapshot, not refetched.
	anthropic, err := cache.All(context.Background(), "anthropic")
	require.NoError(t, err)
	assert.Len(t, anthropic, 1)
	assert.Equal(t, 1, fetcher.calls)
}

func TestByID(t *testing.T) {
	fetcher := &fakeFetcher{models: testModels()}
	cache := New(fetcher, time.Hour)

	m, err := cache.ByID(context.Background(), "openai/gpt-5")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "GPT-5", m.Name)

	missing, err := cache.ByID(context.Background(), "nope/unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFetchErrorWithoutSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("upstream down")}
	cache := New(fetcher, time.Hour)

	_, err := cache.All(context.Background(), "")
	assert.Error(t, err)
}

func TestFetchErrorServesStaleSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{models: testModels()}
	cache := New(fetcher, time.Hour)

	now := time.Now()
	cache.now = func() time.Time { return now }

	_, err := cache.All(context.Background(), "")
	require.NoError(t, err)

	fetcher.err = errors.New("upstream down")
	now = now.Add(2 * time.Hour)

	stale, err := cache.All(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, stale, 3)
}
