package badger

import (
	"context"
	"testing"
	"time"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
	"github.com/SalmaOuardi/arxiv-research-copilot/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPapers() []core.PaperMetadata {
	return []core.PaperMetadata{
		{
			ArxivID:    "2401.00001v1",
			Title:      "Test Paper",
			Authors:    []string{"Alice", "Bob"},
			Abstract:   "A test abstract.",
			Categories: []string{"cs.AI"},
			Published:  "2024-01-01T00:00:00Z",
			PDFURL:     "https://arxiv.org/pdf/2401.00001v1",
		},
	}
}

func TestNewSearchCache(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	t.Run("valid configuration", func(t *testing.T) {
		cache, err := NewSearchCache(backend)
		require.NoError(t, err)
		assert.NotNil(t, cache)
	})

	t.Run("nil backend", func(t *testing.T) {
		_, err := NewSearchCache(nil)
		assert.Equal(t, ErrBackendRequired, err)
	})

	t.Run("negative ttl", func(t *testing.T) {
		_, err := NewSearchCache(backend, WithTTL(-time.Second))
		assert.Equal(t, ErrNegativeTTL, err)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		cache, err := NewSearchCache(backend, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, cache)
	})
}

func TestSearchCachePutGet(t *testing.T) {
	cache, backend, err := NewMemorySearchCache()
	require.NoError(t, err)
	defer func() {
		cache.Close()
		backend.Close()
	}()

	ctx := context.Background()
	key := "transformer attention mechanism::50::0"

	_, err = cache.Get(ctx, key)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, cache.Put(ctx, key, testPapers()))

	got, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, testPapers(), got)
}

func TestSearchCacheLiteralKeys(t *testing.T) {
	cache, backend, err := NewMemorySearchCache()
	require.NoError(t, err)
	defer func() {
		cache.Close()
		backend.Close()
	}()

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, "q AND (cat:cs.AI OR cat:cs.LG)::10::0", testPapers()))

	// Reordered category lists are distinct keys.
	_, err = cache.Get(ctx, "q AND (cat:cs.LG OR cat:cs.AI)::10::0")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSearchCacheTTLExpiry(t *testing.T) {
	cache, backend, err := NewMemorySearchCache(WithTTL(50 * time.Millisecond))
	require.NoError(t, err)
	defer func() {
		cache.Close()
		backend.Close()
	}()

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, "q::5::0", testPapers()))

	got, err := cache.Get(ctx, "q::5::0")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	time.Sleep(100 * time.Millisecond)

	_, err = cache.Get(ctx, "q::5::0")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSearchCacheClosedBackend(t *testing.T) {
	cache, backend, err := NewMemorySearchCache()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	ctx := context.Background()
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, cache.Put(ctx, "k", nil), storage.ErrStorageClosed)
}
