package memory

import (
	"context"
	"testing"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
	"github.com/SalmaOuardi/arxiv-research-copilot/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPapers() []core.PaperMetadata {
	return []core.PaperMetadata{
		{ArxivID: "2401.00001v1", Title: "First", PDFURL: "https://arxiv.org/pdf/2401.00001v1"},
		{ArxivID: "2401.00002v1", Title: "Second", PDFURL: "https://arxiv.org/pdf/2401.00002v1"},
	}
}

func TestCachePutGet(t *testing.T) {
	cache := NewCache()
	defer cache.Close()

	ctx := context.Background()
	key := "transformer attention mechanism::50::0"

	_, err := cache.Get(ctx, key)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, cache.Put(ctx, key, testPapers()))

	got, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, testPapers(), got)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheKeysAreLiteral(t *testing.T) {
	cache := NewCache()
	defer cache.Close()

	ctx := context.Background()

	// Keys differing only in category order are distinct entries.
	require.NoError(t, cache.Put(ctx, "q AND (cat:cs.AI OR cat:cs.LG)::10::0", testPapers()))

	_, err := cache.Get(ctx, "q AND (cat:cs.LG OR cat:cs.AI)::10::0")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCacheReplacesEntry(t *testing.T) {
	cache := NewCache()
	defer cache.Close()

	ctx := context.Background()
	key := "q::5::0"

	require.NoError(t, cache.Put(ctx, key, testPapers()))
	require.NoError(t, cache.Put(ctx, key, testPapers()[:1]))

	got, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheCopiesValues(t *testing.T) {
	cache := NewCache()
	defer cache.Close()

	ctx := context.Background()
	papers := testPapers()
	require.NoError(t, cache.Put(ctx, "k::1::0", papers))

	// Mutating the caller's slice must not affect the cached entry.
	papers[0] = core.PaperMetadata{ArxivID: "mutated"}

	got, err := cache.Get(ctx, "k::1::0")
	require.NoError(t, err)
	assert.Equal(t, "2401.00001v1", got[0].ArxivID)
}

func TestCacheClosed(t *testing.T) {
	cache := NewCache()
	require.NoError(t, cache.Close())

	ctx := context.Background()
	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, cache.Put(ctx, "k", nil), storage.ErrStorageClosed)
}
