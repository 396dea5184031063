// Package memory provides an unbounded in-process SearchCache backed by a map.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
	"github.com/SalmaOuardi/arxiv-research-copilot/storage"
)

// Cache is a map-backed SearchCache. Entries are never evicted; the cache
// lives as long as the owning process. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]core.PaperMetadata
	closed  bool
}

var _ storage.SearchCache = (*Cache)(nil)

// NewCache creates an empty in-memory search cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string][]core.PaperMetadata),
	}
}

// Get retrieves the cached result list for key.
func (c *Cache) Get(_ context.Context, key string) ([]core.PaperMetadata, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, storage.ErrStorageClosed
	}

	papers, ok := c.entries[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return slices.Clone(papers), nil
}

// Put stores the result list under key, replacing any previous entry.
func (c *Cache) Put(_ context.Context, key string, papers []core.PaperMetadata) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return storage.ErrStorageClosed
	}

	c.entries[key] = slices.Clone(papers)
	return nil
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close marks the cache as closed and drops all entries.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.entries = nil
	return nil
}
