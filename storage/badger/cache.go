package badger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
	"github.com/SalmaOuardi/arxiv-research-copilot/storage"
)

// SearchCache is a BadgerDB-backed storage.SearchCache. Entries expire after
// the configured TTL, so the cache is bounded in time rather than growing
// without limit for the life of the process.
type SearchCache struct {
	backend *Backend
	ttl     time.Duration
	logger  *slog.Logger
}

var _ storage.SearchCache = (*SearchCache)(nil)

// Option configures a SearchCache.
type Option func(*SearchCache) error

// WithTTL sets the lifetime of cached entries.
// A zero TTL keeps entries until the backend is closed or dropped.
// Default is 24 hours.
func WithTTL(ttl time.Duration) Option {
	return func(c *SearchCache) error {
		if ttl < 0 {
			return ErrNegativeTTL
		}
		c.ttl = ttl
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *SearchCache) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewSearchCache creates a search cache on top of an open backend.
func NewSearchCache(backend *Backend, opts ...Option) (*SearchCache, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}

	c := &SearchCache{
		backend: backend,
		ttl:     24 * time.Hour,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Get retrieves the cached result list for key.
// Expired entries read as storage.ErrNotFound.
func (c *SearchCache) Get(_ context.Context, key string) ([]core.PaperMetadata, error) {
	if c.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}

	var data []byte
	err := c.backend.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSearchKey(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	return storage.UnmarshalPapers(data)
}

// Put stores the result list under key, replacing any previous entry.
func (c *SearchCache) Put(_ context.Context, key string, papers []core.PaperMetadata) error {
	if c.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	data, err := storage.MarshalPapers(papers)
	if err != nil {
		return err
	}

	return c.backend.Update(func(tx *badger.Txn) error {
		entry := badger.NewEntry(makeSearchKey(key), data)
		if c.ttl > 0 {
			entry = entry.WithTTL(c.ttl)
		}
		return tx.SetEntry(entry)
	})
}

// Close is a no-op; the backend owns the database lifecycle and may be
// shared with other repositories.
func (c *SearchCache) Close() error {
	return nil
}
