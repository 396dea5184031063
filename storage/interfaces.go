package storage

import (
	"context"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
)

// SearchCache memoizes metadata-search responses by their composite query key.
// The key is an opaque string owned by the search layer; implementations must
// treat it literally and never normalize it.
type SearchCache interface {
	// Get retrieves the cached result list for key.
	// Returns ErrNotFound if the key has no live entry.
	Get(ctx context.Context, key string) ([]core.PaperMetadata, error)

	// Put stores the result list under key, replacing any previous entry.
	Put(ctx context.Context, key string, papers []core.PaperMetadata) error

	// Close closes the cache backend and releases resources.
	Close() error
}
