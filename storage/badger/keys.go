package badger

import (
	"fmt"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
)

// Key prefixes for different data types
const (
	searchCachePrefix = "seacache"
)

// makeSearchKey generates a fixed-width key for a cached search response.
// The composite cache key string is digested so arbitrarily long queries
// produce uniform keys; the digest preserves the literal key semantics,
// including sensitivity to category ordering.
func makeSearchKey(cacheKey string) []byte {
	return []byte(fmt.Sprintf("%s:%d", searchCachePrefix, core.IDFromContent(cacheKey)))
}
