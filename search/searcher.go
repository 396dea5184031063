package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
	"github.com/SalmaOuardi/arxiv-research-copilot/storage"
)

// DefaultMaxResults is the result-count limit used when none is given.
const DefaultMaxResults = 100

// Searcher provides cached metadata search over an upstream provider.
type Searcher struct {
	provider   Provider
	cache      storage.SearchCache
	maxResults int
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithMaxResults sets the default result-count limit.
// Default is DefaultMaxResults.
func WithMaxResults(n int) Option {
	return func(s *Searcher) error {
		if n > 0 {
			s.maxResults = n
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(provider Provider, cache storage.SearchCache, opts ...Option) (*Searcher, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}
	if cache == nil {
		return nil, ErrCacheRequired
	}

	s := &Searcher{
		provider:   provider,
		cache:      cache,
		maxResults: DefaultMaxResults,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// SearchOptions holds optional parameters for a search.
type SearchOptions struct {
	// MaxResults overrides the searcher's default result-count limit.
	MaxResults int

	// Categories filters results to the given category tags, combined
	// with OR semantics and appended to the query.
	Categories []string

	// Offset skips the first Offset relevance-ordered results.
	Offset int
}

// Search returns an ordered list of papers matching the query.
//
// The effective query, the result-count limit, and the offset form the cache
// key; a hit returns the stored list with zero provider calls. On a miss the
// provider is asked for maxResults+offset relevance-ordered results, the
// first offset entries are skipped, and the remainder is cached and returned.
// Provider errors propagate unmodified and cache nothing.
func (s *Searcher) Search(ctx context.Context, query string, opts *SearchOptions) ([]core.PaperMetadata, error) {
	if strings.TrimSpace(query) == "" {
		return nil, core.ErrEmptyQuery
	}
	if opts == nil {
		opts = &SearchOptions{}
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	effectiveQuery := buildEffectiveQuery(query, opts.Categories)
	key := cacheKey(effectiveQuery, maxResults, offset)

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		s.logger.Debug("search cache hit", "key", key, "papers", len(cached))
		return cached, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		// A broken cache degrades to a miss rather than failing the search.
		s.logger.Warn("search cache read failed", "key", key, "err", err)
	}

	results, err := s.provider.Results(ctx, effectiveQuery, maxResults+offset)
	if err != nil {
		return nil, err
	}
	if offset < len(results) {
		results = results[offset:]
	} else {
		results = nil
	}

	papers := make([]core.PaperMetadata, 0, len(results))
	for _, result := range results {
		papers = append(papers, mapResult(result))
	}

	if err := s.cache.Put(ctx, key, papers); err != nil {
		s.logger.Warn("search cache write failed", "key", key, "err", err)
	}

	s.logger.Info("found papers for query", "query", query, "papers", len(papers))
	return papers, nil
}

// buildEffectiveQuery appends a category filter to the query as a
// disjunction clause, e.g. "q AND (cat:cs.AI OR cat:cs.LG)".
// Category order is preserved; reordered lists are distinct queries.
func buildEffectiveQuery(query string, categories []string) string {
	if len(categories) == 0 {
		return query
	}

	clauses := make([]string, len(categories))
	for i, category := range categories {
		clauses[i] = "cat:" + category
	}
	return fmt.Sprintf("%s AND (%s)", query, strings.Join(clauses, " OR "))
}

// cacheKey builds the literal composite key for a search.
func cacheKey(effectiveQuery string, maxResults, offset int) string {
	return fmt.Sprintf("%s::%d::%d", effectiveQuery, maxResults, offset)
}

// mapResult converts a raw provider record into a PaperMetadata.
// The arXiv identifier is the last segment of the URL-like entry ID.
func mapResult(result Result) core.PaperMetadata {
	segments := strings.Split(result.EntryID, "/")
	id := segments[len(segments)-1]

	var published string
	if !result.Published.IsZero() {
		published = result.Published.UTC().Format(time.RFC3339)
	}

	return core.PaperMetadata{
		ArxivID:    id,
		Title:      result.Title,
		Authors:    result.Authors,
		Abstract:   result.Summary,
		Categories: result.Categories,
		Published:  published,
		PDFURL:     result.PDFURL,
	}
}
