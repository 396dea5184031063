// Package search provides metadata search over an academic paper provider
// with response caching.
//
// The Searcher type turns a free-text query plus optional category filters
// into an ordered list of core.PaperMetadata records. Responses are memoized
// through an injected storage.SearchCache keyed by the literal
// "effectiveQuery::maxResults::offset" string, so repeated queries make no
// upstream calls.
//
// Concrete providers live in subpackages; see search/arxiv for the arXiv
// Atom export API client.
package search
