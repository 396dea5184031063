package search

import (
	"context"
	"time"
)

// Result is a raw metadata record as returned by an upstream provider,
// before mapping into core.PaperMetadata.
type Result struct {
	// EntryID is the provider's URL-like identifier,
	// e.g. "http://arxiv.org/abs/2401.00001v1".
	EntryID string

	// Title is the paper title.
	Title string

	// Summary is the abstract text.
	Summary string

	// Authors lists author names in provider order.
	Authors []string

	// Categories are the provider's category tags.
	Categories []string

	// Published is the publication timestamp.
	Published time.Time

	// PDFURL is the location of the PDF document.
	PDFURL string
}

// Provider is an upstream metadata search provider.
type Provider interface {
	// Results returns up to maxResults records matching the query,
	// ordered by relevance as ranked by the provider.
	Results(ctx context.Context, query string, maxResults int) ([]Result, error)
}
