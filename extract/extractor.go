package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
)

// Extractor converts PDF files into a single normalized text string.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor creates a PDF text extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract reads the PDF at path and returns its normalized text.
//
// pages is an optional allow-list of zero-based page indices; nil means all
// pages. Page text is joined with single newlines in page order. The file
// handle is closed before returning, whether or not extraction succeeds.
func (e *Extractor) Extract(ctx context.Context, path string, pages []int) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrPDFNotFound, path)
		}
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	docs, err := documentloaders.NewPDF(f, info.Size()).Load(ctx)
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", path, err)
	}

	contents := make([]string, 0, len(docs))
	for _, doc := range docs {
		contents = append(contents, doc.PageContent)
	}

	e.logger.Debug("extracted pdf", "path", path, "pages", len(contents))
	return Normalize(composePages(contents, pages)), nil
}

// composePages joins the selected page texts with single newlines.
// A nil allow-list selects every page; indices are zero-based.
func composePages(contents []string, pages []int) string {
	if pages == nil {
		return strings.Join(contents, "\n")
	}

	selected := make([]string, 0, len(pages))
	for i, content := range contents {
		if slices.Contains(pages, i) {
			selected = append(selected, content)
		}
	}
	return strings.Join(selected, "\n")
}

var (
	// hyphenBreakRE matches a hyphenation artifact: a hyphen at a line
	// break directly followed by the continuation of the word.
	hyphenBreakRE = regexp.MustCompile(`-\n(\w)`)

	// excessNewlinesRE matches runs of three or more newlines.
	excessNewlinesRE = regexp.MustCompile(`\n{3,}`)
)

// Normalize repairs hyphenation across line breaks, then collapses excess
// blank lines down to single paragraph breaks. Applied in that order so
// rejoined words cannot re-create newline runs.
func Normalize(text string) string {
	text = hyphenBreakRE.ReplaceAllString(text, "$1")
	return excessNewlinesRE.ReplaceAllString(text, "\n\n")
}
