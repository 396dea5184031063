package ingestion

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/SalmaOuardi/arxiv-research-copilot/chunker"
	"github.com/SalmaOuardi/arxiv-research-copilot/core"
	"github.com/SalmaOuardi/arxiv-research-copilot/download"
	"github.com/SalmaOuardi/arxiv-research-copilot/search"
)

// Searcher finds paper metadata for a query.
type Searcher interface {
	Search(ctx context.Context, query string, opts *search.SearchOptions) ([]core.PaperMetadata, error)
}

// Fetcher downloads paper PDFs to local storage.
type Fetcher interface {
	DownloadAll(ctx context.Context, papers []core.PaperMetadata, opts *download.BatchOptions) (*download.BatchResult, error)
}

// Extractor converts a PDF file into normalized text.
type Extractor interface {
	Extract(ctx context.Context, path string, pages []int) (string, error)
}

// Pipeline orchestrates the full ingestion flow: search, download, text
// extraction, and chunking. Per-file processing runs on a worker pool.
type Pipeline struct {
	searcher     Searcher
	fetcher      Fetcher
	extractor    Extractor
	splitter     *chunker.Splitter
	pool         *ants.Pool
	processedDir string
	logger       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent file processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		if p.pool != nil {
			p.pool.Release()
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an ingestion pipeline. Chunk output is written to
// processedDir, which is created if it does not exist.
func NewPipeline(
	searcher Searcher,
	fetcher Fetcher,
	extractor Extractor,
	splitter *chunker.Splitter,
	processedDir string,
	opts ...Option,
) (*Pipeline, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	if fetcher == nil {
		return nil, ErrFetcherRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if splitter == nil {
		return nil, ErrSplitterRequired
	}
	if processedDir == "" {
		return nil, ErrProcessedDirRequired
	}
	if err := os.MkdirAll(processedDir, 0o755); err != nil {
		return nil, err
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		searcher:     searcher,
		fetcher:      fetcher,
		extractor:    extractor,
		splitter:     splitter,
		pool:         pool,
		processedDir: processedDir,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// RunOptions holds optional parameters for a pipeline run.
type RunOptions struct {
	MaxResults int      // Per-run result cap; 0 uses the searcher's default
	Categories []string // Optional arXiv category filters
	Offset     int      // Number of leading results to skip
}

// Report summarizes a pipeline run.
type Report struct {
	Papers          []core.PaperMetadata
	Downloaded      []string
	FetchFailures   []download.FetchFailure
	Processed       []string
	ProcessFailures []ProcessFailure
}

// Run executes the full pipeline for a query: search for papers, download
// their PDFs, then extract and chunk each downloaded file concurrently.
//
// Per-paper download failures and per-file processing failures are recorded
// in the report without aborting the run. Run returns an error only when
// the search itself fails or the batch download aborts.
func (p *Pipeline) Run(ctx context.Context, query string, opts *RunOptions) (*Report, error) {
	if opts == nil {
		opts = &RunOptions{}
	}

	papers, err := p.searcher.Search(ctx, query, &search.SearchOptions{
		MaxResults: opts.MaxResults,
		Categories: opts.Categories,
		Offset:     opts.Offset,
	})
	if err != nil {
		return nil, err
	}

	report := &Report{Papers: papers}
	if len(papers) == 0 {
		p.logger.Info("no papers found", "query", query)
		return report, nil
	}

	batch, err := p.fetcher.DownloadAll(ctx, papers, &download.BatchOptions{SkipExisting: true})
	if err != nil {
		return nil, err
	}
	report.Downloaded = batch.Paths
	report.FetchFailures = batch.Failures

	report.Processed, report.ProcessFailures = p.ProcessFiles(ctx, batch.Paths)

	p.logger.Info("pipeline run complete",
		"query", query,
		"papers", len(papers),
		"downloaded", len(report.Downloaded),
		"processed", len(report.Processed),
		"failures", len(report.FetchFailures)+len(report.ProcessFailures))
	return report, nil
}

// ProcessFiles extracts and chunks each file on the worker pool and collects
// the outcomes. It can be used directly to reprocess already-downloaded PDFs
// without a search step. Submission falls back to inline execution if the
// pool has been released.
func (p *Pipeline) ProcessFiles(ctx context.Context, paths []string) ([]string, []ProcessFailure) {
	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		processed []string
		failures  []ProcessFailure
	)

	for _, path := range paths {
		wg.Add(1)
		task := func() {
			defer wg.Done()

			outPath, err := p.ProcessFile(ctx, path)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Warn("processing failed", "path", path, "err", err)
				failures = append(failures, ProcessFailure{Path: path, Err: err})
				return
			}
			processed = append(processed, outPath)
		}
		if err := p.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	return processed, failures
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
