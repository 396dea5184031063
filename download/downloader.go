package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
)

// defaultRequestTimeout bounds a single PDF transfer.
const defaultRequestTimeout = 60 * time.Second

// Downloader retrieves paper PDFs into an output directory.
// A fetch is skipped entirely when the destination file already exists, so
// repeated downloads of the same paper are idempotent and free.
type Downloader struct {
	outputDir  string
	pacer      Pacer
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Downloader.
type Option func(*Downloader) error

// WithPacer sets the pacer applied before each real network fetch.
// Default is an IntervalPacer with DefaultRateInterval.
func WithPacer(pacer Pacer) Option {
	return func(d *Downloader) error {
		if pacer != nil {
			d.pacer = pacer
		}
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(d *Downloader) error {
		if httpClient != nil {
			d.httpClient = httpClient
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Downloader) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// NewDownloader creates a downloader that stores PDFs under outputDir,
// creating the directory if needed.
func NewDownloader(outputDir string, opts ...Option) (*Downloader, error) {
	if outputDir == "" {
		return nil, ErrOutputDirRequired
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, err
	}

	d := &Downloader{
		outputDir:  outputDir,
		pacer:      NewIntervalPacer(DefaultRateInterval),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// OutputDir returns the directory PDFs are stored under.
func (d *Downloader) OutputDir() string {
	return d.outputDir
}

// DestPath returns the destination path for a paper with an optional custom
// filename. An empty filename defaults to "{arxivID}.pdf".
func (d *Downloader) DestPath(paper *core.PaperMetadata, filename string) string {
	if filename == "" {
		filename = paper.Filename()
	}
	return filepath.Join(d.outputDir, filename)
}

// Download fetches a single paper's PDF and returns the destination path.
//
// If the destination already exists the path is returned immediately with no
// network call and no pacer wait. Otherwise the fetch waits for a pacer slot,
// streams the body to a temporary file, and renames it into place so a
// partial transfer never leaves a truncated destination behind.
//
// Network failures are returned as *NetFetchError; filesystem failures are
// returned as plain errors.
func (d *Downloader) Download(ctx context.Context, paper *core.PaperMetadata, filename string) (string, error) {
	if err := core.ValidatePaperMetadata(paper); err != nil {
		return "", err
	}

	dest := d.DestPath(paper, filename)
	if _, err := os.Stat(dest); err == nil {
		d.logger.Debug("paper already downloaded", "arxivID", paper.ArxivID, "path", dest)
		return dest, nil
	}

	if err := d.pacer.Wait(ctx); err != nil {
		return "", err
	}

	d.logger.Info("downloading paper", "arxivID", paper.ArxivID, "path", dest)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, paper.PDFURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", &NetFetchError{ArxivID: paper.ArxivID, URL: paper.PDFURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &NetFetchError{
			ArxivID: paper.ArxivID,
			URL:     paper.PDFURL,
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	return dest, d.writeBody(paper, dest, resp.Body)
}

// writeBody streams the response body into dest via a same-directory temp
// file, renaming on success.
func (d *Downloader) writeBody(paper *core.PaperMetadata, dest string, body io.Reader) error {
	tmp := dest + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(tmp)

		// Write-side failures are resource errors and must abort a batch;
		// everything else on this path is an interrupted transfer.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return fmt.Errorf("writing %s: %w", tmp, err)
		}
		return &NetFetchError{ArxivID: paper.ArxivID, URL: paper.PDFURL, Err: err}
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, dest)
}
