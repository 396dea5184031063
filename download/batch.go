package download

import (
	"context"
	"errors"
	"os"

	"github.com/SalmaOuardi/arxiv-research-copilot/core"
)

// FetchFailure records one paper that could not be downloaded.
type FetchFailure struct {
	ArxivID string
	Err     error
}

// BatchResult is the structured outcome of a batch download. Paths preserves
// input order restricted to papers that were downloaded or already present,
// so len(Paths) <= len(input). Failures carries the network errors the batch
// recovered from.
type BatchResult struct {
	Paths    []string
	Failures []FetchFailure
}

// BatchOptions holds optional parameters for a batch download.
type BatchOptions struct {
	// SkipExisting appends the destination path for papers whose file is
	// already on disk without invoking the fetch at all.
	SkipExisting bool
}

// DownloadAll fetches PDFs for an ordered metadata list.
//
// Papers are processed strictly in order; each real network fetch goes
// through the pacer. A *NetFetchError is logged, recorded in Failures, and
// the batch continues. Any other error aborts the remaining batch and is
// returned alongside the partial result.
//
// A nil opts defaults to skipping existing files.
func (d *Downloader) DownloadAll(ctx context.Context, papers []core.PaperMetadata, opts *BatchOptions) (*BatchResult, error) {
	if len(papers) == 0 {
		return nil, ErrNoPapers
	}
	if opts == nil {
		opts = &BatchOptions{SkipExisting: true}
	}

	result := &BatchResult{}
	for i := range papers {
		paper := &papers[i]

		if opts.SkipExisting {
			dest := d.DestPath(paper, "")
			if _, err := os.Stat(dest); err == nil {
				result.Paths = append(result.Paths, dest)
				continue
			}
		}

		path, err := d.Download(ctx, paper, "")
		if err != nil {
			var netErr *NetFetchError
			if errors.As(err, &netErr) {
				d.logger.Warn("paper download failed",
					"arxivID", paper.ArxivID, "url", paper.PDFURL, "err", err)
				result.Failures = append(result.Failures, FetchFailure{ArxivID: paper.ArxivID, Err: err})
				continue
			}
			return result, err
		}

		result.Paths = append(result.Paths, path)
	}

	d.logger.Info("batch download complete",
		"requested", len(papers), "downloaded", len(result.Paths), "failed", len(result.Failures))
	return result, nil
}
