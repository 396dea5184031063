// Package ingestion provides pipeline orchestration for building a local
// paper corpus.
//
// The Pipeline type manages the full workflow for a query:
//   - Searching for paper metadata
//   - Downloading the matching PDFs
//   - Extracting and chunking each file's text into JSON output
//
// File processing is performed concurrently using a worker pool. Per-paper
// download failures and per-file processing failures are collected in the
// run report rather than aborting the run.
package ingestion
