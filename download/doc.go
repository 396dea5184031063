// Package download provides rate-limited, deduplicating retrieval of paper
// PDFs.
//
// The Downloader fetches a single paper's bytes to disk, skipping the fetch
// entirely when the destination file already exists. Real network fetches are
// serialized through a Pacer that enforces a minimum wall-clock interval
// between consecutive requests; cache hits and skip-existing paths never
// touch the pacer.
//
// DownloadAll drives the Downloader over an ordered metadata list. Network
// failures are logged and recorded per item without aborting the batch; any
// other failure (for example a filesystem write error) aborts the remaining
// batch and propagates.
package download
