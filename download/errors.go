package download

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPapers is returned when an empty metadata list is given to a batch.
	ErrNoPapers = errors.New("no papers to download")

	// ErrOutputDirRequired is returned when no output directory is configured.
	ErrOutputDirRequired = errors.New("output directory required")
)

// NetFetchError is a network-level fetch failure: connection errors, request
// timeouts, interrupted transfers, or non-success HTTP statuses. The batch
// driver recovers from this kind and only this kind.
type NetFetchError struct {
	ArxivID string
	URL     string
	Err     error
}

func (e *NetFetchError) Error() string {
	return fmt.Sprintf("fetching %s from %s: %v", e.ArxivID, e.URL, e.Err)
}

func (e *NetFetchError) Unwrap() error {
	return e.Err
}
