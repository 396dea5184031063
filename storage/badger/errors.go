package badger

import "errors"

var (
	// ErrBackendRequired is returned when a backend is not provided.
	ErrBackendRequired = errors.New("backend required")

	// ErrNegativeTTL is returned when a negative TTL is configured.
	ErrNegativeTTL = errors.New("ttl cannot be negative")
)
