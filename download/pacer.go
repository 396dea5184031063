package download

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRateInterval is the minimum spacing between consecutive network
// fetches, matching the request rate arXiv asks automated clients to hold.
const DefaultRateInterval = 3 * time.Second

// Pacer enforces a minimum wall-clock interval between consecutive outbound
// network operations.
type Pacer interface {
	// Wait blocks until the next fetch slot is available, or until the
	// context is canceled.
	Wait(ctx context.Context) error
}

// IntervalPacer spaces fetches a fixed interval apart using a token bucket
// with no burst allowance.
type IntervalPacer struct {
	limiter *rate.Limiter
}

var _ Pacer = (*IntervalPacer)(nil)

// NewIntervalPacer creates a pacer with the given interval.
// A non-positive interval falls back to DefaultRateInterval.
func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	if interval <= 0 {
		interval = DefaultRateInterval
	}

	limiter := rate.NewLimiter(rate.Every(interval), 1)
	// Consume the initial token so the very first wait also honors the
	// interval: the pacer's contract is a flat delay before every fetch.
	limiter.Allow()

	return &IntervalPacer{limiter: limiter}
}

// Wait blocks for the configured interval since the previous slot.
func (p *IntervalPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
