package build

import (
	"context"

	"github.com/cinedex/cinedex"
	"golang.org/x/time/rate"
)

var _ cinedex.Limiter = (*Throttle)(nil)

// Throttle paces requests against the sitemap host using a token bucket
// with a burst of 1, so successive network attempts are spaced at least
// 1/rps apart regardless of their outcome.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a Throttle allowing rps requests per second.
func NewThrottle(rps float64) *Throttle {
	return &Throttle{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the next request is allowed.
// Returns an error if the context is canceled before then.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
