package mock

import (
	"context"

	"github.com/cinedex/cinedex"
)

var _ cinedex.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of cinedex.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}
