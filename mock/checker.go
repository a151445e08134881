package mock

import (
	"context"

	"github.com/cinedex/cinedex"
)

var _ cinedex.PageChecker = (*PageChecker)(nil)

// PageChecker is a mock implementation of cinedex.PageChecker.
type PageChecker struct {
	CheckFn func(ctx context.Context, url, text string) (bool, error)
	CloseFn func() error
}

func (c *PageChecker) Check(ctx context.Context, url, text string) (bool, error) {
	return c.CheckFn(ctx, url, text)
}

func (c *PageChecker) Close() error {
	if c.CloseFn == nil {
		return nil
	}
	return c.CloseFn()
}
