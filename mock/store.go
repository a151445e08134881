package mock

import (
	"context"

	"github.com/cinedex/cinedex"
)

var _ cinedex.SitemapStore = (*SitemapStore)(nil)

// SitemapStore is a mock implementation of cinedex.SitemapStore.
type SitemapStore struct {
	EnsureDirFn  func() error
	EnsureFn     func(ctx context.Context, n int) (string, error)
	PathFn       func(n int) string
	AllPresentFn func() bool
}

func (s *SitemapStore) EnsureDir() error {
	if s.EnsureDirFn == nil {
		return nil
	}
	return s.EnsureDirFn()
}

func (s *SitemapStore) Ensure(ctx context.Context, n int) (string, error) {
	return s.EnsureFn(ctx, n)
}

func (s *SitemapStore) Path(n int) string {
	return s.PathFn(n)
}

func (s *SitemapStore) AllPresent() bool {
	return s.AllPresentFn()
}
