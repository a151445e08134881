package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cinedex/cinedex"
)

// Ensure LoggingStore implements cinedex.SitemapStore.
var _ cinedex.SitemapStore = (*LoggingStore)(nil)

// LoggingStore wraps a SitemapStore with debug logging.
type LoggingStore struct {
	next   cinedex.SitemapStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next cinedex.SitemapStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// EnsureDir delegates to the wrapped store.
func (s *LoggingStore) EnsureDir() error {
	return s.next.EnsureDir()
}

// Ensure delegates to the wrapped store and logs the operation.
func (s *LoggingStore) Ensure(ctx context.Context, n int) (path string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("ensure sitemap",
			"index", n,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Ensure(ctx, n)
}

// Path delegates to the wrapped store.
func (s *LoggingStore) Path(n int) string {
	return s.next.Path(n)
}

// AllPresent delegates to the wrapped store.
func (s *LoggingStore) AllPresent() bool {
	return s.next.AllPresent()
}
