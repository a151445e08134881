package slog

import (
	"log/slog"
	"time"

	"github.com/cinedex/cinedex"
)

// Ensure LoggingSearcher implements cinedex.Searcher.
var _ cinedex.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   cinedex.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next cinedex.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(query string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"token", cinedex.Normalize(query),
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(query)
}
