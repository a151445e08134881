package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/cinedex/cinedex"
)

// Ensure LoggingChecker implements cinedex.PageChecker.
var _ cinedex.PageChecker = (*LoggingChecker)(nil)

// LoggingChecker wraps a PageChecker with debug logging.
type LoggingChecker struct {
	next   cinedex.PageChecker
	logger *slog.Logger
}

// NewLoggingChecker creates a new LoggingChecker.
func NewLoggingChecker(next cinedex.PageChecker, logger *slog.Logger) *LoggingChecker {
	return &LoggingChecker{next: next, logger: logger}
}

// Check logs the URL being checked and delegates to the wrapped checker.
func (c *LoggingChecker) Check(ctx context.Context, url, text string) (found bool, err error) {
	defer func(begin time.Time) {
		c.logger.Info("page check",
			"url", url,
			"found", found,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Check(ctx, url, text)
}

// Close delegates to the wrapped checker.
func (c *LoggingChecker) Close() error {
	return c.next.Close()
}
