// Package http provides an HTTP-based implementation of cinedex.Fetcher
// for downloading sitemap documents with retries and backoff.
package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cinedex/cinedex"
	"github.com/hashicorp/go-retryablehttp"
)

// retryStatus is the set of response codes retried at the transport level.
// Only GET requests are retried; the fetcher never issues anything else.
var retryStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Ensure Fetcher implements cinedex.Fetcher at compile time.
var _ cinedex.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents over HTTP. Two retry layers cooperate: the
// underlying retryablehttp client retries transient status codes within a
// single attempt, and an outer loop re-runs the whole attempt with
// exponentially growing delays (backoff * 2^attempt) up to the attempt
// budget.
type Fetcher struct {
	client    *retryablehttp.Client
	timeout   time.Duration
	attempts  int
	backoff   time.Duration
	retries   int
	userAgent string
	logger    *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to cinedex.DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithAttempts sets the outer attempt budget.
// Defaults to cinedex.DefaultFetchAttempts if not specified.
func WithAttempts(n int) Option {
	return func(f *Fetcher) {
		f.attempts = n
	}
}

// WithBackoff sets the base delay for the exponential backoff between
// attempts. Defaults to cinedex.DefaultBackoffBase if not specified.
// Tests set this to a near-zero value to avoid real waits.
func WithBackoff(d time.Duration) Option {
	return func(f *Fetcher) {
		f.backoff = d
	}
}

// WithTransportRetries sets the retry budget for transient status codes
// within a single attempt. Defaults to cinedex.DefaultTransportRetries.
func WithTransportRetries(n int) Option {
	return func(f *Fetcher) {
		f.retries = n
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to cinedex.DefaultUserAgent if not specified.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLogger sets the logger for retry reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   cinedex.DefaultFetchTimeout,
		attempts:  cinedex.DefaultFetchAttempts,
		backoff:   cinedex.DefaultBackoffBase,
		retries:   cinedex.DefaultTransportRetries,
		userAgent: cinedex.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	c := retryablehttp.NewClient()
	c.HTTPClient = &http.Client{Timeout: f.timeout}
	c.RetryMax = f.retries
	c.RetryWaitMin = f.backoff
	c.RetryWaitMax = 10 * f.backoff
	c.Logger = nil
	c.CheckRetry = checkRetry
	f.client = c

	return f
}

// checkRetry retries connection errors and the transient status set, for
// GET requests only.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	if resp.Request != nil && resp.Request.Method != http.MethodGet {
		return false, nil
	}
	return retryStatus[resp.StatusCode], nil
}

// Fetch retrieves the document at the given URL, retrying with exponential
// backoff until the attempt budget is exhausted.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < f.attempts; attempt++ {
		body, err := f.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt >= f.attempts-1 {
			break
		}

		if f.logger != nil {
			f.logger.Warn("fetch retry",
				"url", url,
				"attempt", attempt+2,
				"err", err,
			)
		}

		// backoff * 2^attempt before the next attempt
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.backoff << attempt):
		}
	}

	return nil, fmt.Errorf("fetching %s: %w", url, lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
