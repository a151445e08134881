package cinedex

import "context"

// Fetcher retrieves raw document bytes from URLs.
// Implementations handle retries and backoff internally; an error return
// means the attempt budget is exhausted and the caller should treat the
// document as unavailable rather than abort the surrounding loop.
type Fetcher interface {
	// Fetch issues a GET against the URL and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Limiter paces requests against the remote host.
// The index build waits on it after every network attempt, successful or
// not, as a politeness throttle rather than a correctness requirement.
type Limiter interface {
	// Wait blocks until the limiter allows the next request.
	// Returns an error if the context is canceled before then.
	Wait(ctx context.Context) error
}
