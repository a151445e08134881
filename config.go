package cinedex

import (
	"fmt"
	"time"
)

// Default configuration values. They mirror the production deployment;
// tests substitute small ranges and local endpoints.
const (
	DefaultURLTemplate = "https://cinego.tv/sitemap-movie-%d.xml"
	DefaultStart       = 1
	DefaultEnd         = 50
	DefaultCacheDir    = "sitemaps"
	DefaultIndexPath   = "movie_urls.txt"

	DefaultFetchTimeout     = 15 * time.Second
	DefaultFetchAttempts    = 3
	DefaultBackoffBase      = 500 * time.Millisecond
	DefaultTransportRetries = 3

	// DefaultRequestsPerSecond is the politeness throttle applied after
	// every network attempt against the sitemap host.
	DefaultRequestsPerSecond = 1.0

	// DefaultSettleDelay is how long the page checker waits after a page
	// reports loaded before reading its source.
	DefaultSettleDelay = 1 * time.Second

	// DefaultPageDelay is the pause between successive checked pages.
	DefaultPageDelay = 1500 * time.Millisecond
)

// DefaultUserAgent is sent with every sitemap request. A browser-like
// identity reduces the chance of the remote host rejecting the request.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// Config holds all tunable parameters for the index build and search.
// Components receive it explicitly rather than reading ambient state so
// tests can substitute small ranges and fake endpoints.
type Config struct {
	// URLTemplate is a fmt template with a single %d verb producing the
	// sitemap URL for a given index.
	URLTemplate string

	// Start and End bound the inclusive sitemap index range.
	Start int
	End   int

	// CacheDir is where downloaded sitemap documents are kept, one file
	// per index. IndexPath is the flat line-delimited URL index.
	CacheDir  string
	IndexPath string

	FetchTimeout     time.Duration
	FetchAttempts    int
	BackoffBase      time.Duration
	TransportRetries int
	UserAgent        string

	RequestsPerSecond float64

	SettleDelay time.Duration
	PageDelay   time.Duration
}

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() Config {
	return Config{
		URLTemplate:       DefaultURLTemplate,
		Start:             DefaultStart,
		End:               DefaultEnd,
		CacheDir:          DefaultCacheDir,
		IndexPath:         DefaultIndexPath,
		FetchTimeout:      DefaultFetchTimeout,
		FetchAttempts:     DefaultFetchAttempts,
		BackoffBase:       DefaultBackoffBase,
		TransportRetries:  DefaultTransportRetries,
		UserAgent:         DefaultUserAgent,
		RequestsPerSecond: DefaultRequestsPerSecond,
		SettleDelay:       DefaultSettleDelay,
		PageDelay:         DefaultPageDelay,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.URLTemplate == "" {
		return Errorf(EINVALID, "URL template required")
	}
	if c.Start < 1 {
		return Errorf(EINVALID, "start index must be positive, got %d", c.Start)
	}
	if c.End < c.Start {
		return Errorf(EINVALID, "end index %d precedes start index %d", c.End, c.Start)
	}
	if c.CacheDir == "" {
		return Errorf(EINVALID, "cache directory required")
	}
	if c.IndexPath == "" {
		return Errorf(EINVALID, "index path required")
	}
	if c.FetchAttempts < 1 {
		return Errorf(EINVALID, "fetch attempts must be at least 1, got %d", c.FetchAttempts)
	}
	return nil
}

// SitemapURL returns the remote URL for the sitemap with the given index.
func (c *Config) SitemapURL(n int) string {
	return fmt.Sprintf(c.URLTemplate, n)
}
