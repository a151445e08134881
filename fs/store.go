// Package fs provides file-based storage for the sitemap document cache
// and the flat URL index.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cinedex/cinedex"
)

// Ensure Store implements cinedex.SitemapStore at compile time.
var _ cinedex.SitemapStore = (*Store)(nil)

// Store caches sitemap documents on disk, one file per index.
// A document already on disk is never re-fetched; a document that cannot
// be fetched is skipped, leaving the rest of the range to proceed.
type Store struct {
	cacheDir string
	start    int
	end      int
	fetcher  cinedex.Fetcher
	urlFor   func(n int) string
	limiter  cinedex.Limiter
	logger   *slog.Logger
}

// NewStore creates a Store over the inclusive range [cfg.Start, cfg.End].
// The limiter, if non-nil, is waited on after every network attempt as a
// politeness throttle. The logger may be nil.
func NewStore(cfg cinedex.Config, fetcher cinedex.Fetcher, limiter cinedex.Limiter, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		cacheDir: cfg.CacheDir,
		start:    cfg.Start,
		end:      cfg.End,
		fetcher:  fetcher,
		urlFor:   cfg.SitemapURL,
		limiter:  limiter,
		logger:   logger,
	}
}

// Path returns the deterministic cache path for the given sitemap index.
func (s *Store) Path(n int) string {
	return filepath.Join(s.cacheDir, fmt.Sprintf("sitemap-movie-%d.xml", n))
}

// AllPresent reports whether every document in the range is on disk.
func (s *Store) AllPresent() bool {
	for n := s.start; n <= s.end; n++ {
		if _, err := os.Stat(s.Path(n)); err != nil {
			return false
		}
	}
	return true
}

// Ensure makes sure the sitemap with the given index is on disk and
// returns its local path. An unreachable document yields ("", nil): it is
// logged and skipped, not fatal. A write failure is returned as an error
// since there is no recovery path for a broken cache directory.
func (s *Store) Ensure(ctx context.Context, n int) (string, error) {
	path := s.Path(n)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	url := s.urlFor(n)
	body, fetchErr := s.fetcher.Fetch(ctx, url)

	// Politeness wait after every network attempt, successful or not.
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	if fetchErr != nil {
		s.logger.Warn("sitemap unavailable, skipping",
			"index", n,
			"url", url,
			"err", fetchErr,
		)
		return "", nil
	}

	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", fmt.Errorf("writing sitemap %d: %w", n, err)
	}
	return path, nil
}

// EnsureDir creates the cache directory if it does not exist.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.cacheDir, 0755)
}
