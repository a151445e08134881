// Package build orchestrates the index build: it walks the configured
// sitemap range, ensures each document is cached locally, extracts the
// listed URLs, and writes the flat index file.
package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cinedex/cinedex"
)

// Builder coordinates the sitemap store, the URL extractor, and the index
// writer across the inclusive range [Start, End]. Per-document failures
// (unreachable sitemap, malformed XML) are logged and skipped so a partial
// outage still yields a best-effort index.
type Builder struct {
	Store     cinedex.SitemapStore
	Extractor cinedex.Extractor
	Index     cinedex.IndexWriter
	Start     int
	End       int
	Logger    *slog.Logger
}

// Build runs the index build once. Repeat runs are cheap: when every
// document in the range is already cached and the index file exists,
// Build returns without any work; when only the index is missing it is
// rebuilt from disk with zero network calls.
func (b *Builder) Build(ctx context.Context) error {
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := b.Store.EnsureDir(); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	if b.Store.AllPresent() {
		if b.Index.Exists() {
			logger.Info("index up to date", "start", b.Start, "end", b.End)
			return nil
		}
		logger.Info("all sitemaps cached, rebuilding index from disk",
			"start", b.Start,
			"end", b.End,
		)
		urls, err := b.collect(ctx, logger, b.fromDisk)
		if err != nil {
			return err
		}
		return b.write(urls, logger)
	}

	urls, err := b.collect(ctx, logger, b.Store.Ensure)
	if err != nil {
		return err
	}
	return b.write(urls, logger)
}

// collect walks the range in ascending order, locating each document via
// locate and accumulating extracted URLs. A document that locate reports
// as absent, or that fails to parse, contributes nothing.
func (b *Builder) collect(ctx context.Context, logger *slog.Logger, locate func(context.Context, int) (string, error)) ([]string, error) {
	var urls []string
	for n := b.Start; n <= b.End; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, err := locate(ctx, n)
		if err != nil {
			return nil, err
		}
		if path == "" {
			continue
		}

		doc, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading sitemap %d: %w", n, err)
		}

		extracted, err := b.Extractor.Extract(doc)
		if err != nil {
			logger.Warn("skipping malformed sitemap",
				"index", n,
				"path", path,
				"err", err,
			)
			continue
		}

		urls = append(urls, extracted...)
	}
	return urls, nil
}

// fromDisk locates an already-cached document without touching the
// network. Used when AllPresent has confirmed the full range is on disk.
func (b *Builder) fromDisk(_ context.Context, n int) (string, error) {
	return b.Store.Path(n), nil
}

// write persists the accumulated URLs, but only if at least one was
// collected; an empty accumulator leaves any existing index untouched.
func (b *Builder) write(urls []string, logger *slog.Logger) error {
	if len(urls) == 0 {
		logger.Warn("no URLs collected, index not written")
		return nil
	}
	if err := b.Index.WriteIndex(urls); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	logger.Info("index written", "urls", len(urls))
	return nil
}
