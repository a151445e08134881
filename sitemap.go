package cinedex

import "context"

// SitemapStore manages the local cache of downloaded sitemap documents.
// Documents are keyed by their position in the configured numeric range
// and are never mutated or deleted once written.
type SitemapStore interface {
	// EnsureDir creates the cache directory if it does not exist.
	// It is safe to call when the directory is already present.
	EnsureDir() error

	// Ensure makes sure the sitemap with the given index is on disk and
	// returns its local path. If the file already exists no network call
	// is made. If the document cannot be fetched after the full retry
	// budget, Ensure returns ("", nil): the document is absent and the
	// caller skips it. A non-nil error signals an infrastructure failure
	// (e.g. the cache directory is not writable) with no recovery path.
	Ensure(ctx context.Context, n int) (string, error)

	// Path returns the deterministic local path for the given index,
	// whether or not the file exists.
	Path(n int) string

	// AllPresent reports whether every document in the configured range
	// is already on disk. It never touches the network.
	AllPresent() bool
}

// Extractor parses a sitemap document and yields the listed URLs.
type Extractor interface {
	// Extract returns the text of every url/loc element in document
	// order. Malformed XML yields an error; callers log it and treat
	// the document as contributing no URLs.
	Extract(doc []byte) ([]string, error)
}
