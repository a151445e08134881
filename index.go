package cinedex

import "strings"

// IndexWriter persists the flat URL index.
// The index is a derived artifact, always rebuildable from the cached
// sitemap documents, written whole in a single call.
type IndexWriter interface {
	// WriteIndex replaces the index file with the given URLs, one per
	// line, in the order provided.
	WriteIndex(urls []string) error

	// Exists reports whether an index file is already present.
	Exists() bool
}

// Searcher answers substring queries over the persisted URL index.
type Searcher interface {
	// Search normalizes the query and returns every indexed URL whose
	// path component contains the normalized token, in index order.
	// A query that is empty after trimming returns an empty result
	// without touching the index. A missing index file is reported as
	// ENOTFOUND.
	Search(query string) ([]string, error)
}

// Normalize converts free-text input into the token used for path
// matching: trimmed, lowercased, with internal whitespace runs collapsed
// to single hyphens. It is idempotent; punctuation and non-ASCII text
// pass through unchanged.
func Normalize(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), "-")
}
