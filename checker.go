package cinedex

import "context"

// PageChecker reports whether a piece of text appears in a page's
// rendered source. It is the browser-driven counterpart to the index
// search: same question, unrelated mechanism, no shared state with the
// index build.
type PageChecker interface {
	// Check loads the URL in a browser, waits for it to render, and
	// reports whether text occurs in the page source. Matching is
	// case-insensitive raw substring containment.
	Check(ctx context.Context, url, text string) (bool, error)

	// Close releases browser resources.
	Close() error
}
