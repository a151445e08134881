// Package rod provides a headless-browser implementation of
// cinedex.PageChecker using Chrome automation. It is the second,
// independent answer to "does this title appear?": instead of consulting
// the index it loads each sitemap URL and searches the rendered source.
package rod

import (
	"context"
	"strings"
	"time"

	"github.com/cinedex/cinedex"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultSettleDelay is how long Check waits after the page reports
// loaded before reading its source, giving late scripts a chance to run.
const DefaultSettleDelay = 1 * time.Second

// Ensure Checker implements cinedex.PageChecker at compile time.
var _ cinedex.PageChecker = (*Checker)(nil)

// Checker loads pages in a headless Chrome browser and reports whether a
// search string occurs anywhere in the rendered page source.
type Checker struct {
	browsers *BrowserManager
	settle   time.Duration
}

// Option configures a Checker.
type Option func(*Checker)

// WithSettleDelay sets the post-load delay before the page source is
// read. Defaults to DefaultSettleDelay. Tests set this to zero.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Checker) {
		c.settle = d
	}
}

// NewChecker creates a Checker backed by a fresh headless browser.
// Close must be called when the Checker is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewChecker(opts ...Option) (*Checker, error) {
	c := &Checker{settle: DefaultSettleDelay}
	for _, opt := range opts {
		opt(c)
	}

	browsers, err := NewBrowserManager()
	if err != nil {
		return nil, err
	}
	c.browsers = browsers

	return c, nil
}

// Check navigates to the URL, waits for load plus the settle delay, and
// reports whether text occurs in the page source. Matching is
// case-insensitive raw substring containment, nothing smarter.
func (c *Checker) Check(ctx context.Context, url, text string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	page, err := c.browsers.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return false, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return false, err
	}
	if err := page.WaitLoad(); err != nil {
		return false, err
	}

	if c.settle > 0 {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(c.settle):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return false, err
	}

	c.browsers.PageDone()

	return strings.Contains(strings.ToLower(html), strings.ToLower(text)), nil
}

// Close releases browser resources.
func (c *Checker) Close() error {
	return c.browsers.Close()
}
