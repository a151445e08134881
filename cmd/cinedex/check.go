package main

import (
	"fmt"
	"time"
)

// Run executes the check command: each sitemap URL in the range is loaded
// in a headless browser and its rendered source searched for the text.
// Per-URL failures are reported and skipped; the loop always finishes.
func (c *CheckCmd) Run(deps *Dependencies) error {
	cfg := deps.Config

	for n := cfg.Start; n <= cfg.End; n++ {
		if err := deps.Ctx.Err(); err != nil {
			return err
		}

		url := cfg.SitemapURL(n)
		fmt.Fprintf(deps.Stdout, "Checking: %s\n", url)

		found, err := deps.Checker.Check(deps.Ctx, url, c.Text)
		switch {
		case err != nil:
			fmt.Fprintf(deps.Stdout, "Error accessing %s: %v\n", url, err)
		case found:
			fmt.Fprintf(deps.Stdout, "Match found on: %s\n", url)
		default:
			fmt.Fprintln(deps.Stdout, "No match found.")
		}

		if n < cfg.End && cfg.PageDelay > 0 {
			select {
			case <-deps.Ctx.Done():
				return deps.Ctx.Err()
			case <-time.After(cfg.PageDelay):
			}
		}
	}

	fmt.Fprintln(deps.Stdout, "Search complete.")
	return nil
}
