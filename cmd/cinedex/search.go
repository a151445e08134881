package main

import (
	"fmt"

	"github.com/cinedex/cinedex"
)

// Run executes the search command: the index is built (or validated as
// current) first, then scanned for the query.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if err := deps.Builder.Build(deps.Ctx); err != nil {
		return err
	}

	urls, err := deps.Searcher.Search(c.Query)
	if err != nil {
		if cinedex.ErrorCode(err) == cinedex.ENOTFOUND {
			fmt.Fprintln(deps.Stdout, "No index found. Run 'cinedex build' first.")
			return nil
		}
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintf(deps.Stdout, "No matching URLs for %q.\n", c.Query)
		return nil
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
