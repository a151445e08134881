package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/cinedex/cinedex"
	"github.com/cinedex/cinedex/build"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config cinedex.Config
	Logger *slog.Logger

	Builder  *build.Builder
	Searcher cinedex.Searcher
	Checker  cinedex.PageChecker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" help:"Path to TOML config file" type:"path"`
	Start   int    `help:"First sitemap index (overrides config)"`
	End     int    `help:"Last sitemap index (overrides config)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Build  BuildCmd  `cmd:"" help:"Download missing sitemaps and build the URL index"`
	Search SearchCmd `cmd:"" help:"Build the index if needed, then search it for a title"`
	Check  CheckCmd  `cmd:"" help:"Load each sitemap in a headless browser and look for text in the page source"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Movie title to search for"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Text string `arg:"" help:"Text to look for in each rendered page"`
}
