package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/cinedex/cinedex"
	"github.com/cinedex/cinedex/build"
	"github.com/cinedex/cinedex/etree"
	"github.com/cinedex/cinedex/fs"
	cinehttp "github.com/cinedex/cinedex/http"
	"github.com/cinedex/cinedex/rod"
	cineslog "github.com/cinedex/cinedex/slog"
	"github.com/cinedex/cinedex/toml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	closers []io.Closer
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close releases resources acquired during Run.
func (m *Main) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil {
			err = cerr
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cinedex"),
		kong.Description("Index a site's movie sitemaps and search the URLs by title."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cinedex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Resolve configuration: file, then flag overrides
	cfg := cinedex.DefaultConfig()
	if cli.Config != "" {
		cfg, err = toml.Load(cli.Config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	if cli.Start > 0 {
		cfg.Start = cli.Start
	}
	if cli.End > 0 {
		cfg.End = cli.End
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Config = cfg
	deps.Logger = logger

	// Wire command-specific dependencies
	switch cmd {
	case "build", "search":
		fetcher := cinehttp.NewFetcher(
			cinehttp.WithTimeout(cfg.FetchTimeout),
			cinehttp.WithAttempts(cfg.FetchAttempts),
			cinehttp.WithBackoff(cfg.BackoffBase),
			cinehttp.WithTransportRetries(cfg.TransportRetries),
			cinehttp.WithUserAgent(cfg.UserAgent),
			cinehttp.WithLogger(logger),
		)
		m.closers = append(m.closers, fetcher)

		store := fs.NewStore(cfg,
			cineslog.NewLoggingFetcher(fetcher, logger),
			build.NewThrottle(cfg.RequestsPerSecond),
			logger,
		)
		deps.Builder = &build.Builder{
			Store:     store,
			Extractor: etree.NewExtractor(),
			Index:     fs.NewIndex(cfg.IndexPath),
			Start:     cfg.Start,
			End:       cfg.End,
			Logger:    logger,
		}
		deps.Searcher = cineslog.NewLoggingSearcher(
			fs.NewSearcher(cfg.IndexPath, logger), logger)

	case "check":
		checker, err := rod.NewChecker(rod.WithSettleDelay(cfg.SettleDelay))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.closers = append(m.closers, checker)
		deps.Checker = rod.NewLoggingChecker(checker, logger)
	}
	defer m.Close()

	return kongCtx.Run(deps)
}
