package fs

import (
	"bufio"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/cinedex/cinedex"
)

// Ensure Searcher implements cinedex.Searcher at compile time.
var _ cinedex.Searcher = (*Searcher)(nil)

// Searcher scans the flat URL index for entries whose path contains the
// normalized query token. Results come back in index order; there is no
// ranking or fuzzy matching.
type Searcher struct {
	path   string
	logger *slog.Logger
}

// NewSearcher creates a Searcher over the index file at path.
// The logger may be nil.
func NewSearcher(path string, logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Searcher{path: path, logger: logger}
}

// Search returns every indexed URL whose path component contains the
// normalized query token. An empty query short-circuits to an empty
// result without touching the index. A missing index file is logged and
// reported as ENOTFOUND so the caller can tell the user to build first.
func (s *Searcher) Search(query string) ([]string, error) {
	token := cinedex.Normalize(query)
	if token == "" {
		return []string{}, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("index file missing", "path", s.path)
			return nil, cinedex.Errorf(cinedex.ENOTFOUND, "index file %q not found", s.path)
		}
		return nil, fmt.Errorf("opening index: %w", err)
	}
	defer f.Close()

	var matches []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		u, err := url.Parse(line)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(u.Path), token) {
			matches = append(matches, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}

	return matches, nil
}
