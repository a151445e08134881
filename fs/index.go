package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cinedex/cinedex"
)

// Ensure Index implements cinedex.IndexWriter at compile time.
var _ cinedex.IndexWriter = (*Index)(nil)

// Index persists the flat URL index: one absolute URL per line, no header,
// no trailing metadata. It is a derived artifact, fully regenerable from
// the cached sitemap documents.
type Index struct {
	path string
}

// NewIndex creates an Index backed by the file at path.
func NewIndex(path string) *Index {
	return &Index{path: path}
}

// Path returns the index file location.
func (i *Index) Path() string {
	return i.path
}

// Exists reports whether the index file is present.
func (i *Index) Exists() bool {
	_, err := os.Stat(i.path)
	return err == nil
}

// WriteIndex replaces the index with the given URLs in order.
// The file is written to a temporary sibling and renamed so readers never
// observe a partially written index.
func (i *Index) WriteIndex(urls []string) error {
	var b strings.Builder
	for _, u := range urls {
		b.WriteString(u)
		b.WriteByte('\n')
	}

	dir := filepath.Dir(i.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := i.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, i.path)
}
