package mock

import "github.com/cinedex/cinedex"

var _ cinedex.IndexWriter = (*IndexWriter)(nil)

// IndexWriter is a mock implementation of cinedex.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(urls []string) error
	ExistsFn     func() bool
}

func (w *IndexWriter) WriteIndex(urls []string) error {
	return w.WriteIndexFn(urls)
}

func (w *IndexWriter) Exists() bool {
	return w.ExistsFn()
}

var _ cinedex.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of cinedex.Searcher.
type Searcher struct {
	SearchFn func(query string) ([]string, error)
}

func (s *Searcher) Search(query string) ([]string, error) {
	return s.SearchFn(query)
}
