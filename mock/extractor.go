package mock

import "github.com/cinedex/cinedex"

var _ cinedex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cinedex.Extractor.
type Extractor struct {
	ExtractFn func(doc []byte) ([]string, error)
}

func (e *Extractor) Extract(doc []byte) ([]string, error) {
	return e.ExtractFn(doc)
}
