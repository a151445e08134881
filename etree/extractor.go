// Package etree provides an XML-based implementation of cinedex.Extractor
// for pulling URL entries out of sitemap documents.
package etree

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/cinedex/cinedex"
)

// Ensure Extractor implements cinedex.Extractor at compile time.
var _ cinedex.Extractor = (*Extractor)(nil)

// Extractor parses sitemap XML (sitemaps.org protocol, urlset/url/loc)
// and yields the listed URLs in document order.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the trimmed text of every url/loc element.
// Duplicates are preserved; the index carries whatever the sitemaps list.
func (e *Extractor) Extract(doc []byte) ([]string, error) {
	d := etree.NewDocument()
	if _, err := d.ReadFrom(bytes.NewReader(doc)); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := d.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML")
	}
	if root.Tag != "urlset" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}
