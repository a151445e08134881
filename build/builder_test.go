package build_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cinedex/cinedex/build"
	"github.com/cinedex/cinedex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDoc creates a fake cached sitemap whose content is a
// comma-separated URL list, paired with extractAsList below.
func writeDoc(t *testing.T, dir string, n int, urls ...string) string {
	t.Helper()
	path := filepath.Join(dir, fmt.Sprintf("sitemap-movie-%d.xml", n))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(urls, ",")), 0644))
	return path
}

func extractAsList(doc []byte) ([]string, error) {
	s := string(doc)
	if s == "malformed" {
		return nil, errors.New("parse failure")
	}
	if s == "" {
		return nil, nil
	}
	return strings.Split(s, ","), nil
}

func TestBuilder_Build_FullRange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docs := map[int]string{
		1: writeDoc(t, dir, 1, "https://cinego.tv/movie/heat"),
		2: writeDoc(t, dir, 2, "https://cinego.tv/movie/inception", "https://cinego.tv/movie/dune"),
	}

	var written []string
	b := &build.Builder{
		Store: &mock.SitemapStore{
			EnsureFn:     func(ctx context.Context, n int) (string, error) { return docs[n], nil },
			AllPresentFn: func() bool { return false },
		},
		Extractor: &mock.Extractor{ExtractFn: extractAsList},
		Index: &mock.IndexWriter{
			WriteIndexFn: func(urls []string) error { written = urls; return nil },
			ExistsFn:     func() bool { return false },
		},
		Start: 1,
		End:   2,
	}

	require.NoError(t, b.Build(context.Background()))
	assert.Equal(t, []string{
		"https://cinego.tv/movie/heat",
		"https://cinego.tv/movie/inception",
		"https://cinego.tv/movie/dune",
	}, written, "URLs concatenated in ascending sitemap order")
}

func TestBuilder_Build_SkipsAbsentDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docs := map[int]string{
		1: writeDoc(t, dir, 1, "https://cinego.tv/movie/heat"),
		3: writeDoc(t, dir, 3, "https://cinego.tv/movie/dune"),
	}

	var written []string
	b := &build.Builder{
		Store: &mock.SitemapStore{
			// Sitemap 2 exhausted its retry budget: absent, not an error.
			EnsureFn:     func(ctx context.Context, n int) (string, error) { return docs[n], nil },
			AllPresentFn: func() bool { return false },
		},
		Extractor: &mock.Extractor{ExtractFn: extractAsList},
		Index: &mock.IndexWriter{
			WriteIndexFn: func(urls []string) error { written = urls; return nil },
			ExistsFn:     func() bool { return false },
		},
		Start: 1,
		End:   3,
	}

	require.NoError(t, b.Build(context.Background()))
	assert.Equal(t, []string{
		"https://cinego.tv/movie/heat",
		"https://cinego.tv/movie/dune",
	}, written)
}

func TestBuilder_Build_SkipsMalformedDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docs := map[int]string{
		1: writeDoc(t, dir, 1, "https://cinego.tv/movie/heat"),
		2: writeDoc(t, dir, 2, "malformed"),
		3: writeDoc(t, dir, 3, "https://cinego.tv/movie/dune"),
	}

	var written []string
	b := &build.Builder{
		Store: &mock.SitemapStore{
			EnsureFn:     func(ctx context.Context, n int) (string, error) { return docs[n], nil },
			AllPresentFn: func() bool { return false },
		},
		Extractor: &mock.Extractor{ExtractFn: extractAsList},
		Index: &mock.IndexWriter{
			WriteIndexFn: func(urls []string) error { written = urls; return nil },
			ExistsFn:     func() bool { return false },
		},
		Start: 1,
		End:   3,
	}

	require.NoError(t, b.Build(context.Background()))
	assert.Equal(t, []string{
		"https://cinego.tv/movie/heat",
		"https://cinego.tv/movie/dune",
	}, written)
}

func TestBuilder_Build_NoOpWhenFullyBuilt(t *testing.T) {
	t.Parallel()

	b := &build.Builder{
		Store: &mock.SitemapStore{
			EnsureFn: func(ctx context.Context, n int) (string, error) {
				t.Fatal("unexpected network-path call")
				return "", nil
			},
			AllPresentFn: func() bool { return true },
		},
		Extractor: &mock.Extractor{ExtractFn: func(doc []byte) ([]string, error) {
			t.Fatal("unexpected extraction")
			return nil, nil
		}},
		Index: &mock.IndexWriter{
			WriteIndexFn: func(urls []string) error {
				t.Fatal("unexpected index write")
				return nil
			},
			ExistsFn: func() bool { return true },
		},
		Start: 1,
		End:   5,
	}

	require.NoError(t, b.Build(context.Background()))
}

func TestBuilder_Build_RebuildsFromDiskWithoutNetwork(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docs := map[int]string{
		1: writeDoc(t, dir, 1, "https://cinego.tv/movie/heat"),
		2: writeDoc(t, dir, 2, "https://cinego.tv/movie/dune"),
	}

	var written []string
	b := &build.Builder{
		Store: &mock.SitemapStore{
			EnsureFn: func(ctx context.Context, n int) (string, error) {
				t.Fatal("unexpected network-path call")
				return "", nil
			},
			PathFn:       func(n int) string { return docs[n] },
			AllPresentFn: func() bool { return true },
		},
		Extractor: &mock.Extractor{ExtractFn: extractAsList},
		Index: &mock.IndexWriter{
			WriteIndexFn: func(urls []string) error { written = urls; return nil },
			ExistsFn:     func() bool { return false },
		},
		Start: 1,
		End:   2,
	}

	require.NoError(t, b.Build(context.Background()))
	assert.Equal(t, []string{
		"https://cinego.tv/movie/heat",
		"https://cinego.tv/movie/dune",
	}, written)
}

func TestBuilder_Build_EmptyAccumulatorLeavesIndexAlone(t *testing.T) {
	t.Parallel()

	b := &build.Builder{
		Store: &mock.SitemapStore{
			EnsureFn:     func(ctx context.Context, n int) (string, error) { return "", nil },
			AllPresentFn: func() bool { return false },
		},
		Extractor: &mock.Extractor{ExtractFn: extractAsList},
		Index: &mock.IndexWriter{
			WriteIndexFn: func(urls []string) error {
				t.Fatal("unexpected index write")
				return nil
			},
			ExistsFn: func() bool { return false },
		},
		Start: 1,
		End:   3,
	}

	require.NoError(t, b.Build(context.Background()))
}

func TestBuilder_Build_InfrastructureFailureAborts(t *testing.T) {
	t.Parallel()

	b := &build.Builder{
		Store: &mock.SitemapStore{
			EnsureDirFn: func() error { return errors.New("permission denied") },
		},
	}

	err := b.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache directory")
}

func TestBuilder_Build_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &build.Builder{
		Store: &mock.SitemapStore{
			EnsureFn:     func(ctx context.Context, n int) (string, error) { return "", nil },
			AllPresentFn: func() bool { return false },
		},
		Extractor: &mock.Extractor{ExtractFn: extractAsList},
		Index:     &mock.IndexWriter{ExistsFn: func() bool { return false }},
		Start:     1,
		End:       10,
	}

	err := b.Build(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
