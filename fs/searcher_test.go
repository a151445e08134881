package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cinedex/cinedex"
	"github.com/cinedex/cinedex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIndexFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movie_urls.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0644))
	return path
}

func TestSearcher_Search_MatchesNormalizedTitle(t *testing.T) {
	t.Parallel()

	path := writeIndexFile(t,
		"https://cinego.tv/movie/the-vampire-diaries-s01e01\n"+
			"https://cinego.tv/movie/inception\n")

	got, err := fs.NewSearcher(path, nil).Search("The Vampire   Diaries")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cinego.tv/movie/the-vampire-diaries-s01e01"}, got)
}

func TestSearcher_Search_NoMatch(t *testing.T) {
	t.Parallel()

	path := writeIndexFile(t, "https://cinego.tv/movie/inception\n")

	got, err := fs.NewSearcher(path, nil).Search("Nonexistent Title")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearcher_Search_EmptyQueryShortCircuits(t *testing.T) {
	t.Parallel()

	// Index deliberately missing: an empty query must not touch it.
	s := fs.NewSearcher(filepath.Join(t.TempDir(), "missing.txt"), nil)

	got, err := s.Search("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearcher_Search_MissingIndexFile(t *testing.T) {
	t.Parallel()

	s := fs.NewSearcher(filepath.Join(t.TempDir(), "missing.txt"), nil)

	got, err := s.Search("heat")
	require.Error(t, err)
	assert.Equal(t, cinedex.ENOTFOUND, cinedex.ErrorCode(err))
	assert.Empty(t, got)
}

func TestSearcher_Search_PathComponentOnly(t *testing.T) {
	t.Parallel()

	// "heat" appears in the host of the first entry and the query string
	// of the second; only the path match should be returned.
	path := writeIndexFile(t,
		"https://heat.example.com/movie/inception\n"+
			"https://cinego.tv/movie/inception?ref=heat\n"+
			"https://cinego.tv/movie/heat-1995\n")

	got, err := fs.NewSearcher(path, nil).Search("heat")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cinego.tv/movie/heat-1995"}, got)
}

func TestSearcher_Search_PreservesIndexOrder(t *testing.T) {
	t.Parallel()

	path := writeIndexFile(t,
		"https://cinego.tv/movie/heat-1995\n"+
			"https://cinego.tv/movie/dead-heat\n"+
			"https://cinego.tv/movie/heat-wave\n")

	got, err := fs.NewSearcher(path, nil).Search("heat")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://cinego.tv/movie/heat-1995",
		"https://cinego.tv/movie/dead-heat",
		"https://cinego.tv/movie/heat-wave",
	}, got)
}

func TestSearcher_Search_SkipsBlankLines(t *testing.T) {
	t.Parallel()

	path := writeIndexFile(t, "\nhttps://cinego.tv/movie/heat\n\n")

	got, err := fs.NewSearcher(path, nil).Search("heat")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
