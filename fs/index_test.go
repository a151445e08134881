package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cinedex/cinedex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_WriteIndex(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "movie_urls.txt")
	idx := fs.NewIndex(path)

	assert.False(t, idx.Exists())

	urls := []string{
		"https://cinego.tv/movie/heat",
		"https://cinego.tv/movie/inception",
	}
	require.NoError(t, idx.WriteIndex(urls))
	assert.True(t, idx.Exists())

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://cinego.tv/movie/heat\nhttps://cinego.tv/movie/inception\n", string(body))
}

func TestIndex_WriteIndex_OverwritesStaleContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "movie_urls.txt")
	require.NoError(t, os.WriteFile(path, []byte("https://stale.example/old\n"), 0644))

	idx := fs.NewIndex(path)
	require.NoError(t, idx.WriteIndex([]string{"https://cinego.tv/movie/heat"}))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://cinego.tv/movie/heat\n", string(body))
}

func TestIndex_WriteIndex_LeavesNoTempFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	idx := fs.NewIndex(filepath.Join(dir, "movie_urls.txt"))
	require.NoError(t, idx.WriteIndex([]string{"https://cinego.tv/movie/heat"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "movie_urls.txt", entries[0].Name())
}

func TestIndex_WriteIndex_CreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "movie_urls.txt")
	idx := fs.NewIndex(path)
	require.NoError(t, idx.WriteIndex([]string{"https://cinego.tv/movie/heat"}))
	assert.FileExists(t, path)
}
