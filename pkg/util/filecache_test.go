package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileCache_ReadAndHit(t *testing.T) {
	fc, err := NewFileCache(4, nil)
	require.NoError(t, err)
	defer fc.Close()

	path := writeTemp(t, "a.css", ".a { margin: 4px; }")

	got, err := fc.Read(path)
	require.NoError(t, err)
	assert.Equal(t, ".a { margin: 4px; }", got)

	again, err := fc.Read(path)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	stats := fc.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Cached)
}

func TestFileCache_EmptyFile(t *testing.T) {
	fc, err := NewFileCache(4, nil)
	require.NoError(t, err)
	defer fc.Close()

	path := writeTemp(t, "empty.css", "")
	got, err := fc.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFileCache_MissingFile(t *testing.T) {
	fc, err := NewFileCache(4, nil)
	require.NoError(t, err)
	defer fc.Close()

	_, err = fc.Read(filepath.Join(t.TempDir(), "nope.css"))
	assert.Error(t, err)
}

func TestFileCache_EvictionBound(t *testing.T) {
	fc, err := NewFileCache(2, nil)
	require.NoError(t, err)
	defer fc.Close()

	for _, name := range []string{"a.css", "b.css", "c.css"} {
		path := writeTemp(t, name, name)
		_, err := fc.Read(path)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, fc.Stats().Cached)
}

func TestFileCache_Invalidate(t *testing.T) {
	fc, err := NewFileCache(4, nil)
	require.NoError(t, err)
	defer fc.Close()

	path := writeTemp(t, "a.css", "old")
	_, err = fc.Read(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("new"), 0o644))
	fc.Invalidate(path)

	got, err := fc.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestGetOptimalPoolSize(t *testing.T) {
	size := GetOptimalPoolSize()
	assert.GreaterOrEqual(t, size, 4)
	assert.LessOrEqual(t, size, 32)

	assert.Equal(t, 7, GetOptimalPoolSizeWithOverride(7))
	assert.Equal(t, size, GetOptimalPoolSizeWithOverride(0))
}
