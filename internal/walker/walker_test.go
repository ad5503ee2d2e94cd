// file: internal/walker/walker_test.go
// version: 1.1.0
// guid: 5a3b9c2d-0e4f-4b6c-9d7e-8f2a3b4c5d6e

package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestWalkVisitsEveryFileExactlyOnce(t *testing.T) {
	tmpDir := t.TempDir()
	want := []string{
		"a.txt",
		"sub/b.txt",
		"sub/deep/c.log",
		"sub/deep/.hidden",
	}
	for _, rel := range want {
		writeFile(t, filepath.Join(tmpDir, rel))
	}

	entries, err := Walk(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, len(want))

	seen := make(map[string]int)
	for _, e := range entries {
		rel, err := filepath.Rel(tmpDir, e.Path)
		require.NoError(t, err)
		seen[filepath.ToSlash(rel)]++
	}
	for _, rel := range want {
		assert.Equal(t, 1, seen[rel], "file %s should be visited exactly once", rel)
	}
}

func TestWalkSkipsDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "empty", "nested"), 0755))
	writeFile(t, filepath.Join(tmpDir, "only.txt"))

	entries, err := Walk(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "only.txt", entries[0].Name)
	assert.Equal(t, ".txt", entries[0].Ext)
	assert.True(t, filepath.IsAbs(entries[0].Path))
}

func TestWalkEmptyTree(t *testing.T) {
	entries, err := Walk(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestWalkRootIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "plain.txt")
	writeFile(t, file)

	_, err := Walk(file)
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestWalkDeterministicOrder(t *testing.T) {
	tmpDir := t.TempDir()
	for _, rel := range []string{"z.txt", "a.txt", "m/b.txt"} {
		writeFile(t, filepath.Join(tmpDir, rel))
	}

	first, err := Walk(tmpDir)
	require.NoError(t, err)
	second, err := Walk(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
