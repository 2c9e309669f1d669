package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested", "deeper"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir.zip"), 0o755))

	files := []string{
		"a.7z",
		"notes.txt",
		filepath.Join("nested", "b.ZIP"),
		filepath.Join("nested", "deeper", "c.tar.gz"),
		filepath.Join("nested", "image.png"),
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x"), 0o644))
	}

	got, err := ScanDirectory(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.7z"),
		filepath.Join(root, "nested", "b.ZIP"),
		filepath.Join(root, "nested", "deeper", "c.tar.gz"),
	}, got)
}

func TestScanDirectory_Missing(t *testing.T) {
	t.Parallel()

	_, err := ScanDirectory(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
