package inventory

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestProcessArchives(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	writeZip(t, filepath.Join(root, "a.zip"), map[string]string{"x.txt": "abc", "dir/": ""})
	writeZip(t, filepath.Join(root, "sub", "b.zip"), map[string]string{"y.txt": "hello"})
	require.NoError(t, os.WriteFile(filepath.Join(root, "broken.7z"), []byte("not a 7z"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.md"), []byte("#"), 0o644))

	var bar bytes.Buffer
	results, err := ProcessArchives(context.Background(), root, Options{Jobs: 2, Progress: &bar})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, filepath.Join(root, "a.zip"), results[0].Archive)
	assert.False(t, results[0].Failed())
	assert.Equal(t, "zip", results[0].Type)
	assert.Equal(t, 2, results[0].Entries)
	assert.Equal(t, 1, results[0].Files)
	assert.Equal(t, 1, results[0].Dirs)
	assert.Equal(t, uint64(3), results[0].Size)
	assert.Positive(t, results[0].PhysicalSize)

	assert.Equal(t, filepath.Join(root, "broken.7z"), results[1].Archive)
	assert.True(t, results[1].Failed())
	assert.Zero(t, results[1].Entries)

	assert.Equal(t, filepath.Join(root, "sub", "b.zip"), results[2].Archive)
	assert.Equal(t, uint64(5), results[2].Size)
}

func TestProcessArchives_Empty(t *testing.T) {
	t.Parallel()

	results, err := ProcessArchives(context.Background(), t.TempDir(), Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProcessArchives_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := ProcessArchives(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProcessArchives_Cancelled(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeZip(t, filepath.Join(root, "a.zip"), map[string]string{"x.txt": "abc"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ProcessArchives(ctx, root, Options{Jobs: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
