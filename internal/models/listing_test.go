package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archive-listing/internal/parser"
)

const tarListing = `
7-Zip [64] 16.02 : Copyright (c) 1999-2016 Igor Pavlov : 2016-05-21

Listing archive: test.tar

--
Path = test.tar
Type = tar
Physical Size = 174592
Headers Size = 3584
Code Page = UTF-8

----------
Path = test
Folder = +
Size = 0
Packed Size = 0
Modified = 2018-10-14 15:41:42

Path = test\test.txt
Folder = -
Size = 14
Packed Size = 512
Modified = 2013-10-23 16:28:51
Mode = -rwxrwxrwx
Characteristics = ASCII

Path = 1.jpg
Folder = -
Size = 91216
Packed Size = 91648
Modified = 2013-06-10 09:56:07

`

func TestNewListing(t *testing.T) {
	t.Parallel()

	l, err := NewListing(parser.FromString(tarListing), parser.NoLimit)
	require.NoError(t, err)

	require.NotNil(t, l.Info())
	assert.Equal(t, "tar", l.Info().Type())
	require.Len(t, l.Entries(), 3)

	for _, e := range l.Entries() {
		assert.Same(t, l, e.Listing())
	}

	assert.Equal(t, Totals{Files: 2, Dirs: 1, Size: 91230}, l.Totals())
}

func TestListing_Lookup(t *testing.T) {
	t.Parallel()

	l, err := NewListing(parser.FromString(tarListing), parser.NoLimit)
	require.NoError(t, err)

	for _, path := range []string{`test\test.txt`, "test/test.txt"} {
		e, ok := l.Lookup(path)
		require.True(t, ok, path)
		assert.Equal(t, `test\test.txt`, e.Path())
	}

	_, ok := l.Lookup("missing.txt")
	assert.False(t, ok)
}

func TestNewListing_Limit(t *testing.T) {
	t.Parallel()

	l, err := NewListing(parser.FromString(tarListing), 1)
	require.NoError(t, err)
	require.Len(t, l.Entries(), 1)
	assert.Equal(t, "test", l.Entries()[0].Path())
}

func TestNewListing_LimitNeverReachesBrokenRecord(t *testing.T) {
	t.Parallel()

	// The third record has no Path and would fail to decode.
	out := strings.Replace(tarListing, "Path = 1.jpg\n", "", 1)

	_, err := NewListing(parser.FromString(out), parser.NoLimit)
	require.ErrorIs(t, err, ErrMissingField)

	l, err := NewListing(parser.FromString(out), 2)
	require.NoError(t, err)
	assert.Len(t, l.Entries(), 2)
}

func TestNewListing_NoHeader(t *testing.T) {
	t.Parallel()

	l, err := NewListing(parser.New(nil), parser.NoLimit)
	require.NoError(t, err)
	assert.Nil(t, l.Info())
	assert.Empty(t, l.Entries())
	assert.Equal(t, Totals{}, l.Totals())
}

func TestNewListing_DuplicatePathsKeepFirst(t *testing.T) {
	t.Parallel()

	out := "----------\nPath = a\\b\nSize = 1\nPacked Size = 1\n\nPath = a/b\nSize = 2\nPacked Size = 2\n"
	l, err := NewListing(parser.FromString(out), parser.NoLimit)
	require.NoError(t, err)
	require.Len(t, l.Entries(), 2)

	e, ok := l.Lookup("a/b")
	require.True(t, ok)
	assert.Equal(t, "1", e.Size())
}
