package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWarnings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		output []string
		want   []string
	}{
		{
			name: "trailing data",
			output: []string{
				"",
				"7-Zip [64] 16.02 : Copyright (c) 1999-2016 Igor Pavlov : 2016-05-21",
				"",
				"Testing archive: warnings.zip",
				"",
				"WARNINGS:",
				"There are data after the end of archive",
				"",
				"--",
				"Path = warnings.zip",
				"Type = zip",
				"",
				"Everything is Ok",
			},
			want: []string{"There are data after the end of archive"},
		},
		{
			name: "several warnings, last block wins",
			output: []string{
				"WARNINGS:",
				"old",
				"WARNINGS:",
				"Headers Error",
				"Unconfirmed start of archive",
				"--",
			},
			want: []string{"Headers Error", "Unconfirmed start of archive"},
		},
		{
			name:   "clean archive",
			output: []string{"", "Testing archive: zip.7z", "--", "Path = zip.7z", "", "Everything is Ok"},
		},
		{
			name:   "warnings after the header do not count",
			output: []string{"", "Testing archive: a.7z", "--", "Path = a.7z", "WARNINGS:", "x"},
		},
		{
			name:   "no header at all",
			output: []string{"", "WARNINGS:", "x"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseWarnings(strings.Join(tt.output, "\n")))
			assert.Equal(t, tt.want, ParseWarnings(strings.Join(tt.output, "\r\n")))
		})
	}
}

func TestTestPassed(t *testing.T) {
	t.Parallel()

	assert.True(t, TestPassed("Testing archive: a.7z\n\nEverything is Ok\n"))
	assert.False(t, TestPassed("ERROR: Data Error : a.txt\n\nSub items Errors: 1\n"))
}

func TestToolVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"7-Zip 23.01 (x64) : Copyright (c) 1999-2023 Igor Pavlov : 2023-06-20",
		ToolVersion(New(sevenZipListing).ParseInfo()))
	assert.Equal(t,
		"7-Zip [64] 16.02 : Copyright (c) 1999-2016 Igor Pavlov : 2016-05-21",
		ToolVersion(New(warningsZipListing).ParseInfo()))
	assert.Equal(t, "", ToolVersion("1 file, 42 bytes\n"))
}
