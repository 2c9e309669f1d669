package utils

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// UnixPath converts the separators of an archive member path to '/'.
// 7-Zip reports whatever the archive stored, which is '\' for archives
// written on Windows.
func UnixPath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// HumanSize renders a decimal byte count as reported by the archiver.
// Blank or non-numeric sizes are returned unchanged.
func HumanSize(size string) string {
	n, err := strconv.ParseUint(strings.TrimSpace(size), 10, 64)
	if err != nil {
		return size
	}
	return humanize.IBytes(n)
}
