package archiver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"archive-listing/internal/utils"
)

var (
	supportedArchives = []string{
		".7z", ".zip", ".rar", ".gz", ".tgz", ".tar", ".bz2", ".xz",
	}

	ErrUnsupported = errors.New("unsupported archive type")
	ErrInvalidPath = errors.New("invalid member path")
)

func IsArchive(file string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	for _, e := range supportedArchives {
		if ext == e {
			return true
		}
	}
	return false
}

// List reads src in-process and returns a listing in the same shape as
// "7z l -slt src": banner, "--", the archive header, "----------" and one
// blank-separated block per member.
func List(src string) ([]string, error) {
	st, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnsupported, src)
	}

	l := newListing(src, st.Size())

	ext := strings.ToLower(filepath.Ext(src))
	switch ext {
	case ".zip":
		err = listZip(src, l)
	case ".rar":
		err = listRar(src, l)
	case ".7z":
		err = listSevenZip(src, l)
	case ".tar":
		err = listTar(src, l)
	case ".gz", ".tgz":
		err = listGzip(src, l)
	case ".xz":
		err = listXz(src, l)
	case ".bz2":
		err = listBzip2(src, l)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	if err != nil {
		return nil, err
	}
	return l.lines(), nil
}

// checkName rejects member names that that climb out of the archive root.
func checkName(name string) error {
	for _, part := range strings.Split(utils.UnixPath(name), "/") {
		if part == ".." {
			return fmt.Errorf("%w: %s", ErrInvalidPath, name)
		}
	}
	return nil
}
