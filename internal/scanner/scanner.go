package scanner

import (
	"os"
	"path/filepath"
	"sort"

	"archive-listing/internal/archiver"
)

// ScanDirectory returns every file under root whose extension the native
// lister understands, in lexical order.
func ScanDirectory(root string) ([]string, error) {
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && archiver.IsArchive(path) {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}
