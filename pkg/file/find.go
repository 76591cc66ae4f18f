package file

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindBySuffix walks dir and returns every regular file whose base name
// ends with suffix (case-insensitive).
func FindBySuffix(dir, suffix string) ([]string, error) {
	var matches []string

	suffix = strings.ToLower(suffix)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), suffix) {
			matches = append(matches, path)
		}
		return nil
	})

	return matches, err
}
