// Package library locates subtitle files that still need translation.
package library

import (
	"fmt"
	"os"
	"sort"

	"github.com/subtran/vtt-translate/pkg/file"
)

// sourceSuffix marks English WebVTT files eligible for translation
const sourceSuffix = "-en.vtt"

// FindUntranslated walks dir and returns every English source file whose
// derived Korean output does not exist yet, in deterministic order.
func FindUntranslated(dir string) ([]string, error) {
	candidates, err := file.FindBySuffix(dir, sourceSuffix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	var pending []string
	for _, path := range candidates {
		if _, err := os.Stat(file.OutputPath(path)); os.IsNotExist(err) {
			pending = append(pending, path)
		}
	}

	sort.Strings(pending)
	return pending, nil
}
