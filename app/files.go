package app

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sheetprep/internal/errors"
)

// listFiles returns the files in folder with the given extension, sorted by
// name. The listing is non-recursive; backup and extraction folders are
// therefore never picked up.
func listFiles(folder, ext string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, errors.IOError("failed to list folder", err)
	}

	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			out = append(out, filepath.Join(folder, entry.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
