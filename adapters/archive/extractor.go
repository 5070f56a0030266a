// Package archive unpacks downloaded zip exports and moves the CSVs they
// contain into the working folder under predictable names so each zip ends
// up as <stem>.csv (or <stem>_N.csv when a zip holds several).
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sheetprep/internal"
	"sheetprep/internal/errors"
)

// Options configures an extraction run.
type Options struct {
	KeepExtracted bool // keep the per-zip extraction folders
	Overwrite     bool // replace existing destination CSVs instead of uniquifying
}

// Extractor extracts zips in a base folder and collects their CSVs.
type Extractor struct {
	opts Options
	log  *internal.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(opts Options, log *internal.Logger) *Extractor {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &Extractor{opts: opts, log: log}
}

// ExtractAll processes every .zip in baseDir in sorted name order and
// returns the number of CSVs moved into baseDir. A corrupt zip is reported
// and skipped; the batch continues.
func (e *Extractor) ExtractAll(baseDir string) (int, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return 0, errors.IOError("failed to list folder", err)
	}

	var zips []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".zip") {
			zips = append(zips, entry.Name())
		}
	}
	sort.Strings(zips)

	if len(zips) == 0 {
		e.log.Info("[Extractor] no zip files found in %s", baseDir)
		return 0, nil
	}

	moved := 0
	for _, name := range zips {
		n, err := e.extractOne(baseDir, name)
		if err != nil {
			e.log.Error("[Extractor] %s: %v", name, err)
			continue
		}
		moved += n
	}

	e.log.Info("[Extractor] moved %d csv file(s) to %s", moved, baseDir)
	return moved, nil
}

func (e *Extractor) extractOne(baseDir, zipName string) (int, error) {
	zipPath := filepath.Join(baseDir, zipName)
	stem := strings.TrimSuffix(zipName, filepath.Ext(zipName))
	extractDir := filepath.Join(baseDir, stem+"__extracted")

	// Re-runs start from a clean extraction folder unless asked to keep it.
	if !e.opts.KeepExtracted {
		if err := os.RemoveAll(extractDir); err != nil {
			return 0, errors.IOError("failed to clear extraction folder", err)
		}
	}
	if err := os.MkdirAll(extractDir, 0o755); err != nil {
		return 0, errors.IOError("failed to create extraction folder", err)
	}

	e.log.Info("[Extractor] processing %s", zipName)

	if err := unzip(zipPath, extractDir); err != nil {
		if !e.opts.KeepExtracted {
			os.RemoveAll(extractDir)
		}
		return 0, errors.ArchiveError(zipName, err)
	}

	csvFiles, err := findCSVs(extractDir)
	if err != nil {
		return 0, errors.IOError("failed to scan extracted contents", err)
	}
	if len(csvFiles) == 0 {
		e.log.Warn("[Extractor] %s: no csv files inside extracted contents", zipName)
		if !e.opts.KeepExtracted {
			os.RemoveAll(extractDir)
		}
		return 0, nil
	}

	moved := 0
	for i, src := range csvFiles {
		destName := destFileName(stem, i+1, len(csvFiles))
		dest := filepath.Join(baseDir, destName)

		if _, err := os.Stat(dest); err == nil {
			if e.opts.Overwrite {
				if err := os.Remove(dest); err != nil {
					return moved, errors.IOError("failed to remove existing destination", err)
				}
			} else {
				dest = uniquePath(dest)
			}
		}

		if err := moveFile(src, dest); err != nil {
			return moved, errors.IOError("failed to move extracted csv", err)
		}
		moved++
		e.log.Info("[Extractor]   moved %s", filepath.Base(dest))
	}

	if !e.opts.KeepExtracted {
		os.RemoveAll(extractDir)
	}
	return moved, nil
}

// unzip extracts an archive into dir, refusing entries that would escape it.
func unzip(zipPath, dir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		target := filepath.Join(dir, filepath.Clean(f.Name))
		rel, err := filepath.Rel(dir, target)
		if err != nil || strings.HasPrefix(rel, "..") {
			return fmt.Errorf("entry %q escapes extraction folder", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return err
	}
	return out.Close()
}

// findCSVs returns all .csv files under dir, recursively, in sorted order.
func findCSVs(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".csv") {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// destFileName names the i-th of total CSVs from one zip: the bare stem for
// a single file, stem_N otherwise.
func destFileName(stem string, i, total int) string {
	if total <= 1 && i == 1 {
		return stem + ".csv"
	}
	return fmt.Sprintf("%s_%d.csv", stem, i)
}

// uniquePath returns a non-existing path by inserting (n) before the suffix.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s(%d)%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// moveFile renames src to dest, falling back to copy+remove across devices.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
