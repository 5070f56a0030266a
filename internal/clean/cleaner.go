// Package clean is the pre-pass that strips noise from raw CSV exports
// before reshaping: the first physical line, blank and effectively-empty
// rows, and rows whose first populated cell starts with a configured prefix
// (the 主要人员 block markers in the original exports). Kept rows also have
// Excel text formulas like ="00123" unwrapped back to plain values.
package clean

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sheetprep/adapters/csvio"
	"sheetprep/adapters/encoding"
	"sheetprep/internal"
	"sheetprep/internal/errors"

	"github.com/google/uuid"
	"golang.org/x/text/transform"
)

// DefaultDropPrefix marks the personnel blocks the cleaner removes.
const DefaultDropPrefix = "主要人员"

// Options configures a Cleaner.
type Options struct {
	DropPrefix string // rows whose first populated cell starts with this are dropped
	Backup     bool   // copy the original aside before rewriting
	BackupDir  string // backup root, a timestamped subdirectory is created per run
	DryRun     bool   // count only, modify nothing
}

// Result reports per-file outcome counts.
type Result struct {
	Kept    int
	Dropped int
}

// Cleaner rewrites CSV files in place according to Options.
type Cleaner struct {
	opts      Options
	backupDir string // resolved timestamped dir, created lazily
	log       *internal.Logger
}

// NewCleaner creates a Cleaner. An empty DropPrefix falls back to
// DefaultDropPrefix.
func NewCleaner(opts Options, log *internal.Logger) *Cleaner {
	if opts.DropPrefix == "" {
		opts.DropPrefix = DefaultDropPrefix
	}
	if opts.BackupDir == "" {
		opts.BackupDir = "backup"
	}
	if log == nil {
		log = internal.DefaultLogger
	}
	return &Cleaner{opts: opts, log: log}
}

// CleanFile cleans one file in place, reading and writing in enc. The first
// physical line is always dropped. Returns kept/dropped line counts.
func (c *Cleaner) CleanFile(path string, enc encoding.Encoding) (Result, error) {
	if c.opts.DryRun {
		return c.countOnly(path, enc)
	}

	if c.opts.Backup {
		if err := c.backupFile(path); err != nil {
			return Result{}, err
		}
	}

	in, err := os.Open(path)
	if err != nil {
		return Result{}, errors.IOError("failed to open csv file", err)
	}
	defer in.Close()

	tmpPath := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	out, err := os.Create(tmpPath)
	if err != nil {
		return Result{}, errors.IOError("failed to create temp artifact", err)
	}
	defer out.Close()
	defer os.Remove(tmpPath)

	w := csvio.NewEncodedWriter(out, enc)
	res, err := c.cleanLines(in, enc, w)
	if err != nil {
		return Result{}, err
	}
	if err := w.Close(); err != nil {
		return Result{}, errors.IOError("failed to flush cleaned output", err)
	}
	if err := out.Close(); err != nil {
		return Result{}, errors.IOError("failed to close temp artifact", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return Result{}, errors.IOError("failed to replace original file", err)
	}
	return res, nil
}

func (c *Cleaner) cleanLines(in io.Reader, enc encoding.Encoding, w *csvio.EncodedWriter) (Result, error) {
	var res Result

	scanner := bufio.NewScanner(transform.NewReader(in, enc.NewDecoder()))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		// The export's first physical line is tool noise, always dropped.
		if lineNumber == 1 {
			res.Dropped++
			continue
		}
		if c.shouldDrop(line) {
			res.Dropped++
			continue
		}

		cells, ok := csvio.ParseLine(line)
		if !ok {
			// Keep unparsable lines verbatim rather than risking data loss.
			if err := w.WriteRaw(line); err != nil {
				return res, errors.IOError("failed to write raw line", err)
			}
			res.Kept++
			continue
		}

		cleaned := make([]string, len(cells))
		for i, cell := range cells {
			cleaned[i] = unwrapTextFormula(cell)
		}
		if err := w.Write(cleaned); err != nil {
			return res, errors.IOError("failed to write cleaned row", err)
		}
		res.Kept++
	}
	if err := scanner.Err(); err != nil {
		return res, errors.IOError("failed to read csv file", err)
	}
	return res, nil
}

func (c *Cleaner) countOnly(path string, enc encoding.Encoding) (Result, error) {
	in, err := os.Open(path)
	if err != nil {
		return Result{}, errors.IOError("failed to open csv file", err)
	}
	defer in.Close()

	var res Result
	scanner := bufio.NewScanner(transform.NewReader(in, enc.NewDecoder()))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if lineNumber == 1 || c.shouldDrop(scanner.Text()) {
			res.Dropped++
		} else {
			res.Kept++
		}
	}
	if err := scanner.Err(); err != nil {
		return res, errors.IOError("failed to read csv file", err)
	}
	return res, nil
}

// shouldDrop classifies one line, first physical line excluded.
func (c *Cleaner) shouldDrop(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}

	cells, ok := csvio.ParseLine(line)
	if !ok {
		// Unparsable lines are kept rather than risking data loss.
		return false
	}

	first := ""
	empty := true
	for _, cell := range cells {
		if v := normalizeCell(cell); v != "" {
			if empty {
				first = v
			}
			empty = false
		}
	}
	if empty {
		return true
	}
	return strings.HasPrefix(first, c.opts.DropPrefix)
}

// backupFile copies the original into a timestamped run directory under the
// backup root before the first rewrite touches it.
func (c *Cleaner) backupFile(path string) error {
	if c.backupDir == "" {
		dir := filepath.Join(filepath.Dir(path), c.opts.BackupDir, time.Now().Format("20060102_150405"))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.IOError("failed to create backup directory", err)
		}
		c.backupDir = dir
	}

	src, err := os.Open(path)
	if err != nil {
		return errors.IOError("failed to open file for backup", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(c.backupDir, filepath.Base(path)))
	if err != nil {
		return errors.IOError("failed to create backup file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.IOError("failed to copy backup", err)
	}
	return dst.Close()
}

// BackupDir returns the resolved backup directory for this run, or "" when
// no backup has been written yet.
func (c *Cleaner) BackupDir() string {
	return c.backupDir
}

// normalizeCell prepares a cell for matching, handling common Excel export
// patterns like ="主要人员 2" or quoted padding.
func normalizeCell(cell string) string {
	v := strings.TrimSpace(cell)
	if strings.HasPrefix(v, "=") {
		v = strings.TrimLeft(v[1:], " \t")
	}
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	return strings.TrimSpace(v)
}

// unwrapTextFormula converts the Excel "text as formula" pattern ="00123"
// (or ='00123') back into the plain value so leading zeros survive the round
// trip. Only that exact shape is unwrapped; genuine formulas pass through.
func unwrapTextFormula(cell string) string {
	raw := strings.TrimSpace(cell)
	if !strings.HasPrefix(raw, "=") {
		return cell
	}

	expr := strings.TrimLeft(raw[1:], " \t")
	if len(expr) >= 2 {
		if (expr[0] == '"' && expr[len(expr)-1] == '"') || (expr[0] == '\'' && expr[len(expr)-1] == '\'') {
			return expr[1 : len(expr)-1]
		}
	}
	return cell
}
