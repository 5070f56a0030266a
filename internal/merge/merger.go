// Package merge concatenates the already-normalized workbooks in a folder
// into one, taking the union of their columns.
package merge

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sheetprep/adapters/excel"
	"sheetprep/internal"
	"sheetprep/internal/errors"
)

// DefaultOutputName is the merged workbook written into the source folder.
const DefaultOutputName = "merged_output.xlsx"

// Result reports what a merge run produced.
type Result struct {
	FilesMerged int
	RowCount    int
	ColumnCount int
	OutputPath  string
}

// Merger combines xlsx files by row concatenation over a unified column set.
type Merger struct {
	log *internal.Logger
}

// NewMerger creates a Merger.
func NewMerger(log *internal.Logger) *Merger {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &Merger{log: log}
}

// MergeFolder reads every .xlsx in dir (sorted name order, the output file
// itself excluded), concatenates their rows over the sorted union of all
// columns and writes the result to outputName inside dir. Cells absent from
// a source file stay blank. A workbook that cannot be read is reported and
// skipped. With zero readable workbooks no output is written.
func (m *Merger) MergeFolder(dir, outputName string) (*Result, error) {
	if outputName == "" {
		outputName = DefaultOutputName
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.IOError("failed to list folder", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), ".xlsx") {
			continue
		}
		if name == outputName || strings.HasPrefix(name, "~$") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var sheets []*excel.SheetData
	columnSet := make(map[string]struct{})
	for _, name := range names {
		path := filepath.Join(dir, name)
		m.log.Info("[Merger] reading %s", name)

		data, err := excel.ReadSheet(path)
		if err != nil {
			m.log.Error("[Merger] skipping %s: %v", name, err)
			continue
		}
		sheets = append(sheets, data)
		for _, h := range data.Headers {
			if h != "" {
				columnSet[h] = struct{}{}
			}
		}
	}

	if len(sheets) == 0 {
		m.log.Warn("[Merger] no xlsx files to merge in %s", dir)
		return &Result{}, nil
	}

	columns := make([]string, 0, len(columnSet))
	for col := range columnSet {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	var rows [][]string
	for _, data := range sheets {
		for _, src := range data.Rows {
			row := make([]string, len(columns))
			for i, col := range columns {
				row[i] = src[col]
			}
			rows = append(rows, row)
		}
	}

	outputPath := filepath.Join(dir, outputName)
	if err := excel.WriteRows(outputPath, columns, rows); err != nil {
		return nil, errors.IOError("failed to write merged workbook", err)
	}

	m.log.Info("[Merger] wrote %s (%d files, %d rows, %d columns)",
		outputName, len(sheets), len(rows), len(columns))

	return &Result{
		FilesMerged: len(sheets),
		RowCount:    len(rows),
		ColumnCount: len(columns),
		OutputPath:  outputPath,
	}, nil
}
