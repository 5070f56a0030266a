package excel

import (
	"fmt"
	"os"

	"sheetprep/domain/table"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// WriteTable writes a normalized table to an xlsx workbook at path. Missing
// cells are left blank. The workbook is saved to a temporary sibling first
// and renamed into place, so a destination is only ever replaced by a fully
// written artifact.
func WriteTable(path string, t *table.Table) error {
	rows := make([][]string, 0, len(t.Records))
	for _, rec := range t.Records {
		row := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			row[i] = rec[col].String()
		}
		rows = append(rows, row)
	}
	return WriteRows(path, t.Columns, rows)
}

// WriteRows writes a header row and data rows to Sheet1 of a new workbook,
// finalized atomically.
func WriteRows(path string, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, row := range rows {
		rowIdx := r + 2
		for c, v := range row {
			if v == "" {
				continue // blank cell renders as null downstream
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	tmp := fmt.Sprintf("%s.%s.tmp.xlsx", path, uuid.NewString())
	if err := f.SaveAs(tmp); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
