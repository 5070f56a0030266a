// Package excel is the workbook boundary: it reads already-uniform sheets
// for the merger and writes normalized tables for the reshaper.
package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadSheet reads the first worksheet of the workbook at path into
// structured form. Headers are taken from the first row, trimmed; data cells
// are keyed by header and trimmed. Cells beyond the header width are
// dropped.
func ReadSheet(path string) (*SheetData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets: %s", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &SheetData{}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var dataRows []RawRowData
	for i := 1; i < len(rows); i++ {
		rowData := make(RawRowData)
		for j, cell := range rows[i] {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return &SheetData{Headers: headers, Rows: dataRows}, nil
}
