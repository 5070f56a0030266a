package excel

// RawRowData represents a row of sheet data as string key-value pairs
type RawRowData map[string]string

// SheetData represents one worksheet's contents
type SheetData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
}
