// Package ports holds the interfaces the application services depend on,
// keeping the batch orchestration decoupled from the file-format adapters.
package ports

import (
	"sheetprep/adapters/encoding"
	"sheetprep/domain/table"
)

// EncodingResolver picks a text encoding for a file. Implementations never
// fail; they fall back to a permissive default instead.
type EncodingResolver interface {
	Resolve(path string) encoding.Encoding
}

// GridLoader reads one raw export into a rectangular grid.
type GridLoader interface {
	LoadGrid(path string, enc encoding.Encoding) (table.Grid, error)
}

// TableWriter persists a normalized table as one spreadsheet artifact,
// finalized atomically.
type TableWriter interface {
	WriteTable(path string, t *table.Table) error
}
