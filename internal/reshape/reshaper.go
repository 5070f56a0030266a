package reshape

import (
	"sheetprep/domain/table"
)

// DefaultGroupColumn is the synthetic column carrying each record's group
// label, named after the company-name column in the original exports.
const DefaultGroupColumn = "公司名称"

// Reshaper turns segmented grids into normalized tables.
type Reshaper struct {
	groupColumn string
}

// New creates a Reshaper stamping group labels into the given column name.
// An empty name falls back to DefaultGroupColumn.
func New(groupColumn string) *Reshaper {
	if groupColumn == "" {
		groupColumn = DefaultGroupColumn
	}
	return &Reshaper{groupColumn: groupColumn}
}

// GroupColumn returns the configured group-label column name.
func (r *Reshaper) GroupColumn() string {
	return r.groupColumn
}

// Reshape runs the scan/unify/map stages over one grid. It always returns a
// table: a grid with no complete segments yields a table with only the
// group-label column and zero records, never an error.
func (r *Reshaper) Reshape(g table.Grid) *table.Table {
	segments := Scan(g)
	columns := Unify(segments, r.groupColumn)
	records := MapRecords(segments, columns, r.groupColumn)
	return &table.Table{Columns: columns, Records: records}
}
