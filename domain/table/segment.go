package table

// Segment is a contiguous run of grid rows belonging to one group label: the
// label row itself, one header row, and the data rows that follow until the
// next label row or the end of the grid.
type Segment struct {
	GroupLabel string
	Header     Row
	Rows       []Row
}

// Complete reports whether the segment may be emitted: it needs a captured
// header and at least one data row. Incomplete segments (stray labels,
// trailing summary blocks) are discarded, not errors.
func (s *Segment) Complete() bool {
	return s.Header != nil && len(s.Rows) > 0
}

// Record is one normalized output row: a value for every schema column, with
// unmapped columns left missing.
type Record map[string]Cell

// Table is the normalized result of reshaping one source file. Columns is the
// global schema in its deterministic order, group-label column last.
type Table struct {
	Columns []string
	Records []Record
}

// Empty reports whether the table carries no output rows.
func (t *Table) Empty() bool {
	return len(t.Records) == 0
}
