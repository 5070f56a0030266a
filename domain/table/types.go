package table

import "strings"

// Cell is an optional string value. Valid is false when the source cell was
// empty after trimming, which the pipeline treats as "missing". Rows built
// through NewCell always hold trimmed values, so two cells compare equal with
// plain == exactly when their trimmed string forms match.
type Cell struct {
	Value string
	Valid bool
}

// NewCell builds a Cell from a raw source string. Leading and trailing
// whitespace is stripped; an empty result is a missing cell.
func NewCell(raw string) Cell {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Cell{}
	}
	return Cell{Value: v, Valid: true}
}

// Missing is the zero Cell, kept as a named constructor for readability at
// call sites that pad or default.
func Missing() Cell {
	return Cell{}
}

// String returns the cell's value, or "" for a missing cell. This is the
// blank/null rendering downstream spreadsheet tools expect.
func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	return c.Value
}

// Row is an ordered sequence of cells with a width fixed by its Grid.
type Row []Cell

// NewRow converts raw source fields into a Row.
func NewRow(fields []string) Row {
	row := make(Row, len(fields))
	for i, f := range fields {
		row[i] = NewCell(f)
	}
	return row
}

// NonMissing returns the number of cells holding a value.
func (r Row) NonMissing() int {
	n := 0
	for _, c := range r {
		if c.Valid {
			n++
		}
	}
	return n
}

// IsEmpty reports whether every cell in the row is missing.
func (r Row) IsEmpty() bool {
	return r.NonMissing() == 0
}

// FirstNonMissing returns the first cell holding a value, or a missing cell
// when the row is entirely empty.
func (r Row) FirstNonMissing() Cell {
	for _, c := range r {
		if c.Valid {
			return c
		}
	}
	return Cell{}
}

// Grid is the rectangular form of one source file: every row has identical
// length, equal to the maximum row length observed in the file.
type Grid struct {
	Rows []Row
}

// NewGrid builds a Grid from possibly ragged rows, right-padding short rows
// with missing cells so every row has the maximum observed width.
func NewGrid(rows []Row) Grid {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	padded := make([]Row, len(rows))
	for i, r := range rows {
		if len(r) == width {
			padded[i] = r
			continue
		}
		p := make(Row, width)
		copy(p, r)
		padded[i] = p
	}
	return Grid{Rows: padded}
}

// Width returns the uniform row width of the grid, 0 for an empty grid.
func (g Grid) Width() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}
