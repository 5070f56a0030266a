// Package reshape reconstructs ragged, header-less CSV grids into one
// normalized table. Exports from the upstream registry tooling arrive as a
// series of blocks: a row holding only a group label (公司名称 in the
// original data), a header row for that block, then its data rows. The
// scanner recovers those blocks, the unifier computes one global column set
// and the mapper projects every data row onto it.
package reshape

import (
	"sheetprep/domain/table"
)

// scanState is the scanner's position in the row classification machine.
type scanState int

const (
	// seekingGroup: no group label is active; only a label row starts work.
	seekingGroup scanState = iota
	// seekingHeader: a label is active, the next populated row is its header.
	seekingHeader
	// collectingData: label and header are set, populated rows are data.
	collectingData
)

// Scan walks the grid once, row by row, and returns the sealed segments in
// order. Segments without a header or without data rows are discarded.
//
// A row whose sole non-missing cell is its only content is always a new
// group-label row, even while data is being collected: single-value data
// rows are indistinguishable from group markers, and the exports this tool
// processes use them exclusively as markers.
func Scan(g table.Grid) []*table.Segment {
	var segments []*table.Segment
	var current *table.Segment
	state := seekingGroup

	seal := func() {
		if current != nil && current.Complete() {
			segments = append(segments, current)
		}
		current = nil
	}

	for _, row := range g.Rows {
		if row.IsEmpty() {
			// Fully blank rows are transparent separators in every state.
			continue
		}

		if row.NonMissing() == 1 {
			seal()
			current = &table.Segment{GroupLabel: row.FirstNonMissing().Value}
			state = seekingHeader
			continue
		}

		switch state {
		case seekingGroup:
			// Populated rows before the first group label belong to nothing.
		case seekingHeader:
			current.Header = row
			state = collectingData
		case collectingData:
			current.Rows = append(current.Rows, row)
		}
	}

	seal()
	return segments
}
