package reshape

import (
	"sheetprep/domain/table"
)

// Unify computes the global column ordering for a sealed segment sequence:
// every distinct non-missing header value in first-appearance order (segment
// order, then left to right within a header), with the synthetic group-label
// column appended exactly once at the end.
//
// A header value that collides with the group-label column name contributes
// no interior column; the group label owns that name. The seen-set lives for
// this call only, there is no cross-file sharing.
func Unify(segments []*table.Segment, groupColumn string) []string {
	seen := make(map[string]struct{})
	var columns []string

	for _, seg := range segments {
		for _, cell := range seg.Header {
			if !cell.Valid || cell.Value == groupColumn {
				continue
			}
			if _, ok := seen[cell.Value]; ok {
				continue
			}
			seen[cell.Value] = struct{}{}
			columns = append(columns, cell.Value)
		}
	}

	return append(columns, groupColumn)
}
