package reshape

import (
	"sheetprep/domain/table"
)

// MapRecords projects every data row of every segment onto the global
// columns, one record per row, in segment order then within-segment order.
//
// Values map positionally through the owning segment's header: positions
// beyond the header's length, or aligned with a missing header cell, are
// dropped. Unmapped columns stay missing. The group-label column is always
// stamped from the segment's label last, so it wins any collision with a
// real header of the same name.
func MapRecords(segments []*table.Segment, columns []string, groupColumn string) []table.Record {
	var records []table.Record

	for _, seg := range segments {
		for _, row := range seg.Rows {
			rec := make(table.Record, len(columns))
			for _, col := range columns {
				rec[col] = table.Missing()
			}

			for idx, cell := range row {
				if idx >= len(seg.Header) {
					break
				}
				header := seg.Header[idx]
				if !header.Valid {
					continue
				}
				rec[header.Value] = cell
			}

			rec[groupColumn] = table.NewCell(seg.GroupLabel)
			records = append(records, rec)
		}
	}

	return records
}
