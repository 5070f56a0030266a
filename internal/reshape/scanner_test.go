package reshape

import (
	"testing"

	"sheetprep/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(rows ...[]string) table.Grid {
	rs := make([]table.Row, len(rows))
	for i, r := range rows {
		rs[i] = table.NewRow(r)
	}
	return table.NewGrid(rs)
}

func TestScanBasicSegments(t *testing.T) {
	g := grid(
		[]string{"CompanyA"},
		[]string{"Name", "Age"},
		[]string{"Alice", "30"},
		[]string{"CompanyB"},
		[]string{"Name", "City"},
		[]string{"Bob", "NYC"},
	)

	segments := Scan(g)
	require.Len(t, segments, 2)

	assert.Equal(t, "CompanyA", segments[0].GroupLabel)
	assert.Equal(t, "Name", segments[0].Header[0].Value)
	assert.Equal(t, "Age", segments[0].Header[1].Value)
	require.Len(t, segments[0].Rows, 1)
	assert.Equal(t, "Alice", segments[0].Rows[0][0].Value)

	assert.Equal(t, "CompanyB", segments[1].GroupLabel)
	assert.Equal(t, "City", segments[1].Header[1].Value)
}

func TestScanGroupLabelPositionIrrelevant(t *testing.T) {
	// The sole non-missing cell may sit anywhere in the row.
	g := grid(
		[]string{"", "CompanyA", ""},
		[]string{"Name", "Age", ""},
		[]string{"Alice", "30", ""},
	)

	segments := Scan(g)
	require.Len(t, segments, 1)
	assert.Equal(t, "CompanyA", segments[0].GroupLabel)
}

func TestScanLabelWithoutHeaderDiscarded(t *testing.T) {
	// Scenario B: a group-label row immediately followed by another one.
	g := grid(
		[]string{"CompanyA"},
		[]string{"CompanyB"},
		[]string{"Name", "Age"},
		[]string{"Alice", "30"},
	)

	segments := Scan(g)
	require.Len(t, segments, 1)
	assert.Equal(t, "CompanyB", segments[0].GroupLabel)
}

func TestScanHeaderWithoutDataDiscarded(t *testing.T) {
	g := grid(
		[]string{"CompanyA"},
		[]string{"Name", "Age"},
		[]string{"CompanyB"},
		[]string{"Name", "City"},
		[]string{"Bob", "NYC"},
	)

	segments := Scan(g)
	require.Len(t, segments, 1)
	assert.Equal(t, "CompanyB", segments[0].GroupLabel)
}

func TestScanBlankRowsAreTransparent(t *testing.T) {
	// Scenario C: a fully blank row inside data collection does not end the
	// segment and does not appear in its rows.
	g := grid(
		[]string{"CompanyA"},
		[]string{"", "", ""},
		[]string{"Name", "Age"},
		[]string{"Alice", "30"},
		[]string{"", "", ""},
		[]string{"Carol", "41"},
	)

	segments := Scan(g)
	require.Len(t, segments, 1)
	assert.Len(t, segments[0].Rows, 2)
}

func TestScanSingleValueRowStartsNewSegment(t *testing.T) {
	// Group-row detection takes precedence over data collection: a row with
	// exactly one populated cell is never a one-column data row.
	g := grid(
		[]string{"CompanyA"},
		[]string{"Name", "Age"},
		[]string{"Alice", "30"},
		[]string{"loner", ""},
		[]string{"Name", "Age"},
		[]string{"Bob", "33"},
	)

	segments := Scan(g)
	require.Len(t, segments, 2)
	assert.Equal(t, "loner", segments[1].GroupLabel)
	assert.Len(t, segments[0].Rows, 1)
}

func TestScanRowsBeforeFirstLabelDropped(t *testing.T) {
	g := grid(
		[]string{"noise", "noise"},
		[]string{"CompanyA"},
		[]string{"Name", "Age"},
		[]string{"Alice", "30"},
	)

	segments := Scan(g)
	require.Len(t, segments, 1)
	assert.Equal(t, "CompanyA", segments[0].GroupLabel)
}

func TestScanTrailingIncompleteSegmentDiscarded(t *testing.T) {
	g := grid(
		[]string{"CompanyA"},
		[]string{"Name", "Age"},
		[]string{"Alice", "30"},
		[]string{"合计"},
	)

	segments := Scan(g)
	require.Len(t, segments, 1)
	assert.Equal(t, "CompanyA", segments[0].GroupLabel)
}

func TestScanEmptyGrid(t *testing.T) {
	assert.Empty(t, Scan(table.Grid{}))
}

func TestScanEmittedSegmentsAlwaysComplete(t *testing.T) {
	// Segment completeness holds for every emitted segment regardless of
	// input shape.
	grids := []table.Grid{
		grid([]string{"A"}),
		grid([]string{"A"}, []string{"h1", "h2"}),
		grid([]string{"A"}, []string{"B"}, []string{"C"}),
		grid([]string{"x", "y"}, []string{"z", "w"}),
		grid([]string{"A"}, []string{"h1", "h2"}, []string{"v1", "v2"}, []string{"B"}),
	}

	for _, g := range grids {
		for _, seg := range Scan(g) {
			assert.True(t, seg.Complete())
			assert.NotEmpty(t, seg.Header)
			assert.NotEmpty(t, seg.Rows)
		}
	}
}
