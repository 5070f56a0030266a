package reshape

import (
	"testing"

	"sheetprep/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRecordsPositionalMapping(t *testing.T) {
	segments := []*table.Segment{
		seg("CompanyA", []string{"Name", "Age"}, []string{"Alice", "30"}),
		seg("CompanyB", []string{"Name", "City"}, []string{"Bob", "NYC"}),
	}
	columns := Unify(segments, "group label")

	records := MapRecords(segments, columns, "group label")
	require.Len(t, records, 2)

	assert.Equal(t, "Alice", records[0]["Name"].Value)
	assert.Equal(t, "30", records[0]["Age"].Value)
	assert.False(t, records[0]["City"].Valid)
	assert.Equal(t, "CompanyA", records[0]["group label"].Value)

	assert.Equal(t, "Bob", records[1]["Name"].Value)
	assert.False(t, records[1]["Age"].Valid)
	assert.Equal(t, "NYC", records[1]["City"].Value)
	assert.Equal(t, "CompanyB", records[1]["group label"].Value)
}

func TestMapRecordsRowWiderThanHeader(t *testing.T) {
	// Scenario D: header length 2, row length 4 -> extra values dropped.
	s := &table.Segment{
		GroupLabel: "A",
		Header:     table.NewRow([]string{"h1", "h2"}),
		Rows:       []table.Row{table.NewRow([]string{"v1", "v2", "v3", "v4"})},
	}
	columns := Unify([]*table.Segment{s}, "g")

	records := MapRecords([]*table.Segment{s}, columns, "g")
	require.Len(t, records, 1)
	assert.Equal(t, "v1", records[0]["h1"].Value)
	assert.Equal(t, "v2", records[0]["h2"].Value)
	assert.Len(t, records[0], 3) // h1, h2, g
}

func TestMapRecordsMissingHeaderPositionDropped(t *testing.T) {
	s := seg("A", []string{"h1", "", "h3"}, []string{"v1", "v2", "v3"})
	columns := Unify([]*table.Segment{s}, "g")

	records := MapRecords([]*table.Segment{s}, columns, "g")
	require.Len(t, records, 1)
	assert.Equal(t, "v1", records[0]["h1"].Value)
	assert.Equal(t, "v3", records[0]["h3"].Value)
	_, present := records[0]["v2"]
	assert.False(t, present)
}

func TestMapRecordsGroupLabelWinsCollision(t *testing.T) {
	// A real header named like the group column is overridden by the label.
	s := seg("CompanyA", []string{"Name", "公司名称"}, []string{"Alice", "shadow"})
	columns := Unify([]*table.Segment{s}, "公司名称")

	records := MapRecords([]*table.Segment{s}, columns, "公司名称")
	require.Len(t, records, 1)
	assert.Equal(t, "CompanyA", records[0]["公司名称"].Value)
}

func TestMapRecordsGroupLabelAlwaysPopulated(t *testing.T) {
	segments := []*table.Segment{
		seg("A", []string{"x"}, []string{""}, []string{"1"}),
		seg("B", []string{"y", "z"}, []string{"2", "3"}),
	}
	columns := Unify(segments, "g")

	for _, rec := range MapRecords(segments, columns, "g") {
		assert.True(t, rec["g"].Valid)
	}
}

func TestMapRecordsOrderIsSegmentThenRow(t *testing.T) {
	segments := []*table.Segment{
		seg("A", []string{"x"}, []string{"1", "extra"}, []string{"2", "extra"}),
		seg("B", []string{"x"}, []string{"3", "extra"}),
	}
	columns := Unify(segments, "g")

	records := MapRecords(segments, columns, "g")
	require.Len(t, records, 3)
	assert.Equal(t, "1", records[0]["x"].Value)
	assert.Equal(t, "2", records[1]["x"].Value)
	assert.Equal(t, "3", records[2]["x"].Value)
}
