package csvio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"sheetprep/adapters/encoding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadGridPadsRaggedRows(t *testing.T) {
	path := writeTemp(t, []byte("CompanyA\nName,Age,City\nAlice,30\n"))

	g, err := LoadGrid(path, encoding.UTF8)
	require.NoError(t, err)

	require.Len(t, g.Rows, 3)
	assert.Equal(t, 3, g.Width())
	for _, r := range g.Rows {
		assert.Len(t, r, 3)
	}
	assert.Equal(t, "CompanyA", g.Rows[0][0].Value)
	assert.False(t, g.Rows[0][1].Valid)
	assert.Equal(t, "City", g.Rows[1][2].Value)
}

func TestLoadGridTrimsCells(t *testing.T) {
	path := writeTemp(t, []byte(" Name , Age \n Alice ,  \n"))

	g, err := LoadGrid(path, encoding.UTF8)
	require.NoError(t, err)

	assert.Equal(t, "Name", g.Rows[0][0].Value)
	assert.Equal(t, "Alice", g.Rows[1][0].Value)
	assert.False(t, g.Rows[1][1].Valid)
}

func TestLoadGridQuotedFields(t *testing.T) {
	path := writeTemp(t, []byte("\"a,b\",c\n\"line\nbreak\",d\n"))

	g, err := LoadGrid(path, encoding.UTF8)
	require.NoError(t, err)

	require.Len(t, g.Rows, 2)
	assert.Equal(t, "a,b", g.Rows[0][0].Value)
	assert.Equal(t, "line\nbreak", g.Rows[1][0].Value)
}

func TestLoadGridEmptyFile(t *testing.T) {
	path := writeTemp(t, nil)

	g, err := LoadGrid(path, encoding.UTF8SIG)
	require.NoError(t, err)
	assert.Empty(t, g.Rows)
	assert.Equal(t, 0, g.Width())
}

func TestLoadGridGBKContent(t *testing.T) {
	raw, err := encoding.GBK.NewEncoder().Bytes([]byte("公司名称,年龄\n公司甲,30\n"))
	require.NoError(t, err)
	path := writeTemp(t, raw)

	g, err := LoadGrid(path, encoding.GBK)
	require.NoError(t, err)

	require.Len(t, g.Rows, 2)
	assert.Equal(t, "公司名称", g.Rows[0][0].Value)
	assert.Equal(t, "公司甲", g.Rows[1][0].Value)
}

func TestLoadGridUndecodableBytesDoNotAbort(t *testing.T) {
	// Invalid UTF-8 in the middle of a field: the loader substitutes
	// replacement runes and still produces a grid.
	raw := []byte("a,b\nc,")
	raw = append(raw, 0xFF, 0xFE)
	raw = append(raw, '\n')
	path := writeTemp(t, raw)

	g, err := LoadGrid(path, encoding.UTF8)
	require.NoError(t, err)
	require.Len(t, g.Rows, 2)
	assert.True(t, g.Rows[1][1].Valid)
}

func TestParseLine(t *testing.T) {
	fields, ok := ParseLine(`a,"b,c",d`)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b,c", "d"}, fields)

	_, ok = ParseLine("")
	assert.False(t, ok)
}

func TestEncodedWriterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewEncodedWriter(&buf, encoding.GBK)
	require.NoError(t, w.Write([]string{"公司名称", "年龄"}))
	require.NoError(t, w.Write([]string{"公司甲", "30"}))
	require.NoError(t, w.Close())

	decoded, err := encoding.GBK.NewDecoder().Bytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "公司名称,年龄\n公司甲,30\n", string(decoded))
}

func TestEncodedWriterRawLinePreserved(t *testing.T) {
	var buf bytes.Buffer
	w := NewEncodedWriter(&buf, encoding.UTF8)
	require.NoError(t, w.Write([]string{"a", "b"}))
	require.NoError(t, w.WriteRaw(`broken "quote line`))
	require.NoError(t, w.Close())

	assert.Equal(t, "a,b\nbroken \"quote line\n", buf.String())
}
