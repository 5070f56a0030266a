// Package csvio reads and writes the delimited text side of the pipeline:
// the loose grid loader for ragged exports and the encoded line-level
// helpers the cleaner works with.
package csvio

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"sheetprep/adapters/encoding"
	"sheetprep/domain/table"
	"sheetprep/internal/errors"

	"golang.org/x/text/transform"
)

// LoadGrid reads the file at path as loosely structured CSV in the given
// encoding and returns a rectangular grid. Rows of unequal length are
// right-padded with missing cells; undecodable bytes become replacement
// runes. The only failure mode is not being able to read the file at all.
func LoadGrid(path string, enc encoding.Encoding) (table.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Grid{}, errors.IOError("failed to open csv file", err)
	}
	defer f.Close()

	decoded, err := io.ReadAll(transform.NewReader(f, enc.NewDecoder()))
	if err != nil {
		return table.Grid{}, errors.EncodingError("failed to decode csv file", err)
	}

	return table.NewGrid(parseLoose(string(decoded))), nil
}

// parseLoose splits decoded CSV text into rows, tolerating ragged widths and
// malformed quoting. A record that fails to parse is recovered as a single
// opaque cell holding the raw line, never as a failure.
func parseLoose(text string) []table.Row {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows []table.Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if stderrors.As(err, &pe) && pe.Line >= 1 && pe.Line <= len(lines) {
				raw := strings.TrimRight(lines[pe.Line-1], "\r")
				rows = append(rows, table.NewRow([]string{raw}))
			}
			continue
		}
		rows = append(rows, table.NewRow(record))
	}
	return rows
}

// ParseLine splits one physical CSV line into fields. It returns ok=false
// when the line cannot be parsed, in which case callers keep the raw line
// rather than risking data loss.
func ParseLine(line string) ([]string, bool) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	fields, err := r.Read()
	if err != nil {
		return nil, false
	}
	return fields, true
}
