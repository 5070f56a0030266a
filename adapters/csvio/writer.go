package csvio

import (
	"bufio"
	"encoding/csv"
	"io"

	"sheetprep/adapters/encoding"

	"golang.org/x/text/transform"
)

// EncodedWriter writes CSV rows through an encoder so cleaned files are
// written back in their original encoding. Close flushes both the CSV buffer
// and the encoder's transform state.
type EncodedWriter struct {
	csv *csv.Writer
	buf *bufio.Writer
	tw  *transform.Writer
}

// NewEncodedWriter wraps w with a CSV writer encoding into enc.
func NewEncodedWriter(w io.Writer, enc encoding.Encoding) *EncodedWriter {
	tw := transform.NewWriter(w, enc.NewEncoder())
	buf := bufio.NewWriter(tw)
	return &EncodedWriter{
		csv: csv.NewWriter(buf),
		buf: buf,
		tw:  tw,
	}
}

// Write emits one CSV record with standard quoting.
func (w *EncodedWriter) Write(record []string) error {
	return w.csv.Write(record)
}

// WriteRaw emits a line verbatim, used to preserve lines that failed to
// parse as CSV.
func (w *EncodedWriter) WriteRaw(line string) error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	if _, err := w.buf.WriteString(line); err != nil {
		return err
	}
	_, err := w.buf.WriteString("\n")
	return err
}

// Close flushes all buffered output and finalizes the encoder.
func (w *EncodedWriter) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	if err := w.buf.Flush(); err != nil {
		return err
	}
	return w.tw.Close()
}
