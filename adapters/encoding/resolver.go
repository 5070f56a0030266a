package encoding

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// sampleSize is how many bytes of a file the resolver inspects. Matches the
// 8 KiB probe the export tooling has always used.
const sampleSize = 8192

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Resolver picks an encoding for a file by probing a leading sample against
// the candidate list in priority order. It never fails: when nothing decodes
// cleanly it falls back to the permissive UTF-8-SIG default.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the encoding to use for the file at path.
func (r *Resolver) Resolve(path string) Encoding {
	f, err := os.Open(path)
	if err != nil {
		return UTF8SIG
	}
	defer f.Close()

	sample := make([]byte, sampleSize)
	n, err := io.ReadFull(f, sample)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return UTF8SIG
	}
	sample = sample[:n]

	return ResolveSample(sample)
}

// ResolveSample picks an encoding for a raw byte sample.
func ResolveSample(sample []byte) Encoding {
	if len(sample) == 0 {
		return UTF8SIG
	}

	if bytes.HasPrefix(sample, utf8BOM) && utf8.Valid(sample[len(utf8BOM):]) {
		return UTF8SIG
	}
	if utf8.Valid(sample) {
		return UTF8
	}
	for _, e := range []Encoding{GB18030, GBK} {
		if decodesCleanly(e, sample) {
			return e
		}
	}
	return UTF8SIG
}

// decodesCleanly reports whether the sample decodes without substituting
// replacement runes. The final rune is exempt: the sample boundary may have
// cut a multi-byte sequence in half.
func decodesCleanly(e Encoding, sample []byte) bool {
	decoded, err := e.NewDecoder().Bytes(sample)
	if err != nil {
		return false
	}
	s := string(decoded)
	if r, size := utf8.DecodeLastRuneInString(s); r == utf8.RuneError && size > 0 {
		s = s[:len(s)-size]
	}
	return !strings.ContainsRune(s, utf8.RuneError)
}
