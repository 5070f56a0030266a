// Package encoding resolves the text encoding of raw CSV exports. Chinese
// spreadsheet tools emit a mix of UTF-8 (with or without BOM), GB18030 and
// GBK, so callers resolve an encoding up front and hand it to the loader.
package encoding

import (
	"strings"

	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is one supported text encoding. The zero value is not usable;
// obtain instances from the package variables or ByName.
type Encoding struct {
	name string
	impl xencoding.Encoding
}

var (
	// UTF8SIG is UTF-8 with an optional byte order mark. Its decoder strips
	// the BOM when present, which is what Excel-exported CSVs need.
	UTF8SIG = Encoding{name: "utf-8-sig", impl: unicode.UTF8BOM}
	UTF8    = Encoding{name: "utf-8", impl: unicode.UTF8}
	GB18030 = Encoding{name: "gb18030", impl: simplifiedchinese.GB18030}
	GBK     = Encoding{name: "gbk", impl: simplifiedchinese.GBK}
)

// Candidates is the fixed priority order used when resolving a file's
// encoding automatically.
var Candidates = []Encoding{UTF8SIG, UTF8, GB18030, GBK}

// Name returns the canonical lowercase name of the encoding.
func (e Encoding) Name() string {
	return e.name
}

// IsZero reports whether the encoding is the unusable zero value.
func (e Encoding) IsZero() bool {
	return e.impl == nil
}

// NewDecoder returns a decoder to UTF-8. Undecodable byte sequences are
// replaced with U+FFFD rather than failing, so reads always produce a result.
func (e Encoding) NewDecoder() *xencoding.Decoder {
	return e.impl.NewDecoder()
}

// NewEncoder returns an encoder from UTF-8 back to this encoding.
func (e Encoding) NewEncoder() *xencoding.Encoder {
	return e.impl.NewEncoder()
}

// ByName looks up an encoding by its canonical name, case-insensitively.
func ByName(name string) (Encoding, bool) {
	for _, e := range Candidates {
		if strings.EqualFold(name, e.name) {
			return e, true
		}
	}
	return Encoding{}, false
}
