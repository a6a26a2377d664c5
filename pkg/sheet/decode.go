package sheet

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts a downloaded payload to text.
// A leading UTF-8 byte order mark is dropped. Payloads that are not valid
// UTF-8 are decoded as UTF-16 (little endian unless a BOM says otherwise),
// with invalid sequences replaced by U+FFFD.
func Decode(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data)
	}

	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		// Not reachable with a replacing decoder; keep the readable part.
		return string(bytes.ToValidUTF8(data, []byte("�")))
	}
	return string(out)
}
