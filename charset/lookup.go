package charset

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/wippyai/iconv/errors"
)

// Lookup resolves an encoding name to its implementation. The name is
// normalized first, so both "UTF8" and "UTF-8" resolve.
//
// The byte-order-dependent Unicode encodings are resolved explicitly:
// bare "UTF-16"/"UTF-32" honor a BOM when decoding and write big-endian
// with a BOM when encoding, while the LE/BE variants are BOM-less with a
// fixed byte order. Everything else goes through the IANA registry
// index, which matches names and aliases case-insensitively.
//
// Unknown names and registered-but-unimplemented encodings fail with an
// unsupported error carrying the resolver diagnostic.
func Lookup(name string) (encoding.Encoding, error) {
	canonical := Normalize(name)

	switch strings.ToUpper(canonical) {
	case "UTF-8":
		return unicode.UTF8, nil
	case "UTF-16":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case "UTF-16LE":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "UTF-16BE":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case "UTF-32":
		return utf32.UTF32(utf32.BigEndian, utf32.UseBOM), nil
	case "UTF-32LE":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), nil
	case "UTF-32BE":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), nil
	}

	enc, err := ianaindex.IANA.Encoding(canonical)
	if err != nil {
		return nil, errors.UnknownName(name, err)
	}
	if enc == nil {
		// Registered name without an implementation in the index.
		return nil, errors.UnknownName(name, nil)
	}
	return enc, nil
}

// IsUTF8 reports whether a normalized name denotes UTF-8.
func IsUTF8(name string) bool {
	return strings.EqualFold(Normalize(name), "UTF-8")
}
