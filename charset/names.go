package charset

import "strings"

// Normalize rewrites non-hyphenated UTF variant names to the canonical
// hyphenated form: "UTF8" becomes "UTF-8", "utf16le" becomes "UTF-16LE",
// and so on. The underlying converter tables recognize the hyphenated
// names but reject these common spellings.
//
// Any name that does not match a known variant, including names that are
// already canonical and names with trailing characters after the digit
// group ("UTF99", "UTF16XX"), is returned unchanged. Normalize never
// fails.
func Normalize(name string) string {
	if len(name) < 4 || !strings.EqualFold(name[:3], "UTF") {
		return name
	}

	rest := name[3:]
	switch rest[0] {
	case '1':
		s := rest[1:]
		switch {
		case s == "6":
			return "UTF-16"
		case strings.EqualFold(s, "6LE"):
			return "UTF-16LE"
		case strings.EqualFold(s, "6BE"):
			return "UTF-16BE"
		}
	case '3':
		s := rest[1:]
		switch {
		case s == "2":
			return "UTF-32"
		case strings.EqualFold(s, "2LE"):
			return "UTF-32LE"
		case strings.EqualFold(s, "2BE"):
			return "UTF-32BE"
		}
	case '7':
		if len(rest) == 1 {
			return "UTF-7"
		}
	case '8':
		if len(rest) == 1 {
			return "UTF-8"
		}
	}

	return name
}
