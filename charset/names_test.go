package charset

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"UTF8", "UTF-8"},
		{"utf8", "UTF-8"},
		{"UTF16", "UTF-16"},
		{"UTF16LE", "UTF-16LE"},
		{"utf16le", "UTF-16LE"},
		{"UTF16BE", "UTF-16BE"},
		{"utf16Be", "UTF-16BE"},
		{"UTF32", "UTF-32"},
		{"UTF32LE", "UTF-32LE"},
		{"UTF32BE", "UTF-32BE"},
		{"utf32be", "UTF-32BE"},
		{"UTF7", "UTF-7"},
		{"utf7", "UTF-7"},

		// Already canonical names pass through unchanged.
		{"UTF-8", "UTF-8"},
		{"UTF-16LE", "UTF-16LE"},

		// No match: unknown digit groups and trailing characters.
		{"UTF99", "UTF99"},
		{"UTF16XX", "UTF16XX"},
		{"UTF8X", "UTF8X"},
		{"UTF open", "UTF open"},

		// Non-UTF names are untouched.
		{"ISO-8859-1", "ISO-8859-1"},
		{"SHIFT_JIS", "SHIFT_JIS"},
		{"", ""},
		{"UTF", "UTF"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsUTF8(t *testing.T) {
	for _, name := range []string{"UTF-8", "utf-8", "UTF8", "utf8"} {
		if !IsUTF8(name) {
			t.Errorf("IsUTF8(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"UTF-16", "latin1", "ascii"} {
		if IsUTF8(name) {
			t.Errorf("IsUTF8(%q) = true, want false", name)
		}
	}
}
