// Package charset resolves user-supplied encoding names to converter
// implementations.
//
// Resolution happens in two stages:
//
//  1. Normalize rewrites ambiguous Unicode transformation format names
//     ("UTF8", "utf16le") to the canonical hyphenated spellings the
//     underlying tables recognize. It is a pure string-level shim and
//     never fails.
//  2. Lookup maps a normalized name to an encoding.Encoding, going
//     through the IANA registry index with explicit handling for the
//     byte-order-dependent Unicode encodings.
//
// The encoding tables themselves live in golang.org/x/text and are
// treated as a black box.
package charset
