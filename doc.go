// Package iconv provides stateful, shift-sequence-aware character
// encoding conversion.
//
// It is the embeddable core beneath higher-level bindings: a handle
// bound to one (source, target) encoding pair converts byte buffers
// synchronously, growing the output as needed and returning exactly-
// sized results or classified failures.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	iconv/        Root package with the Iconv handle and Registry
//	├── charset/  Encoding name normalization and resolution
//	├── engine/   Transcode loop, output buffer grower, converter context
//	├── errors/   Structured error taxonomy
//	└── resource/ Handle table for binding layers
//
// # Quick Start
//
//	cd, err := iconv.New("UTF-8", "SHIFT_JIS")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cd.Close()
//
//	out, err := cd.ConvertString("こんにちは")
//
// # Error Taxonomy
//
// Failures carry a structured kind:
//
//	incomplete_sequence   input ends in a truncated multi-byte sequence
//	illegal_sequence      bytes invalid in the source or unmappable in
//	                      the target encoding
//	out_of_memory         output growth limit reached; treat as resource
//	                      pressure
//	unsupported           no converter for the encoding pair
//	other                 anything else the converter primitive reports
//
// A failure never returns partial output.
//
// # Thread Safety
//
// An Iconv handle is NOT safe for concurrent use: the underlying
// converter context carries shift state between calls. Open one handle
// per goroutine, or serialize access externally. The Registry is safe
// for concurrent use.
package iconv
