// Package errors provides structured error types for the iconv library.
//
// Errors are categorized by Phase (where in the conversion pipeline the
// error occurred) and Kind (error category). The Error type includes the
// encoding pair and cause chain for diagnostics.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindIllegalSequence).
//		Pair("SHIFT_JIS", "UTF-8").
//		Detail("byte 0x80 is not valid in the source encoding").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unsupported("KLINGON", "UTF-8", cause)
//	err := errors.IncompleteSequence(errors.PhaseConvert, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
