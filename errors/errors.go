package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the conversion pipeline the error occurred
type Phase string

const (
	PhaseLookup  Phase = "lookup"  // encoding name resolution
	PhaseOpen    Phase = "open"    // converter context creation
	PhaseConvert Phase = "convert" // main transcoding loop
	PhaseFlush   Phase = "flush"   // trailing shift sequence flush
)

// Kind categorizes the error
type Kind string

const (
	// KindIncompleteSequence: the input ends in a truncated multi-byte
	// sequence. An input-data problem; not retryable without fixing input.
	KindIncompleteSequence Kind = "incomplete_sequence"

	// KindIllegalSequence: a byte sequence is not valid in the source
	// encoding, or a character has no representation in the target.
	KindIllegalSequence Kind = "illegal_sequence"

	// KindOutOfMemory: the output buffer could not grow. Hosts embedding
	// the library should treat this as a resource-pressure signal.
	KindOutOfMemory Kind = "out_of_memory"

	// KindUnsupported: no converter exists for the requested encoding
	// pair. A configuration problem (bad encoding names).
	KindUnsupported Kind = "unsupported"

	// KindClosed: the converter context was used after Close.
	KindClosed Kind = "closed"

	// KindOther: anything else reported by the converter primitive.
	KindOther Kind = "other"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Source string
	Target string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Source != "" || e.Target != "" {
		b.WriteString(": ")
		b.WriteString(e.Source)
		b.WriteString(" -> ")
		b.WriteString(e.Target)
	}

	if e.Detail != "" {
		if e.Source != "" || e.Target != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Pair sets the source and target encoding names
func (b *Builder) Pair(source, target string) *Builder {
	b.err.Source = source
	b.err.Target = target
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// IncompleteSequence creates an error for input ending in a truncated
// multi-byte sequence
func IncompleteSequence(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIncompleteSequence,
		Detail: "incomplete character sequence",
		Cause:  cause,
	}
}

// IllegalSequence creates an error for bytes that are invalid in the
// source encoding or unrepresentable in the target
func IllegalSequence(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIllegalSequence,
		Detail: "illegal character sequence",
		Cause:  cause,
	}
}

// OutOfMemory creates an error for a failed output buffer growth
func OutOfMemory(phase Phase, size int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfMemory,
		Detail: fmt.Sprintf("cannot grow output buffer beyond %d bytes", size),
	}
}

// Unsupported creates an error for an encoding pair with no converter
func Unsupported(source, target string, cause error) *Error {
	return &Error{
		Phase:  PhaseOpen,
		Kind:   KindUnsupported,
		Source: source,
		Target: target,
		Detail: "conversion not supported",
		Cause:  cause,
	}
}

// UnknownName creates an error for an encoding name the resolver does
// not recognize
func UnknownName(name string, cause error) *Error {
	return &Error{
		Phase:  PhaseLookup,
		Kind:   KindUnsupported,
		Detail: fmt.Sprintf("unknown encoding %q", name),
		Cause:  cause,
	}
}

// Closed creates a use-after-close error
func Closed(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: "converter context is closed",
	}
}

// Other wraps an unclassified error from the converter primitive
func Other(phase Phase, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindOther,
		Cause: cause,
	}
}
