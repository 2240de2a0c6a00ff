package iconv

import (
	"github.com/wippyai/iconv/engine"
)

// Iconv is a conversion handle bound to a fixed (source, target)
// encoding pair for its lifetime. It owns one stateful converter
// context: one logical caller at a time, Close at most once, no use
// after Close.
type Iconv struct {
	ctx    *engine.Context
	source string
	target string
}

// Option configures a handle at construction time.
type Option = engine.Option

// WithMaxOutput caps output buffer growth at n bytes per conversion.
// Conversions whose output would exceed the cap fail with an
// out_of_memory error. Zero means unbounded, the default.
func WithMaxOutput(n int) Option {
	return engine.WithMaxOutput(n)
}

// New opens a conversion handle from sourceEncoding to targetEncoding.
// Names are normalized first, so "UTF8" and "utf-8" both work. New
// fails with an unsupported error when no converter exists for the
// pair.
//
// The underlying converter primitive takes its arguments in (target,
// source) order, the reverse of this function. The swap happens here
// and is intentional: the public (source, target) order reads more
// naturally.
func New(sourceEncoding, targetEncoding string, opts ...Option) (*Iconv, error) {
	ctx, err := engine.Open(targetEncoding, sourceEncoding, opts...)
	if err != nil {
		return nil, err
	}
	return &Iconv{
		ctx:    ctx,
		source: sourceEncoding,
		target: targetEncoding,
	}, nil
}

// Source returns the source encoding name as supplied to New.
func (c *Iconv) Source() string {
	return c.source
}

// Target returns the target encoding name as supplied to New.
func (c *Iconv) Target() string {
	return c.target
}

// Convert transcodes input and returns a freshly allocated buffer
// trimmed to the exact output size. A failure returns zero usable
// bytes; the handle stays valid for further calls.
func (c *Iconv) Convert(input []byte) ([]byte, error) {
	return engine.Convert(c.ctx, input)
}

// ConvertString transcodes the UTF-8 bytes of s.
func (c *Iconv) ConvertString(s string) ([]byte, error) {
	return engine.Convert(c.ctx, []byte(s))
}

// ConvertValue is the permissive boundary for binding layers: a string
// converts as its UTF-8 bytes, a []byte converts as-is, and any other
// shape is a no-op returning (nil, nil) rather than an error. Callers
// depending on the no-op should keep depending on it; the behavior is
// deliberate.
func (c *Iconv) ConvertValue(v any) ([]byte, error) {
	switch in := v.(type) {
	case string:
		return c.ConvertString(in)
	case []byte:
		return c.Convert(in)
	default:
		return nil, nil
	}
}

// Close releases the converter context. At most once; conversions after
// Close fail with a closed error.
func (c *Iconv) Close() error {
	return c.ctx.Close()
}
