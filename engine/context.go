package engine

import (
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/wippyai/iconv/charset"
	"github.com/wippyai/iconv/errors"
)

// Context owns one open, stateful conversion context bound to a fixed
// (source, target) encoding pair for its lifetime. It is not safe for
// concurrent use: the underlying transformer chain carries shift state
// between calls, and two callers sharing a context get undefined
// conversion results. Close releases the context; at most once, and the
// context must not be used afterwards.
type Context struct {
	tr     transform.Transformer
	source string
	target string
	max    int
	closed bool
}

// Option configures a Context at open time.
type Option func(*Context)

// WithMaxOutput caps the output buffer growth at n bytes. A conversion
// whose output would exceed the cap fails with an out_of_memory error.
// Zero means unbounded, the default.
func WithMaxOutput(n int) Option {
	return func(c *Context) {
		c.max = n
	}
}

// Open creates a conversion context. The argument order is (target,
// source), following the underlying converter primitive's convention;
// the public API layer performs the swap and keeps its own (source,
// target) order.
//
// Both names go through charset normalization and resolution. Open
// fails with an unsupported error, carrying the resolver diagnostic,
// when either encoding has no converter.
func Open(target, source string, opts ...Option) (*Context, error) {
	srcEnc, err := charset.Lookup(source)
	if err != nil {
		return nil, errors.Unsupported(source, target, err)
	}
	dstEnc, err := charset.Lookup(target)
	if err != nil {
		return nil, errors.Unsupported(source, target, err)
	}

	// The pivot format is UTF-8: decode source to UTF-8, encode UTF-8
	// to target. Either leg collapses when the pair endpoint already is
	// UTF-8, with a validator keeping the decode leg strict.
	var links []transform.Transformer
	if charset.IsUTF8(source) {
		links = append(links, encoding.UTF8Validator)
	} else {
		links = append(links, srcEnc.NewDecoder())
	}
	if !charset.IsUTF8(target) {
		links = append(links, dstEnc.NewEncoder())
	}

	var tr transform.Transformer
	if len(links) == 1 {
		tr = links[0]
	} else {
		tr = transform.Chain(links...)
	}

	c := &Context{
		tr:     tr,
		source: source,
		target: target,
	}
	for _, opt := range opts {
		opt(c)
	}

	Logger().Debug("opened context",
		zap.String("source", source),
		zap.String("target", target))
	return c, nil
}

// Source returns the source encoding name as supplied at open time.
func (c *Context) Source() string {
	return c.source
}

// Target returns the target encoding name as supplied at open time.
func (c *Context) Target() string {
	return c.target
}

// Close releases the context. Calling Close twice, or using the context
// after Close, returns a closed error.
func (c *Context) Close() error {
	if c.closed {
		return errors.Closed(errors.PhaseConvert)
	}
	c.closed = true
	c.tr = nil
	Logger().Debug("closed context",
		zap.String("source", c.source),
		zap.String("target", c.target))
	return nil
}
