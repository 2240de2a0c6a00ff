package engine

import (
	stderrors "errors"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/wippyai/iconv/errors"
)

// Convert drives the context over input until every byte is consumed,
// returning a fully converted buffer trimmed to exact size. The context
// is reset first, so a context can be reused across independent calls
// without leaking shift state from a prior conversion.
//
// Any failure discards all partial output and releases every
// intermediate allocation before returning.
func Convert(ctx *Context, input []byte) ([]byte, error) {
	if ctx == nil || ctx.closed {
		return nil, errors.Closed(errors.PhaseConvert)
	}

	ctx.tr.Reset()

	buf := newBuffer(ctx.max)
	defer buf.Release()

	src := input
	for len(src) > 0 {
		nDst, nSrc, err := ctx.tr.Transform(buf.Free(), src, false)
		buf.Advance(nDst)
		src = src[nSrc:]

		switch {
		case err == nil:
			// Contract: a nil error means all of src was consumed.

		case stderrors.Is(err, transform.ErrShortDst):
			if !buf.Grow() {
				return nil, errors.OutOfMemory(errors.PhaseConvert, buf.Limit())
			}
			Logger().Debug("output buffer grown", zap.Int("len", buf.Len()))

		case stderrors.Is(err, transform.ErrShortSrc):
			// The entire remaining input is always supplied, so a short
			// source can only mean a truncated trailing sequence.
			return nil, errors.IncompleteSequence(errors.PhaseConvert, err)

		default:
			return nil, classify(errors.PhaseConvert, err)
		}
	}

	// Flush the trailing shift sequence required by stateful targets.
	for {
		nDst, _, err := ctx.tr.Transform(buf.Free(), nil, true)
		buf.Advance(nDst)
		if err == nil {
			break
		}
		if stderrors.Is(err, transform.ErrShortDst) {
			if !buf.Grow() {
				return nil, errors.OutOfMemory(errors.PhaseFlush, buf.Limit())
			}
			continue
		}
		return nil, classify(errors.PhaseFlush, err)
	}

	return buf.Detach(), nil
}

// classify maps a converter primitive error to the library taxonomy at
// the point of detection.
func classify(phase errors.Phase, err error) error {
	Logger().Debug("converter error",
		zap.String("phase", string(phase)),
		zap.Error(err))

	if stderrors.Is(err, encoding.ErrInvalidUTF8) {
		return errors.IllegalSequence(phase, err)
	}

	// Strict encoders report unrepresentable characters through a
	// repertoire error carrying a replacement byte.
	var repertoire interface{ Replacement() byte }
	if stderrors.As(err, &repertoire) {
		return errors.IllegalSequence(phase, err)
	}

	return errors.Other(phase, err)
}
