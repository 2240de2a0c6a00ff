package engine

import "sync"

const (
	// minBufferSize is the first allocation made by an empty buffer.
	minBufferSize = 16

	// maxPooledSize bounds the backing arrays kept in the pool to
	// prevent memory bloat after a large conversion.
	maxPooledSize = 64 << 10
)

var bufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, minBufferSize)
		return &buf
	},
}

// Buffer is an owned, growable output region with a write cursor. Len
// tracks the allocated length, Used the bytes written so far; Used
// never exceeds Len.
type Buffer struct {
	buf  []byte
	used int
	max  int // growth limit in bytes, 0 means unbounded
}

// newBuffer takes a pooled backing array. Release must be called on
// every exit path once the buffer is no longer needed.
func newBuffer(max int) *Buffer {
	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:cap(*bp)]
	if max > 0 && len(buf) > max {
		buf = buf[:max]
	}
	return &Buffer{buf: buf, max: max}
}

// Free returns the unwritten region of the buffer.
func (b *Buffer) Free() []byte {
	return b.buf[b.used:]
}

// Advance moves the write cursor past n freshly written bytes.
func (b *Buffer) Advance(n int) {
	b.used += n
}

// Used returns the number of bytes written so far.
func (b *Buffer) Used() int {
	return b.used
}

// Len returns the allocated length.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Limit returns the configured growth limit, 0 if unbounded.
func (b *Buffer) Limit() int {
	return b.max
}

// Grow enlarges the buffer to max(16, len*2), preserving written bytes
// and the cursor position. It reports false when the configured limit
// or the platform allocation size is exceeded.
func (b *Buffer) Grow() bool {
	newLen := minBufferSize
	if len(b.buf) > 0 {
		newLen = len(b.buf) * 2
		if newLen <= len(b.buf) { // overflow
			return false
		}
	}
	if b.max > 0 {
		if len(b.buf) >= b.max {
			return false
		}
		if newLen > b.max {
			newLen = b.max
		}
	}

	grown := make([]byte, newLen)
	copy(grown, b.buf[:b.used])
	b.buf = grown
	return true
}

// Detach returns the written bytes trimmed to exact size. The backing
// array stays with the buffer so Release can still pool it.
func (b *Buffer) Detach() []byte {
	out := make([]byte, b.used)
	copy(out, b.buf[:b.used])
	return out
}

// Release returns the backing array to the pool. The buffer must not be
// used afterwards.
func (b *Buffer) Release() {
	if cap(b.buf) < minBufferSize || cap(b.buf) > maxPooledSize {
		b.buf = nil
		return
	}
	buf := b.buf[:cap(b.buf)]
	b.buf = nil
	b.used = 0
	bufPool.Put(&buf)
}
