package engine

import (
	"bytes"
	"testing"
)

func TestBuffer_GrowthPolicy(t *testing.T) {
	var b Buffer

	if !b.Grow() {
		t.Fatal("first grow failed")
	}
	if b.Len() != 16 {
		t.Errorf("first grow: len = %d, want 16", b.Len())
	}

	for _, want := range []int{32, 64, 128} {
		if !b.Grow() {
			t.Fatalf("grow to %d failed", want)
		}
		if b.Len() != want {
			t.Errorf("len = %d, want %d", b.Len(), want)
		}
	}
}

func TestBuffer_GrowPreservesWrittenBytes(t *testing.T) {
	var b Buffer
	b.Grow()

	payload := []byte("0123456789abcdef")
	copy(b.Free(), payload)
	b.Advance(len(payload))

	if !b.Grow() {
		t.Fatal("grow failed")
	}
	if b.Used() != len(payload) {
		t.Errorf("cursor moved during grow: used = %d, want %d", b.Used(), len(payload))
	}
	if !bytes.Equal(b.Detach(), payload) {
		t.Error("written bytes not preserved across grow")
	}
}

func TestBuffer_GrowLimit(t *testing.T) {
	b := Buffer{max: 24}

	if !b.Grow() {
		t.Fatal("grow to 16 should succeed under a 24-byte limit")
	}
	if !b.Grow() {
		t.Fatal("grow should clamp to the limit, not fail")
	}
	if b.Len() != 24 {
		t.Errorf("len = %d, want clamped 24", b.Len())
	}
	if b.Grow() {
		t.Error("grow past the limit should fail")
	}
}

func TestBuffer_DetachExactSize(t *testing.T) {
	var b Buffer
	b.Grow()
	copy(b.Free(), "abc")
	b.Advance(3)

	out := b.Detach()
	if len(out) != 3 {
		t.Errorf("detached len = %d, want 3", len(out))
	}
	if cap(out) != 3 {
		t.Errorf("detached cap = %d, want exact-size 3", cap(out))
	}
	if string(out) != "abc" {
		t.Errorf("detached bytes = %q, want %q", out, "abc")
	}
}

func TestBuffer_PooledStartRespectsLimit(t *testing.T) {
	b := newBuffer(8)
	defer b.Release()

	if b.Len() > 8 {
		t.Errorf("pooled buffer len = %d exceeds limit 8", b.Len())
	}
}

func TestBuffer_ReleaseThenReuse(t *testing.T) {
	b := newBuffer(0)
	copy(b.Free(), "junk")
	b.Advance(4)
	b.Release()

	// A fresh buffer must start with a zero cursor even when it reuses
	// a pooled backing array.
	b2 := newBuffer(0)
	defer b2.Release()
	if b2.Used() != 0 {
		t.Errorf("reused buffer cursor = %d, want 0", b2.Used())
	}
	if b2.Len() < 16 {
		t.Errorf("reused buffer len = %d, want at least 16", b2.Len())
	}
}
