package resource

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Insert after the table has been closed.
var ErrClosed = errors.New("resource table closed")

// Handle is an opaque reference to a value in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Dropper is optionally implemented by stored values that need cleanup
// when removed from the table.
type Dropper interface {
	Drop()
}

// Table is an in-memory handle table with free-slot reuse.
type Table struct {
	entries  []entry
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value any
	valid bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Insert stores a value and returns its handle.
func (t *Table) Insert(value any) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, ErrClosed
	}

	e := entry{value: value, valid: true}

	if len(t.freeList) > 0 {
		handle := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[handle-1] = e
		return handle, nil
	}

	t.entries = append(t.entries, e)
	return Handle(len(t.entries)), nil
}

// Get retrieves a value by handle.
func (t *Table) Get(handle Handle) (any, bool) {
	if handle == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return nil, false
	}

	e := t.entries[idx]
	if !e.valid {
		return nil, false
	}
	return e.value, true
}

// Remove drops a value from the table, running its Drop hook if it has
// one, and reports whether the handle was live.
func (t *Table) Remove(handle Handle) bool {
	value, ok := t.take(handle)
	if !ok {
		return false
	}
	if d, ok := value.(Dropper); ok {
		d.Drop()
	}
	return true
}

func (t *Table) take(handle Handle) (any, bool) {
	if handle == 0 {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return nil, false
	}

	e := &t.entries[idx]
	if !e.valid {
		return nil, false
	}

	value := e.value
	e.valid = false
	e.value = nil
	t.freeList = append(t.freeList, handle)

	return value, true
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, e := range t.entries {
		if e.valid {
			n++
		}
	}
	return n
}

// Each iterates over live handles in insertion slot order. The callback
// returns false to stop early. The table lock is not held during
// callbacks.
func (t *Table) Each(fn func(Handle, any) bool) {
	t.mu.RLock()
	live := make([]Handle, 0, len(t.entries))
	for i, e := range t.entries {
		if e.valid {
			live = append(live, Handle(i+1))
		}
	}
	t.mu.RUnlock()

	for _, h := range live {
		value, ok := t.Get(h)
		if !ok {
			continue
		}
		if !fn(h, value) {
			return
		}
	}
}

// Close drops every live value and stops accepting inserts.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true

	var dropped []any
	for i := range t.entries {
		e := &t.entries[i]
		if !e.valid {
			continue
		}
		dropped = append(dropped, e.value)
		e.valid = false
		e.value = nil
	}
	t.entries = nil
	t.freeList = nil
	t.mu.Unlock()

	for _, value := range dropped {
		if d, ok := value.(Dropper); ok {
			d.Drop()
		}
	}
	return nil
}
