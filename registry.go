package iconv

import (
	"github.com/wippyai/iconv/resource"
)

// Registry maps opaque handle numbers to open converters. It is the
// lifecycle glue a scripting or network binding needs: the binding
// passes small integers across its boundary and the registry owns the
// Go-side handles, closing them on removal and on shutdown.
//
// The registry's own bookkeeping is safe for concurrent use. The
// converters it stores are not: one handle still belongs to one logical
// caller at a time.
type Registry struct {
	table *resource.Table
}

// registered adapts an Iconv to the table's Drop hook.
type registered struct {
	cd *Iconv
}

func (r registered) Drop() {
	r.cd.Close()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{table: resource.NewTable()}
}

// Open creates a converter for the pair and registers it, returning its
// handle.
func (r *Registry) Open(sourceEncoding, targetEncoding string, opts ...Option) (resource.Handle, error) {
	cd, err := New(sourceEncoding, targetEncoding, opts...)
	if err != nil {
		return 0, err
	}
	h, err := r.table.Insert(registered{cd: cd})
	if err != nil {
		cd.Close()
		return 0, err
	}
	return h, nil
}

// Get retrieves a registered converter.
func (r *Registry) Get(h resource.Handle) (*Iconv, bool) {
	v, ok := r.table.Get(h)
	if !ok {
		return nil, false
	}
	return v.(registered).cd, true
}

// Close removes a converter from the registry and closes it, reporting
// whether the handle was live.
func (r *Registry) Close(h resource.Handle) bool {
	return r.table.Remove(h)
}

// Len returns the number of open converters.
func (r *Registry) Len() int {
	return r.table.Len()
}

// Shutdown closes every registered converter and stops accepting opens.
func (r *Registry) Shutdown() error {
	return r.table.Close()
}
