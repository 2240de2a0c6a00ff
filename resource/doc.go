// Package resource provides a concurrency-safe handle table for
// binding layers.
//
// The conversion core hands out Go pointers, but scripting and network
// bindings need small opaque integers they can pass across their own
// boundary. A Table maps Handle numbers to live values, reuses freed
// slots, and runs an optional Drop hook when a value is removed or the
// table shuts down.
//
// Handle 0 is reserved and always invalid.
//
// The table serializes its own bookkeeping; it does not serialize use
// of the stored values. A stored converter still belongs to one logical
// caller at a time.
package resource
