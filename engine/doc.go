// Package engine implements the stateful transcoding loop at the heart
// of the iconv library.
//
// # Conversion Flow
//
// A Context wraps one open converter bound to a fixed encoding pair.
// Convert drives it over an input buffer until the input is exhausted,
// growing the output buffer on demand:
//
//	┌────────┐    transform     ┌────────────┐    grow on full    ┌────────┐
//	│ input  │ ───────────────> │  Context   │ ─────────────────> │ Buffer │
//	│ bytes  │ <─── retry ───── │ (stateful) │ <── free space ─── │ grower │
//	└────────┘                  └────────────┘                    └────────┘
//
// After the input is consumed, one finalization call flushes any
// trailing shift sequence the target encoding requires, and the buffer
// is trimmed to the exact number of bytes written.
//
// # Buffer Growth
//
// The output buffer doubles on every growth event, starting at 16
// bytes. This amortizes reallocation cost to O(log n) grow calls for n
// output bytes, at the price of up to 2x transient overallocation that
// the final trim discards. Backing arrays are pooled.
//
// # Error Classification
//
// Converter statuses map onto the library error taxonomy at the point
// of detection:
//
//	Status                          Kind
//	──────────────────────────────────────────────────
//	short destination               (grow and retry)
//	short source on final chunk     incomplete_sequence
//	invalid or unmappable bytes     illegal_sequence
//	growth limit reached            out_of_memory
//	anything else                   other
//
// A failure discards all partial output; no partially converted buffer
// is ever returned.
//
// # Concurrency
//
// A Context is not reentrant. One context belongs to one logical caller
// at a time; callers needing parallel throughput open one context per
// stream.
package engine
