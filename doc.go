// Package perfcopy provides optimized bulk-copy operations over
// contiguous buffers of fixed-width scalar elements (8/16/32/64-bit
// integers, including 16-bit character code units as uint16).
//
// Copies are dispatched to one of three strategies depending on the
// transfer size in bytes: a plain element loop for tiny transfers, a
// word-width-adaptive unrolled copier for everything else, and, on
// builds without raw memory access, the runtime block move. Building
// with the purego tag (or for a target without unaligned word access)
// removes the unsafe copier entirely and keeps only the safe
// strategies.
//
// All exported entry points validate their arguments before any byte
// moves, except CopyRangeUnchecked, which is an explicit opt-in for
// callers that have already established the same invariants upstream.
// Overlapping source and destination regions are a precondition
// violation for every entry point; the result of such a call is
// unspecified and overlap is never detected.
package perfcopy
