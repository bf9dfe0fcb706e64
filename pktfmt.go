// Package pktfmt defines the output contract shared by the value
// formatter packages in this module.
//
// Formatters come in two families. Scope-allocated functions take an
// arena.Allocator and return strings backed by scope memory; they size
// their own buffers and cannot run out of room. Fixed-buffer functions
// write into a caller-supplied []byte and return the number of bytes
// written; when the full rendering cannot fit they write TruncMarker
// (clipped to the buffer) instead, so a truncated display is visibly
// distinct from a real value. Downstream display code keys off the
// marker text: it is part of the contract, not a debugging aid.
package pktfmt

// TruncMarker is written into a caller buffer in place of output that
// does not fit. Even a clipped prefix ("[Buf") is enough of a clue to
// widen the buffer.
const TruncMarker = "[Buffer too small]"

// Ellipsis ends a byte-sequence rendering that was cut at the display
// bound. Distinct from TruncMarker: the ellipsis means "there was more
// data", the marker means "the caller's buffer was too small". Three
// bytes of UTF-8.
const Ellipsis = "…"

// Trunc writes TruncMarker into buf, clipped to the buffer length, and
// returns the number of bytes written.
func Trunc(buf []byte) int {
	return copy(buf, TruncMarker)
}
