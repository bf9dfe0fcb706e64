// Package bytefmt renders byte sequences as bounded hex strings. Long
// inputs are cut at a display budget and finished with an ellipsis so
// a single bad field cannot flood a protocol summary line.
package bytefmt

import (
	"github.com/dl/pktfmt"
	"github.com/dl/pktfmt/arena"
	"github.com/dl/pktfmt/digits"
)

// MaxLen is the display budget in hex characters. Plain output cuts
// at MaxLen/2 input bytes, punctuated output at MaxLen/3.
const MaxLen = 72

// Bytes renders src as a continuous lowercase hex string allocated in
// a. Inputs longer than MaxLen/2 bytes render their first MaxLen/2
// bytes followed by an ellipsis.
func Bytes(a arena.Allocator, src []byte) string {
	if len(src) == 0 {
		return ""
	}
	n := len(src)
	truncated := false
	if n > MaxLen/2 {
		truncated = true
		n = MaxLen / 2
	}
	need := 2 * n
	if truncated {
		need += len(pktfmt.Ellipsis)
	}
	buf := a.Alloc(need)
	w := digits.HexBytes(buf, src[:n])
	if truncated {
		w += copy(buf[w:], pktfmt.Ellipsis)
	}
	return arena.String(buf[:w])
}

// BytesPunct renders src as hex byte pairs separated by punct,
// allocated in a. Inputs longer than MaxLen/3 bytes render their
// first MaxLen/3 bytes, then punct and an ellipsis. A zero punct
// falls back to the plain form.
func BytesPunct(a arena.Allocator, src []byte, punct byte) string {
	if len(src) == 0 {
		return ""
	}
	if punct == 0 {
		return Bytes(a, src)
	}
	n := len(src)
	truncated := false
	if n > MaxLen/3 {
		truncated = true
		n = MaxLen / 3
	}
	need := 3*n - 1
	if truncated {
		need += 1 + len(pktfmt.Ellipsis)
	}
	buf := a.Alloc(need)
	w := digits.HexBytesPunct(buf, src[:n], punct)
	if truncated {
		buf[w] = punct
		w++
		w += copy(buf[w:], pktfmt.Ellipsis)
	}
	return arena.String(buf[:w])
}
