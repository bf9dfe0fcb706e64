package addrfmt

import (
	"encoding/binary"

	"github.com/dl/pktfmt"
	"github.com/dl/pktfmt/arena"
	"github.com/dl/pktfmt/digits"
)

// EUI64ToBuf writes v as eight colon-separated hex byte pairs in
// big-endian order and returns the byte count. A buf shorter than
// EUI64Len gets the truncation marker.
func EUI64ToBuf(buf []byte, v uint64) int {
	if len(buf) < EUI64Len {
		return pktfmt.Trunc(buf)
	}
	var oct [8]byte
	binary.BigEndian.PutUint64(oct[:], v)
	return digits.HexBytesPunct(buf, oct[:], ':')
}

// EUI64String renders v into a scope-backed string.
func EUI64String(a arena.Allocator, v uint64) string {
	buf := a.Alloc(EUI64Len)
	n := EUI64ToBuf(buf, v)
	return arena.String(buf[:n])
}
