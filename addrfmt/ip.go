package addrfmt

import (
	"net/netip"

	"github.com/dl/pktfmt"
	"github.com/dl/pktfmt/arena"
	"github.com/dl/pktfmt/diag"
	"github.com/dl/pktfmt/digits"
)

// IPv4ToBuf writes the dotted-quad form of the first four bytes of
// addr into buf and returns the byte count. A buf shorter than
// IPv4MaxLen gets the truncation marker. An addr shorter than four
// bytes is a programmer error.
//
// Every octet comes out of the pre-rendered decimal table, so the hot
// path divides nothing.
func IPv4ToBuf(buf []byte, addr []byte) int {
	if len(addr) < 4 {
		diag.Bugf("IPv4ToBuf: %d byte address", len(addr))
	}
	if len(buf) < IPv4MaxLen {
		return pktfmt.Trunc(buf)
	}
	n := copy(buf, digits.SmallDecimal(addr[0]))
	buf[n] = '.'
	n++
	n += copy(buf[n:], digits.SmallDecimal(addr[1]))
	buf[n] = '.'
	n++
	n += copy(buf[n:], digits.SmallDecimal(addr[2]))
	buf[n] = '.'
	n++
	n += copy(buf[n:], digits.SmallDecimal(addr[3]))
	return n
}

// IPv4String renders addr into a scope-backed string.
func IPv4String(a arena.Allocator, addr []byte) string {
	buf := a.Alloc(IPv4MaxLen)
	n := IPv4ToBuf(buf, addr)
	return arena.String(buf[:n])
}

// IPv6ToBuf writes the canonical text of addr into buf and returns
// the length the full text needs, which exceeds len(buf) exactly when
// the buffer instead received the truncation marker.
func IPv6ToBuf(buf []byte, addr [16]byte) int {
	return IPv6ToBufPrefix(buf, addr, "")
}

// IPv6ToBufPrefix is IPv6ToBuf with a caller-supplied prefix, such as
// a protocol tag, written ahead of the address text.
func IPv6ToBufPrefix(buf []byte, addr [16]byte, prefix string) int {
	var tmp [IPv6MaxLen]byte
	text := netip.AddrFrom16(addr).AppendTo(tmp[:0])
	need := len(prefix) + len(text)
	if need > len(buf) {
		pktfmt.Trunc(buf)
	} else {
		n := copy(buf, prefix)
		copy(buf[n:], text)
	}
	return need
}

// IPv6String renders addr into a scope-backed string.
func IPv6String(a arena.Allocator, addr [16]byte) string {
	buf := a.Alloc(IPv6MaxLen)
	n := IPv6ToBuf(buf, addr)
	return arena.String(buf[:n])
}
