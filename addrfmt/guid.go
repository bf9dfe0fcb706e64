package addrfmt

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/dl/pktfmt"
	"github.com/dl/pktfmt/arena"
	"github.com/dl/pktfmt/digits"
)

// GUID is the on-the-wire identifier layout: one 32-bit field, two
// 16-bit fields and eight raw bytes.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// GUIDToBuf writes g in hyphenated 8-4-4-4-12 lowercase form into buf
// and returns the byte count. A buf shorter than GUIDLen gets the
// truncation marker.
func GUIDToBuf(buf []byte, g GUID) int {
	if len(buf) < GUIDLen {
		return pktfmt.Trunc(buf)
	}
	n := digits.HexDword(buf, g.Data1)
	buf[n] = '-'
	n++
	n += digits.HexWord(buf[n:], g.Data2)
	buf[n] = '-'
	n++
	n += digits.HexWord(buf[n:], g.Data3)
	buf[n] = '-'
	n++
	n += digits.HexBytes(buf[n:], g.Data4[:2])
	buf[n] = '-'
	n++
	n += digits.HexBytes(buf[n:], g.Data4[2:])
	return n
}

// GUIDString renders g into a scope-backed string.
func GUIDString(a arena.Allocator, g GUID) string {
	buf := a.Alloc(GUIDLen)
	n := GUIDToBuf(buf, g)
	return arena.String(buf[:n])
}

// GUIDFromUUID reinterprets an RFC 4122 value: the UUID's big-endian
// bytes map onto Data1 through Data4 directly.
func GUIDFromUUID(u uuid.UUID) GUID {
	return GUID{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
		Data4: [8]byte(u[8:16]),
	}
}

// UUID returns g in RFC 4122 byte order.
func (g GUID) UUID() uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], g.Data1)
	binary.BigEndian.PutUint16(u[4:6], g.Data2)
	binary.BigEndian.PutUint16(u[6:8], g.Data3)
	copy(u[8:], g.Data4[:])
	return u
}
