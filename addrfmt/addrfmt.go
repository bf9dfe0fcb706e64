// Package addrfmt formats network addresses and wire identifiers:
// IPv4 dotted quads, IPv6 text, hyphenated GUIDs, EUI-64 identifiers
// and transport port types.
package addrfmt

// Worst-case text lengths of the fixed-layout formats.
const (
	IPv4MaxLen = 15
	IPv6MaxLen = 45
	GUIDLen    = 36
	EUI64Len   = 23
)
