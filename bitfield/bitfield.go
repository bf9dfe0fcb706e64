// Package bitfield renders the bits of a field extracted from a byte
// stream, dotting out the positions that belong to neighboring fields.
package bitfield

import (
	"github.com/dl/pktfmt/arena"
	"github.com/dl/pktfmt/diag"
)

// renderMax bounds one rendering: up to 72 bit positions once the
// trailing pad rounds out the last byte, a space every four bits and a
// second one at each byte boundary inside the field.
const renderMax = 72 + 17 + 8

// Render draws value as a bitLen-bit field starting bitOffset bits
// past a byte boundary: '.' outside the field, '1' and '0' inside, a
// space every four bits plus another at byte boundaries, padded with
// '.' to the end of the last byte. A 3-bit field of value 3 at offset
// 2 renders as "..01 1...". bitLen is clamped to 64; a non-positive
// bitLen is a programmer error.
func Render(a arena.Allocator, bitOffset uint, bitLen int, value uint64) string {
	if bitLen < 1 {
		diag.Bugf("bitfield: %d bit field", bitLen)
	}
	if bitLen > 64 {
		bitLen = 64
	}
	mask := uint64(1) << (bitLen - 1)

	buf := a.Alloc(renderMax)
	n := 0
	bit := 0
	for ; bit < int(bitOffset&7); bit++ {
		if bit != 0 && bit%4 == 0 {
			buf[n] = ' '
			n++
		}
		buf[n] = '.'
		n++
	}

	for i := 0; i < bitLen; i++ {
		if bit != 0 && bit%4 == 0 {
			buf[n] = ' '
			n++
		}
		if bit != 0 && bit%8 == 0 {
			buf[n] = ' '
			n++
		}
		bit++
		if value&mask != 0 {
			buf[n] = '1'
		} else {
			buf[n] = '0'
		}
		n++
		mask >>= 1
	}

	for ; bit%8 != 0; bit++ {
		if bit%4 == 0 {
			buf[n] = ' '
			n++
		}
		buf[n] = '.'
		n++
	}
	return arena.String(buf[:n])
}
