package digits

// UintBack writes the decimal digits of v immediately before b[pos],
// walking backward, and returns the index of the first digit. Zero
// renders as a single '0'. The caller guarantees pos >= Uint32Width(v).
func UintBack(b []byte, pos int, v uint32) int {
	if v == 0 {
		pos--
		b[pos] = '0'
		return pos
	}
	for v >= 10 {
		p := smallDecimals[100+v%100]
		v /= 100
		pos--
		b[pos] = p[2]
		pos--
		b[pos] = p[1]
	}
	if v != 0 {
		pos--
		// v is 0..9 here, so masking beats a modulo.
		b[pos] = byte(v&0xf) | '0'
	}
	return pos
}

// UintBackLen writes v like UintBack, then left-pads with '0' until at
// least width characters stand before b[pos]. Returns the new start.
func UintBackLen(b []byte, pos int, v uint32, width int) int {
	start := UintBack(b, pos, v)
	for pos-start < width {
		start--
		b[start] = '0'
	}
	return start
}

// Uint64Back is UintBack for 64-bit values.
func Uint64Back(b []byte, pos int, v uint64) int {
	if v == 0 {
		pos--
		b[pos] = '0'
		return pos
	}
	for v >= 10 {
		p := smallDecimals[100+v%100]
		v /= 100
		pos--
		b[pos] = p[2]
		pos--
		b[pos] = p[1]
	}
	if v != 0 {
		pos--
		b[pos] = byte(v&0xf) | '0'
	}
	return pos
}

// Uint64BackLen is UintBackLen for 64-bit values.
func Uint64BackLen(b []byte, pos int, v uint64, width int) int {
	start := Uint64Back(b, pos, v)
	for pos-start < width {
		start--
		b[start] = '0'
	}
	return start
}

// IntBack writes v in decimal backward from b[pos] with a leading '-'
// for negative values and returns the new start index.
func IntBack(b []byte, pos int, v int32) int {
	if v < 0 {
		// Negate in uint32 so the minimum value survives.
		pos = UintBack(b, pos, -uint32(v))
		pos--
		b[pos] = '-'
		return pos
	}
	return UintBack(b, pos, uint32(v))
}

// Int64Back is IntBack for 64-bit values.
func Int64Back(b []byte, pos int, v int64) int {
	if v < 0 {
		pos = Uint64Back(b, pos, -uint64(v))
		pos--
		b[pos] = '-'
		return pos
	}
	return Uint64Back(b, pos, uint64(v))
}

// OctBack writes v in octal backward from b[pos] with the conventional
// leading '0' and returns the new start index. Zero renders as "0".
func OctBack(b []byte, pos int, v uint32) int {
	for v != 0 {
		pos--
		b[pos] = '0' + byte(v&0x7)
		v >>= 3
	}
	pos--
	b[pos] = '0'
	return pos
}

// Oct64Back is OctBack for 64-bit values.
func Oct64Back(b []byte, pos int, v uint64) int {
	for v != 0 {
		pos--
		b[pos] = '0' + byte(v&0x7)
		v >>= 3
	}
	pos--
	b[pos] = '0'
	return pos
}

// HexBack writes v in hex backward from b[pos], zero-padded to at
// least width digits and prefixed with "0x", and returns the new start
// index. At least one digit is always written.
func HexBack(b []byte, pos int, width int, v uint32) int {
	for {
		pos--
		b[pos] = hexDigits[v&0xf]
		v >>= 4
		width--
		if v == 0 {
			break
		}
	}
	for width > 0 {
		pos--
		b[pos] = '0'
		width--
	}
	pos--
	b[pos] = 'x'
	pos--
	b[pos] = '0'
	return pos
}

// Hex64Back is HexBack for 64-bit values.
func Hex64Back(b []byte, pos int, width int, v uint64) int {
	for {
		pos--
		b[pos] = hexDigits[v&0xf]
		v >>= 4
		width--
		if v == 0 {
			break
		}
	}
	for width > 0 {
		pos--
		b[pos] = '0'
		width--
	}
	pos--
	b[pos] = 'x'
	pos--
	b[pos] = '0'
	return pos
}
