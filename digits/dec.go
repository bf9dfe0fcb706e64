package digits

import "github.com/dl/pktfmt"

// Uint32Width returns the exact decimal digit count of v, found by
// descending threshold comparisons rather than logarithms.
func Uint32Width(v uint32) int {
	switch {
	case v >= 1000000000:
		return 10
	case v >= 100000000:
		return 9
	case v >= 10000000:
		return 8
	case v >= 1000000:
		return 7
	case v >= 100000:
		return 6
	case v >= 10000:
		return 5
	case v >= 1000:
		return 4
	case v >= 100:
		return 3
	case v >= 10:
		return 2
	}
	return 1
}

// Uint64Width is Uint32Width for 64-bit values.
func Uint64Width(v uint64) int {
	switch {
	case v >= 10000000000000000000:
		return 20
	case v >= 1000000000000000000:
		return 19
	case v >= 100000000000000000:
		return 18
	case v >= 10000000000000000:
		return 17
	case v >= 1000000000000000:
		return 16
	case v >= 100000000000000:
		return 15
	case v >= 10000000000000:
		return 14
	case v >= 1000000000000:
		return 13
	case v >= 100000000000:
		return 12
	case v >= 10000000000:
		return 11
	case v >= 1000000000:
		return 10
	case v >= 100000000:
		return 9
	case v >= 10000000:
		return 8
	case v >= 1000000:
		return 7
	case v >= 100000:
		return 6
	case v >= 10000:
		return 5
	case v >= 1000:
		return 4
	case v >= 100:
		return 3
	case v >= 10:
		return 2
	}
	return 1
}

// Uint32ToBuf writes the decimal form of v into buf and returns the
// byte count. A buffer too small for every digit gets the truncation
// marker instead, itself clipped to the buffer.
func Uint32ToBuf(buf []byte, v uint32) int {
	w := Uint32Width(v)
	if len(buf) < w {
		return pktfmt.Trunc(buf)
	}
	UintBack(buf, w, v)
	return w
}

// Uint64ToBuf is Uint32ToBuf for 64-bit values.
func Uint64ToBuf(buf []byte, v uint64) int {
	w := Uint64Width(v)
	if len(buf) < w {
		return pktfmt.Trunc(buf)
	}
	Uint64Back(buf, w, v)
	return w
}

// SmallDecimal returns the pre-rendered decimal string of v. Call
// sites like the dotted-quad fast path pay no division for it.
func SmallDecimal(v uint8) string {
	return smallDecimals[v]
}
