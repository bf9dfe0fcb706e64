package timefmt

import "github.com/dl/pktfmt/digits"

// Scratch sizing for the display formatters: a sign plus 19 digits of
// seconds, reused for the dot plus up to 10 fraction digits.
const displayScratch = 20

// DisplaySignedTime writes secs with a fixed-width fraction into buf
// at the given resolution and returns the byte count. A negative frac
// owns the sign only when the seconds part carries none of its own.
// Output that cannot fit is clipped rather than replaced by the
// truncation marker: a partial time is still useful on a summary line.
// A zero-length buf gets nothing.
func DisplaySignedTime(buf []byte, secs int64, frac int32, res Resolution) int {
	if len(buf) == 0 {
		return 0
	}

	n := 0
	if frac < 0 {
		frac = -frac
		if secs >= 0 {
			buf[0] = '-'
			n = 1
		}
	}

	var tmp [displayScratch]byte
	start := digits.Int64Back(tmp[:], len(tmp), secs)
	n += copy(buf[n:], tmp[start:])

	w := res.FracDigits()
	if w == 0 {
		return n
	}
	start = digits.UintBackLen(tmp[:], len(tmp), uint32(frac), w)
	start--
	tmp[start] = '.'
	n += copy(buf[n:], tmp[start:])
	return n
}

// DisplayEpochTime writes secs as raw elapsed seconds since the epoch.
// Same sign convention and clipping as DisplaySignedTime; it exists so
// epoch call sites read as what they are.
func DisplayEpochTime(buf []byte, secs int64, frac int32, res Resolution) int {
	return DisplaySignedTime(buf, secs, frac, res)
}
