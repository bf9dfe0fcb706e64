package timefmt

import (
	"strconv"

	"github.com/dl/pktfmt/arena"
	"github.com/dl/pktfmt/digits"
)

// timeSecsLen bounds a days/hours/minutes/seconds rendering with a
// sign and a millisecond fraction:
// -12345 days, 12 hours, 12 minutes, 12.123 seconds
const timeSecsLen = 10 + 1 + 4 + 2 + 2 + 5 + 2 + 2 + 7 + 2 + 2 + 7 + 4

// relTimeSecsLen bounds a seconds.nanoseconds rendering: a sign, 19
// digits of seconds, the dot and 9 fraction digits.
const relTimeSecsLen = 1 + 19 + 1 + 9

// RelTime renders ts as a days/hours/minutes/seconds duration with a
// nanosecond fraction, allocated in a. The all-zero value renders as
// "0.000000000 seconds". A negative Nsecs negates the whole value and
// puts a single '-' in front.
func RelTime(a arena.Allocator, ts Stamp) string {
	timeVal := int32(ts.Secs)
	nsec := ts.Nsecs
	if timeVal == 0 && nsec == 0 {
		return a.Strdup("0.000000000 seconds")
	}

	buf := a.Alloc(timeSecsLen + 8)[:0]
	if nsec < 0 {
		nsec = -nsec
		buf = append(buf, '-')
		// The seconds part of such a stamp is zero or negative;
		// anything else was bogus on the wire and renders as-is.
		timeVal = int32(-ts.Secs)
	}
	buf = appendSignedTime(buf, timeVal, uint32(nsec), true)
	return arena.String(buf)
}

// RelTimeSecs renders ts as plain seconds with a nine-digit
// nanosecond fraction, allocated in a.
func RelTimeSecs(a arena.Allocator, ts Stamp) string {
	buf := a.Alloc(relTimeSecsLen)
	n := DisplaySignedTime(buf, ts.Secs, ts.Nsecs, ResNSecs)
	return arena.String(buf[:n])
}

// UnsignedTimeSecs renders secs as a days/hours/minutes/seconds
// duration allocated in a. Zero renders as "0 seconds".
func UnsignedTimeSecs(a arena.Allocator, secs uint32) string {
	if secs == 0 {
		return a.Strdup("0 seconds")
	}
	buf := a.Alloc(timeSecsLen)[:0]
	buf = appendUnsignedTime(buf, secs, 0, false)
	return arena.String(buf)
}

// SignedTimeSecs is UnsignedTimeSecs for signed values. The minimum
// value keeps its full magnitude.
func SignedTimeSecs(a arena.Allocator, secs int32) string {
	if secs == 0 {
		return a.Strdup("0 seconds")
	}
	buf := a.Alloc(timeSecsLen)[:0]
	buf = appendSignedTime(buf, secs, 0, false)
	return arena.String(buf)
}

// SignedTimeMsecs renders a millisecond count as a duration with a
// three-digit fraction, allocated in a. The sign rides on the seconds
// component, so values between -999 and -1 milliseconds come out
// without one.
func SignedTimeMsecs(a arena.Allocator, msecs int32) string {
	if msecs == 0 {
		return a.Strdup("0 seconds")
	}

	var secs, frac int32
	if msecs < 0 {
		// Split the magnitude in uint32 so the minimum value
		// survives, then put the sign back on the seconds.
		v := -uint32(msecs)
		frac = int32(v % 1000)
		secs = -int32(v / 1000)
	} else {
		frac = msecs % 1000
		secs = msecs / 1000
	}

	buf := a.Alloc(timeSecsLen + 4)[:0]
	buf = appendSignedTime(buf, secs, uint32(frac), false)
	return arena.String(buf)
}

// appendUnsignedTime appends v seconds decomposed into days, hours,
// minutes and seconds, skipping zero components and pluralizing the
// rest. A nonzero frac rides on the seconds component as a fixed-width
// fraction, nine digits when nsecs is set and three otherwise.
func appendUnsignedTime(b []byte, v uint32, frac uint32, nsecs bool) []byte {
	secs := v % 60
	v /= 60
	mins := v % 60
	v /= 60
	hours := v % 24
	days := v / 24

	comma := false
	if days != 0 {
		b = appendComponent(b, comma, days, " day")
		comma = true
	}
	if hours != 0 {
		b = appendComponent(b, comma, hours, " hour")
		comma = true
	}
	if mins != 0 {
		b = appendComponent(b, comma, mins, " minute")
		comma = true
	}
	if secs != 0 || frac != 0 {
		if comma {
			b = append(b, ", "...)
		}
		b = strconv.AppendUint(b, uint64(secs), 10)
		if frac != 0 {
			b = append(b, '.')
			if nsecs {
				b = appendPadded(b, frac, 9)
			} else {
				b = appendPadded(b, frac, 3)
			}
			b = append(b, " seconds"...)
		} else {
			b = append(b, " second"...)
			if secs > 1 {
				b = append(b, 's')
			}
		}
	}
	return b
}

// appendSignedTime is appendUnsignedTime with a leading '-' for
// negative values, negated in uint32 so the minimum value keeps its
// magnitude.
func appendSignedTime(b []byte, v int32, frac uint32, nsecs bool) []byte {
	if v < 0 {
		b = append(b, '-')
		return appendUnsignedTime(b, -uint32(v), frac, nsecs)
	}
	return appendUnsignedTime(b, uint32(v), frac, nsecs)
}

func appendComponent(b []byte, comma bool, v uint32, unit string) []byte {
	if comma {
		b = append(b, ", "...)
	}
	b = strconv.AppendUint(b, uint64(v), 10)
	b = append(b, unit...)
	if v > 1 {
		b = append(b, 's')
	}
	return b
}

// appendPadded appends v left-padded with zeros to at least width
// digits, the shape of every fixed-width fraction.
func appendPadded(b []byte, v uint32, width int) []byte {
	var tmp [10]byte
	start := digits.UintBackLen(tmp[:], len(tmp), v, width)
	return append(b, tmp[start:]...)
}
