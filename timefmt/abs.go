package timefmt

import "github.com/dl/pktfmt/arena"

// AbsTime renders ts as an absolute calendar time with a fixed
// nine-digit nanosecond fraction, allocated in a. A zero Stamp gains a
// "(0)" prefix in the month-name modes: it is almost always an unset
// default rather than a captured instant. Instants the calendar cannot
// break down render as "Not representable".
func AbsTime(a arena.Allocator, ts Stamp, mode Mode, showZone bool) string {
	cal, ok := calendarFor(mode)
	if !ok {
		return a.Strdup(notRepresentable)
	}
	cv, ok := cal.Breakdown(ts.Secs)
	if !ok {
		return a.Strdup(notRepresentable)
	}

	if mode == ModeDOYUTC {
		if showZone {
			return a.Sprintf("%04d/%03d:%02d:%02d:%02d.%09d %s",
				cv.Year, cv.YearDay, cv.Hour, cv.Min, cv.Sec, ts.Nsecs, cv.Zone)
		}
		return a.Sprintf("%04d/%03d:%02d:%02d:%02d.%09d",
			cv.Year, cv.YearDay, cv.Hour, cv.Min, cv.Sec, ts.Nsecs)
	}

	prefix := ""
	if ts.Secs == 0 && ts.Nsecs == 0 {
		prefix = "(0)"
	}
	if showZone {
		return a.Sprintf("%s%s %2d, %d %02d:%02d:%02d.%09d %s",
			prefix, monNames[cv.Month-1], cv.Day, cv.Year, cv.Hour, cv.Min, cv.Sec, ts.Nsecs, cv.Zone)
	}
	return a.Sprintf("%s%s %2d, %d %02d:%02d:%02d.%09d",
		prefix, monNames[cv.Month-1], cv.Day, cv.Year, cv.Hour, cv.Min, cv.Sec, ts.Nsecs)
}

// AbsTimeSecs renders secs like AbsTime but with no fractional part.
// Under ModeNTPUTC a zero value renders as "NULL", the conventional
// display of an unset NTP timestamp.
func AbsTimeSecs(a arena.Allocator, secs int64, mode Mode, showZone bool) string {
	cal, ok := calendarFor(mode)
	if !ok {
		return a.Strdup(notRepresentable)
	}
	cv, ok := cal.Breakdown(secs)
	if !ok {
		return a.Strdup(notRepresentable)
	}

	switch {
	case mode == ModeDOYUTC:
		if showZone {
			return a.Sprintf("%04d/%03d:%02d:%02d:%02d %s",
				cv.Year, cv.YearDay, cv.Hour, cv.Min, cv.Sec, cv.Zone)
		}
		return a.Sprintf("%04d/%03d:%02d:%02d:%02d",
			cv.Year, cv.YearDay, cv.Hour, cv.Min, cv.Sec)

	case mode == ModeNTPUTC && secs == 0:
		return a.Strdup("NULL")
	}

	if showZone {
		return a.Sprintf("%s %2d, %d %02d:%02d:%02d %s",
			monNames[cv.Month-1], cv.Day, cv.Year, cv.Hour, cv.Min, cv.Sec, cv.Zone)
	}
	return a.Sprintf("%s %2d, %d %02d:%02d:%02d",
		monNames[cv.Month-1], cv.Day, cv.Year, cv.Hour, cv.Min, cv.Sec)
}

// calendarFor maps a display mode to its calendar. Unknown modes have
// no calendar, which surfaces as "Not representable".
func calendarFor(mode Mode) (Calendar, bool) {
	switch mode {
	case ModeUTC, ModeDOYUTC, ModeNTPUTC:
		return UTC, true
	case ModeLocal:
		return Local, true
	}
	return nil, false
}
