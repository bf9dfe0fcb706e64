// Package timefmt renders timestamps for capture summaries. Absolute
// times come out in month-name or day-of-year calendar form with an
// optional zone suffix. Durations decompose into days, hours, minutes
// and seconds with fixed-width fractions down to nanoseconds.
package timefmt

import (
	"math"
	"time"
)

// Stamp is a wire timestamp: whole seconds plus a nanosecond part.
// By convention a negative Nsecs with zero Secs marks the whole value
// as negative.
type Stamp struct {
	Secs  int64
	Nsecs int32
}

// Mode selects the calendar rendering of an absolute time.
type Mode int

const (
	// ModeUTC renders month-name calendar time in UTC.
	ModeUTC Mode = iota
	// ModeDOYUTC renders year/day-of-year time in UTC.
	ModeDOYUTC
	// ModeNTPUTC is ModeUTC with zero treated as an unset NTP value.
	ModeNTPUTC
	// ModeLocal renders in the host's local zone.
	ModeLocal
)

// Resolution fixes the digit count of a fractional-second field.
type Resolution int

const (
	ResSecs Resolution = iota
	ResDSecs
	ResCSecs
	ResMSecs
	ResUSecs
	ResNSecs
)

// FracDigits returns the fraction digit count at this resolution.
// Unknown resolutions render like ResSecs, with no fraction at all.
func (r Resolution) FracDigits() int {
	switch r {
	case ResDSecs:
		return 1
	case ResCSecs:
		return 2
	case ResMSecs:
		return 3
	case ResUSecs:
		return 6
	case ResNSecs:
		return 9
	}
	return 0
}

// Civil is a broken-down calendar time plus the zone abbreviation in
// effect at that instant.
type Civil struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Min     int
	Sec     int
	YearDay int
	Zone    string
}

// Calendar resolves epoch seconds to civil time. A false result means
// the instant is not representable and the caller must degrade.
type Calendar interface {
	Breakdown(secs int64) (Civil, bool)
}

// maxCivilSecs is the largest epoch second count that survives the
// shift onto Go's internal calendar epoch.
const maxCivilSecs = math.MaxInt64 - 62135596800

// UTC resolves instants in Coordinated Universal Time.
var UTC Calendar = utcCalendar{}

// Local resolves instants in the host's local zone and reports the
// zone abbreviation in effect at each instant.
var Local Calendar = localCalendar{}

type utcCalendar struct{}

func (utcCalendar) Breakdown(secs int64) (Civil, bool) {
	if secs > maxCivilSecs {
		return Civil{}, false
	}
	cv := civilOf(time.Unix(secs, 0).UTC())
	cv.Zone = "UTC"
	return cv, true
}

type localCalendar struct{}

func (localCalendar) Breakdown(secs int64) (Civil, bool) {
	if secs > maxCivilSecs {
		return Civil{}, false
	}
	t := time.Unix(secs, 0)
	cv := civilOf(t)
	cv.Zone, _ = t.Zone()
	return cv, true
}

func civilOf(t time.Time) Civil {
	return Civil{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Min:     t.Minute(),
		Sec:     t.Second(),
		YearDay: t.YearDay(),
	}
}

// monNames holds the abbreviated month names, indexed by
// time.Month - 1.
var monNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

const notRepresentable = "Not representable"
