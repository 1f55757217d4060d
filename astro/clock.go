// Package astro holds the pure time and astronomy calculations that drive
// the dashboard: local wall-clock derivation from a UTC offset, day-segment
// and sunrise-relative classification, the sun-path arc, and the lunar
// phase engine. Every function takes its inputs explicitly (including
// "now") and touches no global state, so callers can recompute on whatever
// schedule they like and tests can simulate time passage directly.
package astro

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock instant at the queried place, independent of the
// host machine's own timezone.
type Clock struct {
	Hour        int // 0-23
	Minute      int // 0-59
	MinuteOfDay int // 0-1439
}

// LocalClock derives the wall clock at a place offset by offsetSeconds from
// UTC. Any finite offset is accepted; real-world values span -43200..50400.
func LocalClock(now time.Time, offsetSeconds int) Clock {
	shifted := now.UTC().Add(time.Duration(offsetSeconds) * time.Second)
	h, m := shifted.Hour(), shifted.Minute()
	return Clock{Hour: h, Minute: m, MinuteOfDay: h*60 + m}
}

// FormatClockTime renders a unix timestamp as the place's wall-clock time,
// e.g. "06:32 AM". Seconds are discarded.
func FormatClockTime(unixSeconds int64, offsetSeconds int) string {
	shifted := time.Unix(unixSeconds, 0).UTC().Add(time.Duration(offsetSeconds) * time.Second)
	return shifted.Format("03:04 PM")
}

// FormatHourLabel renders a unix timestamp as a short hourly label local to
// the place, e.g. "6 PM" or "12 AM".
func FormatHourLabel(unixSeconds int64, offsetSeconds int) string {
	shifted := time.Unix(unixSeconds, 0).UTC().Add(time.Duration(offsetSeconds) * time.Second)
	return shifted.Format("3 PM")
}

// LocalDayName returns the short weekday name ("Mon", "Tue", ...) of a unix
// timestamp at the place.
func LocalDayName(unixSeconds int64, offsetSeconds int) string {
	shifted := time.Unix(unixSeconds, 0).UTC().Add(time.Duration(offsetSeconds) * time.Second)
	return shifted.Format("Mon")
}

// ParseClockTime converts a "06:32 AM" style string back to minutes from
// midnight. The inverse of FormatClockTime: formatting then parsing yields
// the original minute value exactly, since both sides drop seconds.
func ParseClockTime(s string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	h, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q: %w", s, err)
	}
	m, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, fmt.Errorf("malformed clock time %q: %w", s, err)
	}
	if h < 1 || h > 12 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	switch strings.ToUpper(fields[1]) {
	case "AM":
		if h == 12 {
			h = 0
		}
	case "PM":
		if h != 12 {
			h += 12
		}
	default:
		return 0, fmt.Errorf("malformed clock time %q", s)
	}
	return h*60 + m, nil
}
