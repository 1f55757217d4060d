// Package ephemeris computes rise/set times and positions for the sun and
// moon as seen from a fixed point on Earth. It is the swappable collaborator
// behind the astro package: astro consumes the shapes returned here and
// never cares which algorithm produced them.
//
// Solar events come from third-party implementations (go-sunrise for
// rise/set, astral for twilight and elevation). Lunar position,
// illumination and rise/set follow the public-domain SunCalc formulas,
// which are accurate to a couple of minutes. Fine for a dashboard, not
// for navigation.
package ephemeris

import (
	"time"
)

// SunTimes are the solar events of one calendar day, in UTC.
type SunTimes struct {
	Sunrise time.Time
	Sunset  time.Time
	// Dawn and Dusk bound civil twilight. Zero when the sun never reaches
	// the civil depression angle on that date (high latitudes).
	Dawn time.Time
	Dusk time.Time
}

// MoonTimes are the lunar events of one calendar day. Either pointer may be
// nil: the moon's ~50-minute daily lag means some days genuinely have no
// rise or no set.
type MoonTimes struct {
	Rise       *time.Time
	Set        *time.Time
	AlwaysUp   bool
	AlwaysDown bool
}

// Observer is a fixed observation point. Longitude is east-positive.
type Observer struct {
	Lat float64
	Lon float64
}

// NewObserver returns an observer at the given coordinates.
func NewObserver(lat, lon float64) Observer {
	return Observer{Lat: lat, Lon: lon}
}
