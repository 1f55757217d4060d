package ephemeris

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
	astral "github.com/sj14/astral/pkg/astral"
)

// SunTimes returns sunrise, sunset and the civil twilight bounds for the
// observer on the given calendar date. All times are UTC.
func (o Observer) SunTimes(date time.Time) SunTimes {
	day := date.UTC()
	rise, set := sunrise.SunriseSunset(o.Lat, o.Lon, day.Year(), day.Month(), day.Day())

	st := SunTimes{Sunrise: rise, Sunset: set}

	obs := astral.Observer{Latitude: o.Lat, Longitude: o.Lon}
	if dawn, err := astral.Dawn(obs, day, astral.DepressionCivil); err == nil {
		st.Dawn = dawn
	}
	if dusk, err := astral.Dusk(obs, day, astral.DepressionCivil); err == nil {
		st.Dusk = dusk
	}
	return st
}

// SunElevation returns the sun's refracted elevation above the horizon in
// degrees at time t. Negative means below the horizon.
func (o Observer) SunElevation(t time.Time) float64 {
	return astral.Elevation(astral.Observer{Latitude: o.Lat, Longitude: o.Lon}, t, true)
}
