package api

import (
	"time"

	"github.com/hardipatel2510/WeatherX/astro"
	"github.com/hardipatel2510/WeatherX/ephemeris"
	"github.com/hardipatel2510/WeatherX/models"
)

// MoonState is the presentation state for the moon at one instant: current
// phase, illuminated fraction, local rise/set times and a seven-day timeline.
type MoonState struct {
	Phase        float64                   `json:"phase"`
	Name         astro.MoonPhaseName       `json:"name"`
	Illumination float64                   `json:"illumination"`
	Waxing       bool                      `json:"waxing"`
	Moonrise     string                    `json:"moonrise,omitempty"`
	Moonset      string                    `json:"moonset,omitempty"`
	AlwaysUp     bool                      `json:"alwaysUp,omitempty"`
	AlwaysDown   bool                      `json:"alwaysDown,omitempty"`
	Timeline     []models.MoonTimelineItem `json:"timeline"`
}

// ComputeMoonState derives the moon presentation state for the location in
// the given weather data at the given instant.
func ComputeMoonState(data models.WeatherData, now time.Time) MoonState {
	obs := ephemeris.NewObserver(data.Lat, data.Lon)
	ill := obs.MoonIllumination(now)

	// Scan the place's local calendar day: local midnight, expressed in UTC.
	offset := time.Duration(data.Timezone) * time.Second
	local := now.UTC().Add(offset)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC).Add(-offset)
	times := obs.MoonTimesFrom(dayStart)

	state := MoonState{
		Phase:        data.MoonPhase,
		Name:         astro.PhaseName(data.MoonPhase),
		Illumination: ill.Fraction,
		Waxing:       astro.Waxing(data.MoonPhase),
		AlwaysUp:     times.AlwaysUp,
		AlwaysDown:   times.AlwaysDown,
		Timeline:     astro.MoonTimeline(obs, now),
	}
	if times.Rise != nil {
		state.Moonrise = astro.FormatClockTime(times.Rise.Unix(), data.Timezone)
	}
	if times.Set != nil {
		state.Moonset = astro.FormatClockTime(times.Set.Unix(), data.Timezone)
	}
	return state
}
