package api

import (
	"time"

	"github.com/hardipatel2510/WeatherX/astro"
	"github.com/hardipatel2510/WeatherX/models"
)

// Fallback minutes when the upstream sunrise or sunset string is unusable.
const (
	defaultSunriseMinute = 6 * 60
	defaultSunsetMinute  = 18 * 60
)

// SunState is the full presentation state for the sun at one instant: local
// clock, day segment, normalized progress, layer opacities and the position
// of the sun marker on both arcs. Every consumer reads this one struct so
// the day/night decision is made in exactly one place.
type SunState struct {
	Clock        astro.Clock          `json:"clock"`
	Segment      astro.DaySegment     `json:"segment"`
	IsDay        bool                 `json:"isDay"`
	Progress     float64              `json:"progress"`
	Opacities    astro.PhaseOpacities `json:"opacities"`
	DetailPoint  astro.Point          `json:"detailPoint"`
	CyclePoint   astro.Point          `json:"cyclePoint"`
	BelowHorizon bool                 `json:"belowHorizon"`
	Sunrise      string               `json:"sunrise"`
	Sunset       string               `json:"sunset"`
}

// ComputeSunState derives the sun presentation state from normalized weather
// data at the given instant. Unparseable sunrise/sunset strings fall back to
// 06:00 and 18:00 local rather than failing the whole response.
func ComputeSunState(data models.WeatherData, now time.Time) SunState {
	clock := astro.LocalClock(now, data.Timezone)

	rise, err := astro.ParseClockTime(data.Sunrise)
	if err != nil {
		rise = defaultSunriseMinute
	}
	set, err := astro.ParseClockTime(data.Sunset)
	if err != nil {
		set = defaultSunsetMinute
	}

	progress := astro.SunProgress(float64(clock.MinuteOfDay), float64(rise), float64(set))
	segment := astro.Classify(clock.Hour)

	return SunState{
		Clock:        clock,
		Segment:      segment,
		IsDay:        astro.IsDay(segment),
		Progress:     progress,
		Opacities:    astro.SkyOpacities(progress),
		DetailPoint:  astro.DetailArc().Position(progress),
		CyclePoint:   astro.CycleArc().Position(progress),
		BelowHorizon: astro.BelowHorizon(progress),
		Sunrise:      data.Sunrise,
		Sunset:       data.Sunset,
	}
}
