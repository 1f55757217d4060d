package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hardipatel2510/WeatherX/astro"
	"github.com/hardipatel2510/WeatherX/models"
)

func themedData() models.WeatherData {
	return models.WeatherData{
		City:     "Ahmedabad",
		Timezone: 19800,
		Sunrise:  "06:00 AM",
		Sunset:   "07:00 PM",
	}
}

func TestComputeSunState_Midday(t *testing.T) {
	// 07:00 UTC is 12:30 local at UTC+5:30
	now := time.Date(2025, time.June, 15, 7, 0, 0, 0, time.UTC)
	state := ComputeSunState(themedData(), now)

	assert.Equal(t, 12, state.Clock.Hour)
	assert.Equal(t, astro.Afternoon, state.Segment)
	assert.True(t, state.IsDay)
	assert.False(t, state.BelowHorizon)
	assert.Greater(t, state.Progress, 0.0)
	assert.Less(t, state.Progress, 1.0)
	assert.Equal(t, 1.0, state.Opacities.Day)
}

func TestComputeSunState_Night(t *testing.T) {
	// 21:00 UTC is 02:30 local
	now := time.Date(2025, time.June, 15, 21, 0, 0, 0, time.UTC)
	state := ComputeSunState(themedData(), now)

	assert.Equal(t, astro.Night, state.Segment)
	assert.False(t, state.IsDay)
	assert.True(t, state.BelowHorizon)
	assert.Equal(t, 1.0, state.Opacities.Night)
}

func TestComputeSunState_ArcPositionsTrackProgress(t *testing.T) {
	now := time.Date(2025, time.June, 15, 7, 0, 0, 0, time.UTC)
	state := ComputeSunState(themedData(), now)

	assert.Equal(t, astro.DetailArc().Position(state.Progress), state.DetailPoint)
	assert.Equal(t, astro.CycleArc().Position(state.Progress), state.CyclePoint)
}

func TestComputeSunState_UnparseableTimesFallBack(t *testing.T) {
	data := themedData()
	data.Sunrise = "garbage"
	data.Sunset = ""

	// 03:30 UTC is 09:00 local, between the 06:00/18:00 fallbacks
	now := time.Date(2025, time.June, 15, 3, 30, 0, 0, time.UTC)
	state := ComputeSunState(data, now)

	assert.InDelta(t, 0.25, state.Progress, 1e-9,
		"09:00 local against the 06:00-18:00 fallback window")
}

func TestComputeMoonState_RiseSetStableAcrossLocalDay(t *testing.T) {
	data := themedData()
	data.Lat, data.Lon = 23.0225, 72.5714

	// 01:00 and 23:00 local on June 15 at UTC+5:30; the first instant is
	// still June 14 in UTC. Both must report the same local day's events.
	early := time.Date(2025, time.June, 14, 19, 30, 0, 0, time.UTC)
	late := time.Date(2025, time.June, 15, 17, 30, 0, 0, time.UTC)

	first := ComputeMoonState(data, early)
	second := ComputeMoonState(data, late)

	assert.Equal(t, first.Moonrise, second.Moonrise)
	assert.Equal(t, first.Moonset, second.Moonset)
}

func TestComputeMoonState(t *testing.T) {
	data := themedData()
	data.Lat, data.Lon = 23.0225, 72.5714
	data.MoonPhase = 0.5

	now := time.Date(2025, time.June, 15, 7, 0, 0, 0, time.UTC)
	state := ComputeMoonState(data, now)

	assert.Equal(t, astro.FullMoon, state.Name)
	assert.False(t, state.Waxing)
	assert.Len(t, state.Timeline, 7)
	assert.Equal(t, "Today", state.Timeline[0].Label)
	assert.GreaterOrEqual(t, state.Illumination, 0.0)
	assert.LessOrEqual(t, state.Illumination, 1.0)
	assert.False(t, state.AlwaysUp)
	assert.False(t, state.AlwaysDown)
}
