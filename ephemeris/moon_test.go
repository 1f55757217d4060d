package ephemeris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoonIllumination_KnownFullMoon(t *testing.T) {
	// 2024-04-23 23:49 UTC was a full moon
	ill := ahmedabad.MoonIllumination(time.Date(2024, time.April, 23, 23, 49, 0, 0, time.UTC))

	assert.Greater(t, ill.Fraction, 0.97, "a full moon should be nearly fully lit")
	assert.InDelta(t, 0.5, ill.Phase, 0.03)
}

func TestMoonIllumination_KnownNewMoon(t *testing.T) {
	// 2024-04-08 18:21 UTC was a new moon (the total eclipse day)
	ill := ahmedabad.MoonIllumination(time.Date(2024, time.April, 8, 18, 21, 0, 0, time.UTC))

	assert.Less(t, ill.Fraction, 0.03, "a new moon should be nearly dark")
}

func TestMoonIllumination_Bounds(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 60; day++ {
		ill := ahmedabad.MoonIllumination(start.AddDate(0, 0, day))
		assert.GreaterOrEqual(t, ill.Fraction, 0.0)
		assert.LessOrEqual(t, ill.Fraction, 1.0)
		assert.GreaterOrEqual(t, ill.Phase, 0.0)
		assert.Less(t, ill.Phase, 1.0)
	}
}

func TestMoonTimes_MidLatitude(t *testing.T) {
	// At 23N the moon rises and sets every day or misses at most one of
	// the two events; it is never circumpolar.
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 30; day++ {
		times := ahmedabad.MoonTimes(start.AddDate(0, 0, day))

		assert.False(t, times.AlwaysUp, "day %d", day)
		assert.False(t, times.AlwaysDown, "day %d", day)
		assert.True(t, times.Rise != nil || times.Set != nil,
			"day %d should have at least one lunar event", day)

		if times.Rise != nil {
			altitude := ahmedabad.MoonAltitude(*times.Rise)
			assert.InDelta(t, 0.0, altitude, 1.5,
				"day %d: the moon should sit near the horizon at moonrise", day)
		}
	}
}

func TestMoonTimesFrom_WindowFollowsStart(t *testing.T) {
	// Local midnight for a UTC+5:30 place: 18:30 UTC the previous evening.
	// Every reported event must land inside that 24-hour window, not the
	// UTC calendar day.
	start := time.Date(2025, time.June, 14, 18, 30, 0, 0, time.UTC)
	windowEnd := start.Add(24 * time.Hour)

	for day := 0; day < 10; day++ {
		from := start.AddDate(0, 0, day)
		times := ahmedabad.MoonTimesFrom(from)

		if times.Rise != nil {
			assert.False(t, times.Rise.Before(from), "day %d: moonrise before the window", day)
			assert.True(t, times.Rise.Before(windowEnd.AddDate(0, 0, day)), "day %d: moonrise after the window", day)
		}
		if times.Set != nil {
			assert.False(t, times.Set.Before(from), "day %d: moonset before the window", day)
			assert.True(t, times.Set.Before(windowEnd.AddDate(0, 0, day)), "day %d: moonset after the window", day)
		}
	}
}

func TestMoonTimes_AnchorsAtUTCMidnight(t *testing.T) {
	// MoonTimes truncates to UTC midnight, so any instant of the same UTC
	// day yields the same events.
	morning := time.Date(2025, time.June, 15, 3, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.June, 15, 22, 0, 0, 0, time.UTC)

	assert.Equal(t, ahmedabad.MoonTimes(morning), ahmedabad.MoonTimes(evening))
}

func TestMoonTimes_EventsWithinDay(t *testing.T) {
	date := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	times := ahmedabad.MoonTimes(date)

	dayEnd := date.AddDate(0, 0, 1)
	if times.Rise != nil {
		assert.False(t, times.Rise.Before(date), "moonrise before the requested day")
		assert.True(t, times.Rise.Before(dayEnd), "moonrise after the requested day")
	}
	if times.Set != nil {
		assert.False(t, times.Set.Before(date), "moonset before the requested day")
		assert.True(t, times.Set.Before(dayEnd), "moonset after the requested day")
	}
}
