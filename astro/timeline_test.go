package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedObserver feeds MoonTimeline a deterministic illumination curve.
type fixedObserver struct{}

func (fixedObserver) MoonIllumination(t time.Time) Illumination {
	phase := MoonPhase(t)
	return Illumination{Fraction: MoonIllumination(phase), Phase: phase}
}

func TestMoonTimeline(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	items := MoonTimeline(fixedObserver{}, now)

	assert.Len(t, items, 7)
	assert.Equal(t, "Today", items[0].Label)

	for i, item := range items {
		wantDate := now.AddDate(0, 0, i)
		assert.Equal(t, wantDate.Day(), item.Date.Day(), "entry %d", i)
		if i > 0 {
			assert.Equal(t, wantDate.Format("Mon"), item.Label, "entry %d", i)
		}
		assert.GreaterOrEqual(t, item.Fraction, 0.0)
		assert.LessOrEqual(t, item.Fraction, 1.0)
		assert.Equal(t, item.Phase < 0.5, item.Waxing, "entry %d", i)
	}
}

func TestMoonTimeline_Deterministic(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	first := MoonTimeline(fixedObserver{}, now)
	second := MoonTimeline(fixedObserver{}, now)
	assert.Equal(t, first, second, "same instant must produce identical timelines")
}
