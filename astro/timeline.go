package astro

import (
	"time"

	"github.com/hardipatel2510/WeatherX/models"
)

// Illumination is the moon lighting state reported by an ephemeris:
// Fraction is the illuminated fraction [0,1], Phase the cycle position
// [0,1), Angle the midpoint angle of the bright limb in radians.
type Illumination struct {
	Fraction float64
	Phase    float64
	Angle    float64
}

// MoonObserver is the ephemeris surface the timeline consumes. The math
// behind it is swappable; only the shape here is load-bearing.
type MoonObserver interface {
	MoonIllumination(t time.Time) Illumination
}

// MoonTimeline builds the 7-day forward-looking lunar strip starting at
// now. It is a pure function of its inputs: calling it twice with the same
// observer and instant yields identical output.
func MoonTimeline(obs MoonObserver, now time.Time) []models.MoonTimelineItem {
	items := make([]models.MoonTimelineItem, 0, 7)
	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, i)
		illum := obs.MoonIllumination(date)

		label := date.Format("Mon")
		if i == 0 {
			label = "Today"
		}

		items = append(items, models.MoonTimelineItem{
			Date:     date,
			Label:    label,
			Fraction: illum.Fraction,
			Phase:    illum.Phase,
			Waxing:   illum.Phase < 0.5,
		})
	}
	return items
}
