package astro

import (
	"math"
	"time"
)

// SynodicMonth is the mean period between successive new moons, in days.
const SynodicMonth = 29.530588853

// newMoonEpoch is a reference new moon: 2000-01-06 18:14 UTC.
var newMoonEpoch = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// MoonPhase returns the lunar phase at t as a fraction of the synodic
// cycle: 0 = new moon, 0.5 = full moon, always in [0,1). This is an
// offline epoch approximation, good to about a day versus a real
// ephemeris, which is plenty for decorative rendering and nothing more.
func MoonPhase(t time.Time) float64 {
	days := t.Sub(newMoonEpoch).Hours() / 24
	phase := math.Mod(days/SynodicMonth, 1)
	if phase < 0 {
		phase++
	}
	return phase
}

// MoonIllumination approximates the illuminated fraction from a phase
// value: 0 at new moon, 1 at full, following a cosine curve between.
func MoonIllumination(phase float64) float64 {
	return (1 - math.Cos(2*math.Pi*phase)) / 2
}

// Waxing reports whether illumination is increasing at the given phase.
func Waxing(phase float64) bool {
	return phase < 0.5
}

// MoonPhaseName is the categorical name of one eighth of the lunar cycle.
type MoonPhaseName string

const (
	NewMoon        MoonPhaseName = "New Moon"
	WaxingCrescent MoonPhaseName = "Waxing Crescent"
	FirstQuarter   MoonPhaseName = "First Quarter"
	WaxingGibbous  MoonPhaseName = "Waxing Gibbous"
	FullMoon       MoonPhaseName = "Full Moon"
	WaningGibbous  MoonPhaseName = "Waning Gibbous"
	LastQuarter    MoonPhaseName = "Last Quarter"
	WaningCrescent MoonPhaseName = "Waning Crescent"
)

var phaseNames = [8]MoonPhaseName{
	NewMoon, WaxingCrescent, FirstQuarter, WaxingGibbous,
	FullMoon, WaningGibbous, LastQuarter, WaningCrescent,
}

// PhaseName buckets a phase value into one of the eight named phases.
// The buckets are equal width, so the exact quarter values 0, 0.25, 0.5
// and 0.75 land on their named quarter rather than an adjacent bucket.
func PhaseName(phase float64) MoonPhaseName {
	idx := int(math.Floor(phase * 8))
	if idx < 0 {
		idx = 0
	}
	if idx > 7 {
		idx = 7
	}
	return phaseNames[idx]
}
