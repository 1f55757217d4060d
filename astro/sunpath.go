package astro

// minDaylight is the smallest sunset-sunrise span SunProgress will divide
// by, in minutes. Malformed input or polar edge cases where the two
// coincide would otherwise divide by zero.
const minDaylight = 1.0

// SunProgress expresses the current local time as a fraction of the dayarc:
// 0 at sunrise, 1 at sunset, linear in between. Values below 0 mean
// pre-dawn, above 1 mean after sunset; callers clamp if they need to.
func SunProgress(currentMinutes, sunriseMinutes, sunsetMinutes float64) float64 {
	span := sunsetMinutes - sunriseMinutes
	if span < minDaylight {
		span = minDaylight
	}
	return (currentMinutes - sunriseMinutes) / span
}

// PhaseOpacities are cross-fade weights for the four sky layers. Each is in
// [0,1] and exactly 0 outside its window. They are layered in rendering
// order rather than normalized, so they deliberately do not sum to 1.
type PhaseOpacities struct {
	Sunrise float64 `json:"sunrise"`
	Day     float64 `json:"day"`
	Sunset  float64 `json:"sunset"`
	Night   float64 `json:"night"`
}

// SkyOpacities computes the four layer weights from a sun progress value.
// Every layer is a piecewise-linear fade: a ramp into a fully-visible
// plateau, then a ramp out. The windows overlap on purpose, which is what
// makes the gradient transitions read as one continuous sky.
func SkyOpacities(progress float64) PhaseOpacities {
	return PhaseOpacities{
		Sunrise: fade(progress, -0.10, 0.00, 0.10, 0.25),
		Day:     fade(progress, 0.05, 0.25, 0.75, 0.95),
		Sunset:  fade(progress, 0.75, 0.90, 1.00, 1.10),
		Night:   nightOpacity(progress),
	}
}

// fade ramps 0→1 over [in0,in1], holds 1 over [in1,out0], ramps 1→0 over
// [out0,out1], and is 0 everywhere else.
func fade(p, in0, in1, out0, out1 float64) float64 {
	switch {
	case p <= in0 || p >= out1:
		return 0
	case p < in1:
		return (p - in0) / (in1 - in0)
	case p <= out0:
		return 1
	default:
		return (out1 - p) / (out1 - out0)
	}
}

// nightOpacity is the complement window: fully on before dawn and after
// dusk, fading out across the sunrise band and back in across the sunset
// band.
func nightOpacity(p float64) float64 {
	switch {
	case p <= -0.10 || p >= 1.10:
		return 1
	case p < 0.05:
		return (0.05 - p) / 0.15
	case p <= 0.95:
		return 0
	default:
		return (p - 0.95) / 0.15
	}
}

// Point is a position in the widget's normalized coordinate space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ArcCurve is a quadratic Bézier describing the celestial body's path:
// P0 and P2 sit on the horizon, P1 floats above it to shape the peak.
// The control point is tunable, which is why the Bézier form was kept
// over the equivalent sinusoid.
type ArcCurve struct {
	P0, P1, P2 Point
}

// DetailArc matches the compact sun-path widget on the details panel.
func DetailArc() ArcCurve {
	return ArcCurve{P0: Point{20, 80}, P1: Point{100, 10}, P2: Point{180, 80}}
}

// CycleArc matches the wide sunrise/sunset cycle card (300x150 viewport).
func CycleArc() ArcCurve {
	return ArcCurve{P0: Point{30, 130}, P1: Point{150, 10}, P2: Point{270, 130}}
}

// Position evaluates the arc at the given progress. Outside [0,1] the body
// is below the horizon: progress is clamped so the point rests on the
// nearest horizon anchor, and callers that prefer to hide it entirely can
// check BelowHorizon first.
func (c ArcCurve) Position(progress float64) Point {
	t := progress
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	// De Casteljau: B(t) = (1-t)^2 P0 + 2(1-t)t P1 + t^2 P2
	u := 1 - t
	return Point{
		X: u*u*c.P0.X + 2*u*t*c.P1.X + t*t*c.P2.X,
		Y: u*u*c.P0.Y + 2*u*t*c.P1.Y + t*t*c.P2.Y,
	}
}

// BelowHorizon reports whether a progress value places the body under the
// horizon line.
func BelowHorizon(progress float64) bool {
	return progress < 0 || progress > 1
}
