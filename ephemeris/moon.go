package ephemeris

import (
	"math"
	"time"

	"github.com/hardipatel2510/WeatherX/astro"
)

// SunCalc-style lunar math. Angles are radians throughout; d is days since
// the J2000.0 epoch.

const (
	rad       = math.Pi / 180
	obliquity = rad * 23.4397 // of the ecliptic, J2000

	sunDistanceKm = 149598000.0
)

var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

func toDays(t time.Time) float64 {
	return t.UTC().Sub(j2000).Hours() / 24
}

func rightAscension(l, b float64) float64 {
	return math.Atan2(math.Sin(l)*math.Cos(obliquity)-math.Tan(b)*math.Sin(obliquity), math.Cos(l))
}

func declination(l, b float64) float64 {
	return math.Asin(math.Sin(b)*math.Cos(obliquity) + math.Cos(b)*math.Sin(obliquity)*math.Sin(l))
}

func siderealTime(d, lw float64) float64 {
	return rad*(280.16+360.9856235*d) - lw
}

func bodyAltitude(hourAngle, phi, dec float64) float64 {
	return math.Asin(math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(hourAngle))
}

// astroRefraction approximates atmospheric refraction for an altitude in
// radians, valid near and above the horizon.
func astroRefraction(h float64) float64 {
	if h < 0 {
		h = 0
	}
	return 0.0002967 / math.Tan(h+0.00312536/(h+0.08901179))
}

// sunCoords returns the sun's equatorial coordinates at d.
func sunCoords(d float64) (dec, ra float64) {
	m := rad * (357.5291 + 0.98560028*d)
	center := rad * (1.9148*math.Sin(m) + 0.02*math.Sin(2*m) + 0.0003*math.Sin(3*m))
	perihelion := rad * 102.9372
	l := m + center + perihelion + math.Pi
	return declination(l, 0), rightAscension(l, 0)
}

// moonCoords returns the moon's equatorial coordinates and distance (km).
func moonCoords(d float64) (dec, ra, dist float64) {
	el := rad * (218.316 + 13.176396*d) // ecliptic longitude
	ma := rad * (134.963 + 13.064993*d) // mean anomaly
	f := rad * (93.272 + 13.229350*d)   // mean distance

	l := el + rad*6.289*math.Sin(ma)
	b := rad * 5.128 * math.Sin(f)
	dist = 385001 - 20905*math.Cos(ma)

	return declination(l, b), rightAscension(l, b), dist
}

// MoonIllumination returns the illuminated fraction, cycle phase and bright
// limb angle at t, from the relative positions of the sun and moon.
func (o Observer) MoonIllumination(t time.Time) astro.Illumination {
	d := toDays(t)
	sdec, sra := sunCoords(d)
	mdec, mra, mdist := moonCoords(d)

	// geocentric elongation and phase angle
	phi := math.Acos(math.Sin(sdec)*math.Sin(mdec) + math.Cos(sdec)*math.Cos(mdec)*math.Cos(sra-mra))
	inc := math.Atan2(sunDistanceKm*math.Sin(phi), mdist-sunDistanceKm*math.Cos(phi))
	angle := math.Atan2(math.Cos(sdec)*math.Sin(sra-mra),
		math.Sin(sdec)*math.Cos(mdec)-math.Cos(sdec)*math.Sin(mdec)*math.Cos(sra-mra))

	sign := 1.0
	if angle < 0 {
		sign = -1
	}

	return astro.Illumination{
		Fraction: (1 + math.Cos(inc)) / 2,
		Phase:    0.5 + 0.5*inc*sign/math.Pi,
		Angle:    angle,
	}
}

// MoonAltitude returns the moon's refracted altitude in radians at t.
func (o Observer) MoonAltitude(t time.Time) float64 {
	lw := rad * -o.Lon
	phi := rad * o.Lat
	d := toDays(t)

	dec, ra, _ := moonCoords(d)
	h := bodyAltitude(siderealTime(d, lw)-ra, phi, dec)
	return h + astroRefraction(h)
}

// MoonTimes finds moonrise and moonset on the calendar day starting at
// date (UTC midnight is used as the day origin).
func (o Observer) MoonTimes(date time.Time) MoonTimes {
	day := date.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return o.MoonTimesFrom(start)
}

// MoonTimesFrom finds moonrise and moonset in the 24 hours following
// start. Callers that care about a place's local day pass its local
// midnight expressed in UTC. The scan samples the moon's altitude every
// two hours and locates horizon crossings by fitting a parabola through
// each triple of samples.
func (o Observer) MoonTimesFrom(start time.Time) MoonTimes {
	hc := 0.133 * rad // mean angular radius correction
	h0 := o.MoonAltitude(start) - hc

	var riseHour, setHour float64
	var haveRise, haveSet bool
	var ye float64

	for i := 1.0; i <= 24; i += 2 {
		h1 := o.MoonAltitude(start.Add(time.Duration(i*float64(time.Hour)))) - hc
		h2 := o.MoonAltitude(start.Add(time.Duration((i+1)*float64(time.Hour)))) - hc

		a := (h0+h2)/2 - h1
		b := (h2 - h0) / 2
		xe := -b / (2 * a)
		ye = (a*xe+b)*xe + h1
		disc := b*b - 4*a*h1

		roots := 0
		var x1, x2 float64
		if disc >= 0 {
			dx := math.Sqrt(disc) / (math.Abs(a) * 2)
			x1 = xe - dx
			x2 = xe + dx
			if math.Abs(x1) <= 1 {
				roots++
			}
			if math.Abs(x2) <= 1 {
				roots++
			}
			if x1 < -1 {
				x1 = x2
			}
		}

		switch roots {
		case 1:
			if h0 < 0 {
				riseHour, haveRise = i+x1, true
			} else {
				setHour, haveSet = i+x1, true
			}
		case 2:
			if ye < 0 {
				riseHour, haveRise = i+x2, true
				setHour, haveSet = i+x1, true
			} else {
				riseHour, haveRise = i+x1, true
				setHour, haveSet = i+x2, true
			}
		}

		if haveRise && haveSet {
			break
		}
		h0 = h2
	}

	var mt MoonTimes
	if haveRise {
		t := start.Add(time.Duration(riseHour * float64(time.Hour)))
		mt.Rise = &t
	}
	if haveSet {
		t := start.Add(time.Duration(setHour * float64(time.Hour)))
		mt.Set = &t
	}
	if !haveRise && !haveSet {
		if ye > 0 {
			mt.AlwaysUp = true
		} else {
			mt.AlwaysDown = true
		}
	}
	return mt
}
