// Package ambilite estimates ambient daylight from the sun's position.
package ambilite

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// Civil twilight ends when the sun is this far below the horizon.
const CivilTwilight = -6.0

// Intensity returns ambient light in [0, 1] at t for a place: 0 below civil
// twilight, 1 once the sun is up, linear in altitude in between.
func Intensity(t time.Time, lat, lon float64) float64 {
	alt := Altitude(t, lat, lon)
	return max(0, min(1, (alt-CivilTwilight)/-CivilTwilight))
}

// IsDay reports whether at least half of the daylight is there.
func IsDay(t time.Time, lat, lon float64) bool {
	return Intensity(t, lat, lon) >= 0.5
}

// Altitude returns the apparent solar altitude in degrees at t for lat, lon
// (east positive).
func Altitude(t time.Time, lat, lon float64) float64 {
	jd := julian.TimeToJD(t.UTC())
	θ := sidereal.Apparent(jd).Rad() + lon*math.Pi/180
	ra, dec := solar.ApparentEquatorial(jd)
	H := math.Mod(θ-ra.Rad()+2*math.Pi, 2*math.Pi)
	φ := lat * math.Pi / 180
	δ := dec.Rad()
	sinAlt := math.Sin(φ)*math.Sin(δ) + math.Cos(φ)*math.Cos(δ)*math.Cos(H)
	return math.Asin(sinAlt) * 180 / math.Pi
}

// NextChange returns the first minute after t, within a day, at which IsDay
// flips. The second result is false during polar day or night.
func NextChange(t time.Time, lat, lon float64) (time.Time, bool) {
	day := IsDay(t, lat, lon)
	for m := 1; m <= 24*60; m++ {
		at := t.Add(time.Duration(m) * time.Minute)
		if IsDay(at, lat, lon) != day {
			return at, true
		}
	}
	return time.Time{}, false
}
