// math/angles.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

const (
	Pi      = gomath.Pi
	TwoPi   = 2 * gomath.Pi
	PiOver2 = gomath.Pi / 2
)

func Radians(deg float64) float64 { return deg * Pi / 180 }

func Degrees(rad float64) float64 { return rad * 180 / Pi }

// NormalizeHeading reduces a heading in degrees to [0,360).
func NormalizeHeading(h float64) float64 {
	h = gomath.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// NormalizeAngle reduces an angle in radians to [0,2*Pi).
func NormalizeAngle(a float64) float64 {
	a = gomath.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// NormalizeAngleSigned reduces an angle in radians to (-Pi,Pi].
func NormalizeAngleSigned(a float64) float64 {
	a = NormalizeAngle(a)
	if a > Pi {
		a -= TwoPi
	}
	return a
}

// HeadingDifference returns the minimum difference between two headings
// in degrees; the result is always in [0,180].
func HeadingDifference(a, b float64) float64 {
	d := gomath.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// HeadingSignedTurn returns the signed turn (in degrees, positive
// clockwise/right) to go from cur to target, in (-180,180].
func HeadingSignedTurn(cur, target float64) float64 {
	rot := NormalizeHeading(180 - target)
	return 180 - NormalizeHeading(cur+rot)
}

// AngleBetween returns the unsigned angle in radians between two
// direction vectors, in [0, Pi].
func AngleBetween(v1, v2 Vec2) float64 {
	d := Dot2(Normalize2(v1), Normalize2(v2))
	return gomath.Acos(Clamp(d, -1, 1))
}

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
