// math/kinematics.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

const GravityMS2 = 9.80665

// TurnRateFromBank returns the steady-state turn rate in degrees/second
// for a given bank angle (degrees) and true airspeed (m/s), the same
// g*tan(bank)/V relation the teacher's Nav.turnRateAndRadius uses, just
// kept in SI rather than feet/nm.
func TurnRateFromBank(bankDeg, tasMS float64) float64 {
	if tasMS <= 0 {
		return 0
	}
	bankRad := Radians(bankDeg)
	return Degrees(GravityMS2 * gomath.Tan(bankRad) / tasMS)
}

// TurnRadius returns the radius of a level turn (meters) given true
// airspeed (m/s) and turn rate (degrees/second). R = V / omega.
func TurnRadius(tasMS, turnRateDegPerSec float64) float64 {
	omega := Radians(turnRateDegPerSec)
	if omega == 0 {
		return gomath.Inf(1)
	}
	return tasMS / omega
}

// BankFromTurnRate inverts TurnRateFromBank: the bank angle (degrees)
// needed to achieve the given turn rate at the given airspeed.
func BankFromTurnRate(turnRateDegPerSec, tasMS float64) float64 {
	omega := Radians(turnRateDegPerSec)
	return Degrees(gomath.Atan(omega * tasMS / GravityMS2))
}

// ClosestPointOfApproach returns the time (seconds, may be negative or
// beyond any horizon of interest) at which the distance between two
// constant-velocity trackers is minimized, given their relative position
// s and relative velocity v (same convention throughout: s = s_own -
// s_intruder, v = v_own - v_intruder). If v is (near) zero, range is
// constant and t=0 is returned.
func ClosestPointOfApproach(s, v Vec2) float64 {
	vv := Dot2(v, v)
	if vv < 1e-12 {
		return 0
	}
	return -Dot2(s, v) / vv
}

// PositionAt returns the relative position at time t under constant
// relative velocity.
func PositionAt(s, v Vec2, t float64) Vec2 {
	return Add2(s, Scale2(v, t))
}

// QuadraticRoots solves a*t^2 + b*t + c = 0 and returns the real roots in
// increasing order. ok is false if a==0 and b==0 (no or infinite roots)
// or if the discriminant is negative (no real roots).
func QuadraticRoots(a, b, c float64) (t1, t2 float64, ok bool) {
	if gomath.Abs(a) < 1e-15 {
		if gomath.Abs(b) < 1e-15 {
			return 0, 0, false
		}
		r := -c / b
		return r, r, true
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := gomath.Sqrt(disc)
	r1 := (-b - sq) / (2 * a)
	r2 := (-b + sq) / (2 * a)
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return r1, r2, true
}

// Bisect finds a root of f in [lo,hi] to within tolerance tol, assuming
// f(lo) and f(hi) have opposite signs (or one is ~0). Used by the bands
// engine's last-time-to-maneuver search (§4.2) and by the modified-tau
// detectors' interval-root solves.
func Bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) float64 {
	flo := f(lo)
	if gomath.Abs(flo) < tol {
		return lo
	}
	fhi := f(hi)
	if gomath.Abs(fhi) < tol {
		return hi
	}
	if Sign(flo) == Sign(fhi) {
		// No sign change: return whichever endpoint is closer to a root.
		if gomath.Abs(flo) < gomath.Abs(fhi) {
			return lo
		}
		return hi
	}
	for i := 0; i < maxIter && hi-lo > tol; i++ {
		mid := (lo + hi) / 2
		fm := f(mid)
		if Sign(fm) == Sign(flo) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
