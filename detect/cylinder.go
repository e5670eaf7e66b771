// detect/cylinder.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package detect

import gomath "math"

// Cylinder implements CD3D: a simple cylindrical hazard volume of
// horizontal radius D and vertical half-height H. Violation is
// ||s+tv||_h <= D AND |sz+t*vz| <= H simultaneously (spec.md §4.1).
type Cylinder struct {
	D float64 // horizontal radius, meters
	H float64 // vertical half-height, meters
}

func (c Cylinder) Name() string { return "CD3D" }

func (c Cylinder) Valid() bool {
	return c.D > 0 && gomath.IsInf(c.D, 0) == false && c.H > 0 && gomath.IsInf(c.H, 0) == false
}

// horizontalInterval returns the [tin,tout] interval (possibly empty)
// over which ||s+tv|| <= D, clipped to [B,T].
func horizontalInterval(s, v Vec2, D, B, T float64) (tin, tout float64, ok bool) {
	// ||s+tv||^2 = D^2  =>  (v.v) t^2 + 2(s.v) t + (s.s - D^2) = 0
	a := dot(v, v)
	b := 2 * dot(s, v)
	c := dot(s, s) - D*D

	if a < 1e-12 {
		// No relative horizontal motion: violation is static, for all
		// time if currently inside, else never.
		if dot(s, s) <= D*D {
			return B, T, true
		}
		return 0, 0, false
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
	if r2 < B || r1 > T {
		return 0, 0, false
	}
	tin = gomath.Max(r1, B)
	tout = gomath.Min(r2, T)
	if tin > tout {
		return 0, 0, false
	}
	return tin, tout, true
}

// verticalInterval returns the [tin,tout] interval over which
// |sz+t*vz| <= H, clipped to [B,T].
func verticalInterval(sz, vz, H, B, T float64) (tin, tout float64, ok bool) {
	if gomath.Abs(vz) < 1e-9 {
		if gomath.Abs(sz) <= H {
			return B, T, true
		}
		return 0, 0, false
	}
	// sz + t vz = +-H => t = (+-H - sz)/vz
	t1 := (H - sz) / vz
	t2 := (-H - sz) / vz
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t2 < B || t1 > T {
		return 0, 0, false
	}
	tin = gomath.Max(t1, B)
	tout = gomath.Min(t2, T)
	if tin > tout {
		return 0, 0, false
	}
	return tin, tout, true
}

func (c Cylinder) Conflict(so, vo Vec2, zo, zvo float64, si, vi Vec2, zi, zvi float64, B, T float64) ConflictData {
	if !c.Valid() {
		return NoConflict()
	}
	s, v, sz, vz := relative(so, vo, zo, zvo, si, vi, zi, zvi)

	hin, hout, hok := horizontalInterval(s, v, c.D, B, T)
	if !hok {
		return NoConflict()
	}
	vin, vout, vok := verticalInterval(sz, vz, c.H, B, T)
	if !vok {
		return NoConflict()
	}

	tin := gomath.Max(hin, vin)
	tout := gomath.Min(hout, vout)
	if tin > tout {
		return NoConflict()
	}

	return ConflictData{
		TimeIn:              tin,
		TimeOut:             tout,
		RelPositionAtTimeIn: posAt(s, v, tin),
		RelVelocityAtTimeIn: v,
	}
}
