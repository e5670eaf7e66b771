// wind/wind.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package wind carries the single process-wide wind vector and the
// ground/air velocity transform it implies (spec.md §3 "WindVector",
// §4.2's "air frame"): every hazard-volume and kinematic computation
// in the rest of the module operates on air-relative velocities, so
// the transform is applied once, at the boundary, rather than
// threaded through detectors and trajectory generators.
package wind

import (
	gomath "math"

	"github.com/nasa/daidalus-go/math"
)

// Vector is a "blowing-to" velocity: Vector{0,10} means wind blowing
// toward true north at 10 m/s. A "from" wind report is the negation.
// The zero value means no wind.
type Vector struct {
	V math.Vec2
}

// FromHeadingSpeed builds a Vector from a meteorological "from"
// heading (degrees true) and speed (m/s), negating the heading to
// get the "blowing-to" direction this package's convention expects.
func FromHeadingSpeed(fromHeadingDeg, speed float64) Vector {
	toHeading := math.NormalizeHeading(fromHeadingDeg + 180)
	rad := math.Radians(toHeading)
	return Vector{V: math.Vec2{speed * gomath.Sin(rad), speed * gomath.Cos(rad)}}
}

// AirVelocity returns the air-relative velocity given a ground
// velocity: air = ground - wind (spec.md §3).
func (w Vector) AirVelocity(ground math.Vec2) math.Vec2 {
	return math.Sub2(ground, w.V)
}

// GroundVelocity is the inverse of AirVelocity: ground = air + wind.
func (w Vector) GroundVelocity(air math.Vec2) math.Vec2 {
	return math.Add2(air, w.V)
}

// IsZero reports whether this is the no-wind vector.
func (w Vector) IsZero() bool {
	return w.V == math.Vec2{}
}
