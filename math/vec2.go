// math/vec2.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package math provides the vector, angle, and geodesic primitives shared
// by the detection, bands, and trajectory packages. Unlike a rendering
// engine, conflict geometry is root-solved in closed form, so everything
// here is float64 rather than the float32 a graphics pipeline would want.
package math

import gomath "math"

// Vec2 is a 2-D vector or point in a local, wind-relative (air-frame)
// Euclidean plane: x is east, y is north, both in meters.
type Vec2 [2]float64

func Add2(a, b Vec2) Vec2 { return Vec2{a[0] + b[0], a[1] + b[1]} }

func Sub2(a, b Vec2) Vec2 { return Vec2{a[0] - b[0], a[1] - b[1]} }

func Scale2(a Vec2, s float64) Vec2 { return Vec2{a[0] * s, a[1] * s} }

func Dot2(a, b Vec2) float64 { return a[0]*b[0] + a[1]*b[1] }

// Cross2 is the z component of the 3-D cross product of a and b, treated
// as lying in the z=0 plane; positive when b is counter-clockwise from a.
func Cross2(a, b Vec2) float64 { return a[0]*b[1] - a[1]*b[0] }

func Length2(a Vec2) float64 { return gomath.Hypot(a[0], a[1]) }

func LengthSqr2(a Vec2) float64 { return a[0]*a[0] + a[1]*a[1] }

func Distance2(a, b Vec2) float64 { return Length2(Sub2(a, b)) }

func Normalize2(a Vec2) Vec2 {
	l := Length2(a)
	if l == 0 {
		return Vec2{0, 0}
	}
	return Scale2(a, 1/l)
}

// Rotate2 rotates v by angle radians counter-clockwise.
func Rotate2(v Vec2, angle float64) Vec2 {
	s, c := gomath.Sincos(angle)
	return Vec2{v[0]*c - v[1]*s, v[0]*s + v[1]*c}
}

// Perp2 returns the vector rotated 90 degrees counter-clockwise.
func Perp2(v Vec2) Vec2 { return Vec2{-v[1], v[0]} }

// Vec3 adds an altitude component (meters, positive up) to Vec2.
type Vec3 [3]float64

func Add3(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Sub3(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func Scale3(a Vec3, s float64) Vec3 {
	return Vec3{a[0] * s, a[1] * s, a[2] * s}
}

// Horizontal returns the 2-D projection of v.
func (v Vec3) Horizontal() Vec2 { return Vec2{v[0], v[1]} }

func (v Vec3) Vertical() float64 { return v[2] }

func Make3(h Vec2, z float64) Vec3 { return Vec3{h[0], h[1], z} }

func HorizontalLength(v Vec3) float64 { return Length2(v.Horizontal()) }
