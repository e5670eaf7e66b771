// detect/detector.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package detect implements the pairwise hazard-volume detectors: given a
// relative position and velocity between ownship and a traffic aircraft,
// each Detector answers whether (and when, within a lookahead window)
// they violate a hazard region. Detectors are pure functions of their
// parameters and the relative state; they never mutate state and never
// return a Go error, per the "no throw" failure mode of spec.md §4.1/§7 —
// preconditions that aren't met report "no conflict" instead.
package detect

import gomath "math"

// Sentinel diagnostics naming a failed horizontal or vertical
// root-solve (spec.md §7). The detectors in this package do not set
// them: a failed solve is reported as NoConflict() with an empty
// Diagnostic.
const (
	NoHorizontalSolution = "no horizontal solution"
	NoVerticalSolution   = "no vertical solution"
)

// ConflictData is the result of evaluating a Detector over a lookahead
// window [B,T]. TimeIn == 0 means currently in violation; TimeIn == +Inf
// means no conflict anywhere in [B,T]. TimeIn is always <= TimeOut when
// finite.
type ConflictData struct {
	TimeIn  float64
	TimeOut float64

	// Closure state at TimeIn (or at B if already in violation), useful
	// for diagnostics and for the recovery search's "closest approach".
	RelPositionAtTimeIn Vec2
	RelVelocityAtTimeIn Vec2

	Diagnostic string // one of the sentinels above, or "" if none
}

// Vec2 mirrors math.Vec2 to avoid every detector importing the math
// package just for the type; conversions are trivial at call sites.
type Vec2 = [2]float64

// NoConflict is the canonical "no conflict anywhere in the window" result.
func NoConflict() ConflictData {
	return ConflictData{TimeIn: gomath.Inf(1), TimeOut: gomath.Inf(1)}
}

// InViolationNow builds a result for "currently in violation", with the
// given time-out.
func InViolationNow(timeOut float64, s, v Vec2) ConflictData {
	return ConflictData{TimeIn: 0, TimeOut: timeOut, RelPositionAtTimeIn: s, RelVelocityAtTimeIn: v}
}

// Detector is the strategy interface every hazard-volume test
// implements. so, vo are ownship horizontal position/velocity; si, vi
// are the intruder's; zo, zvo, zi, zvi are the corresponding vertical
// (altitude) position/rate components. B and T bound the lookahead
// window to search, in seconds relative to "now" (so B is usually 0).
type Detector interface {
	// Conflict returns whether/when the two aircraft are in violation of
	// this detector's hazard volume within [B,T].
	Conflict(so, vo Vec2, zo, zvo float64, si, vi Vec2, zi, zvi float64, B, T float64) ConflictData

	// Name identifies the detector variant, used for logging and for
	// matching a detector reference from an Alerter's threshold table.
	Name() string

	// Valid reports whether the detector's own parameters are positive
	// finite as required; an invalid detector always reports NoConflict.
	Valid() bool
}

// relative computes (s, v) = (ownship - intruder) for both the
// horizontal and vertical components, the convention every detector
// below is built on.
func relative(so, vo Vec2, zo, zvo float64, si, vi Vec2, zi, zvi float64) (s, v Vec2, sz, vz float64) {
	s = Vec2{so[0] - si[0], so[1] - si[1]}
	v = Vec2{vo[0] - vi[0], vo[1] - vi[1]}
	sz = zo - zi
	vz = zvo - zvi
	return
}

func dot(a, b Vec2) float64 { return a[0]*b[0] + a[1]*b[1] }

func length(a Vec2) float64 { return gomath.Hypot(a[0], a[1]) }

func posAt(s, v Vec2, t float64) Vec2 {
	return Vec2{s[0] + v[0]*t, s[1] + v[1]*t}
}
