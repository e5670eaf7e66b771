// daidalus/aircraft.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package daidalus is the top-level coordinator (spec.md §4.5): it
// owns one step's inputs (ownship, traffic, wind, uncertainties, DTA
// status), a lazy cache keyed on a fingerprint of those inputs plus
// the parameter snapshot, and wires the detect/alert/bands/hysteresis
// packages together to answer alerting and bands queries.
package daidalus

import (
	"fmt"
	"time"

	"github.com/nasa/daidalus-go/math"
	"github.com/nasa/daidalus-go/wind"
)

// Uncertainty carries the optional per-aircraft sensor covariance
// fields named in spec.md §3 "AircraftState": horizontal position
// (E-W, N-S, E-N std-devs), vertical position std-dev, horizontal
// velocity covariance, vertical velocity std-dev. Zero value means
// "no uncertainty reported".
type Uncertainty struct {
	HorizontalPositionEW, HorizontalPositionNS, HorizontalPositionEN float64
	VerticalPosition                                                float64
	HorizontalVelocityEW, HorizontalVelocityNS, HorizontalVelocityEN float64
	VerticalVelocity                                                float64
}

// Frame distinguishes the two coordinate conventions an AircraftState
// may be supplied in; every aircraft in a step must use the same one
// (spec.md §3 invariant "matching frame across the step").
type Frame int

const (
	FrameGeodesic Frame = iota
	FrameLocalEuclidean
)

// AircraftState is one aircraft's state at a single time-of-applicability
// (spec.md §3). Position is interpreted according to Frame: geodesic
// states carry LatLon; local-Euclidean states carry Local directly.
type AircraftState struct {
	ID string

	Frame    Frame
	LatLon   math.LatLon
	Local    math.Vec2
	Altitude float64 // meters

	GroundVelocity math.Vec2 // east/north, m/s
	VerticalSpeed  float64   // m/s

	Time time.Time

	Uncertainty *Uncertainty
}

// Valid reports whether the state satisfies spec.md §3's numeric
// invariants: finite components and a non-empty identifier. It does
// not check cross-aircraft invariants (unique id, matching frame),
// which are the coordinator's responsibility since they need the
// whole traffic list.
func (a AircraftState) Valid() bool {
	if a.ID == "" {
		return false
	}
	if !finite(a.Altitude) || !finite(a.VerticalSpeed) {
		return false
	}
	if !finite(a.GroundVelocity[0]) || !finite(a.GroundVelocity[1]) {
		return false
	}
	switch a.Frame {
	case FrameGeodesic:
		return finite(a.LatLon[0]) && finite(a.LatLon[1])
	case FrameLocalEuclidean:
		return finite(a.Local[0]) && finite(a.Local[1])
	default:
		return false
	}
}

func finite(f float64) bool {
	return f == f && f+1 != f // NaN != NaN; +Inf+1 == +Inf
}

// LocalPosition returns the aircraft's horizontal position in a local
// Euclidean frame anchored at origin: a passthrough for
// FrameLocalEuclidean states, or math.LocalEuclidean's flat-earth
// projection for FrameGeodesic ones.
func (a AircraftState) LocalPosition(origin math.LatLon) math.Vec2 {
	if a.Frame == FrameLocalEuclidean {
		return a.Local
	}
	return math.LocalEuclidean(origin, a.LatLon)
}

// AirVelocity returns this aircraft's velocity in the wind-relative
// (air) frame (spec.md §3 "Air velocity = ground velocity - wind vector").
func (a AircraftState) AirVelocity(w wind.Vector) math.Vec2 {
	return w.AirVelocity(a.GroundVelocity)
}

// String renders a short diagnostic identity, used in logging and
// error-log messages.
func (a AircraftState) String() string {
	return fmt.Sprintf("%s@%s", a.ID, a.Time.Format(time.RFC3339))
}
