// alert/alert.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package alert holds the alerter/threshold taxonomy (spec.md §4.3):
// an Alerter is an ordered list of AlertThreshold entries, each naming
// a detect.Detector and the alerting/early-alerting times at which it
// fires. Evaluate scans the list from most severe to least, returning
// the highest level whose detector reports a timely conflict.
package alert

import (
	gomath "math"

	"github.com/nasa/daidalus-go/detect"
)

// BandRegion is the severity colouring applied to a bands interval or
// an alert threshold (spec.md §3 "Bands (result)").
type BandRegion int

const (
	NONE BandRegion = iota
	FAR
	MID
	NEAR
	RECOVERY
	UNKNOWN
)

func (r BandRegion) String() string {
	switch r {
	case NONE:
		return "NONE"
	case FAR:
		return "FAR"
	case MID:
		return "MID"
	case NEAR:
		return "NEAR"
	case RECOVERY:
		return "RECOVERY"
	default:
		return "UNKNOWN"
	}
}

// Severity returns the region's rank, used to pick the "most severe"
// region across traffic when colouring a bands candidate (higher is
// more severe; RECOVERY is not comparable via this ranking and is
// handled separately by the bands engine's recovery search).
func (r BandRegion) Severity() int {
	switch r {
	case NONE:
		return 0
	case FAR:
		return 1
	case MID:
		return 2
	case NEAR:
		return 3
	default:
		return -1
	}
}

// Spread narrows a dimension's candidate range around the ownship's
// current value for a given alert level; zero means "no narrowing",
// i.e. the level applies across the whole configured range.
type Spread struct {
	Direction     float64 // radians, symmetric about current track
	HorizontalGS  float64 // m/s
	VerticalSpeed float64 // m/s
	Altitude      float64 // meters
}

// AlertThreshold is one severity rung of an Alerter: a detector
// reference plus the times at which it is considered "alerting" (for
// the alert level itself) and "early alerting" (the looser time fed
// to the bands engine's per-candidate colouring, spec.md §4.2 step 3).
type AlertThreshold struct {
	Detector         detect.Detector
	AlertingTime     float64 // seconds
	EarlyAlertingTime float64 // seconds
	Region           BandRegion
	Spread           Spread
}

// Conflict evaluates this threshold's detector against a relative
// encounter, returning whether its alerting-time test is met.
func (a AlertThreshold) Conflict(so, vo detect.Vec2, zo, zvo float64, si, vi detect.Vec2, zi, zvi, now, lookahead float64) (conflict bool, cd detect.ConflictData) {
	cd = a.Detector.Conflict(so, vo, zo, zvo, si, vi, zi, zvi, now, lookahead)
	return cd.TimeIn <= a.AlertingTime, cd
}

// EarlyConflict is the looser test the bands engine uses to colour
// candidates (spec.md §4.2 step 3): the detector signals a conflict
// within early_alerting_time rather than alerting_time.
func (a AlertThreshold) EarlyConflict(so, vo detect.Vec2, zo, zvo float64, si, vi detect.Vec2, zi, zvi, now, lookahead float64) (conflict bool, cd detect.ConflictData) {
	cd = a.Detector.Conflict(so, vo, zo, zvo, si, vi, zi, zvi, now, lookahead)
	return cd.TimeIn <= a.EarlyAlertingTime, cd
}

// Alerter is an ordered, 1-indexed list of AlertThreshold values.
// Level 0 means "no alert"; level i refers to Thresholds[i-1]. The
// dominance invariant (spec.md §3, §8 property 4) requires level k+1
// to strictly dominate level k: its region outranks k's, and whenever
// k+1 detects a conflict on a given state, so does k (enforced by
// construction via non-increasing AlertingTime and non-decreasing
// Region.Severity as the list is built with ValidateDominance).
type Alerter struct {
	Name       string
	Thresholds []AlertThreshold
}

// Level returns the alert level (1-indexed; 0 = none) for the given
// relative encounter, scanning from most severe threshold to least
// per spec.md §4.3, along with the ConflictData of whichever
// threshold determined the level (the highest one tested true, or the
// least severe one's data if none alert).
func (a Alerter) Level(so, vo detect.Vec2, zo, zvo float64, si, vi detect.Vec2, zi, zvi, now, lookahead float64) (level int, cd detect.ConflictData) {
	for k := len(a.Thresholds); k >= 1; k-- {
		th := a.Thresholds[k-1]
		ok, data := th.Conflict(so, vo, zo, zvo, si, vi, zi, zvi, now, lookahead)
		if ok {
			return k, data
		}
		if k == 1 {
			cd = data
		}
	}
	if len(a.Thresholds) == 0 {
		return 0, detect.NoConflict()
	}
	return 0, cd
}

// ValidateDominance checks the invariant that level k+1 strictly
// dominates level k (spec.md §8 property 4) and that the most severe
// level's region is NEAR. It does not evaluate any detector; it only
// inspects the declared AlertingTime/Region ordering, which is how
// the dominance invariant is actually maintained in a deterministic,
// detector-independent way: a threshold whose alerting time is no
// longer than a lower level's, paired with a detector whose hazard
// volume is a subset of the lower level's, will for any real
// encounter detect only when the lower level also detects.
func (a Alerter) ValidateDominance() error {
	for k := 1; k < len(a.Thresholds); k++ {
		lo, hi := a.Thresholds[k-1], a.Thresholds[k]
		if hi.AlertingTime > lo.AlertingTime {
			return dominanceError(k+1, k, "alerting time")
		}
		if hi.Region.Severity() < lo.Region.Severity() {
			return dominanceError(k+1, k, "region severity")
		}
	}
	if n := len(a.Thresholds); n > 0 && a.Thresholds[n-1].Region != NEAR {
		return errMostSevereNotNear
	}
	return nil
}

type dominanceErr struct {
	higher, lower int
	field         string
}

func (e dominanceErr) Error() string {
	return "alerter level does not dominate lower level on " + e.field
}

func dominanceError(higher, lower int, field string) error {
	return dominanceErr{higher, lower, field}
}

var errMostSevereNotNear = dominanceErr{0, 0, "most severe level must be region NEAR"}

// NMAC is the "no miss, no conflict" limiting case used by the bands
// engine's recovery search (spec.md §4.2 step 6): a Cylinder-shaped
// floor the recovery volume is never shrunk below.
var NMAC = struct{ D, H float64 }{D: 150, H: 30.48} // 500ft horizontal, 100ft vertical

// ShrinkToNMAC linearly interpolates between a starting protected
// volume and NMAC by factor t in [0,1], t=0 giving the original
// volume and t=1 giving NMAC exactly.
func ShrinkToNMAC(d, h, t float64) (float64, float64) {
	t = gomath.Max(0, gomath.Min(1, t))
	return d*(1-t) + t*NMAC.D, h*(1-t) + t*NMAC.H
}
