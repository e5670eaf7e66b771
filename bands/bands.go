// bands/bands.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package bands implements the core maneuver-guidance engine
// (spec.md §4.2): for one of four maneuver dimensions (direction,
// horizontal speed, vertical speed, altitude) it enumerates candidate
// values, projects the ownship's kinematic trajectory for each,
// colours each candidate by the most severe alerting region any
// traffic aircraft raises against it, merges same-coloured candidates
// into intervals, searches for a recovery band when the whole range
// is in conflict, resolves a preferred maneuver direction, classifies
// each traffic aircraft's contribution, and finds the last time a
// maneuver could still begin and succeed.
package bands

import (
	gomath "math"

	"github.com/nasa/daidalus-go/alert"
	"github.com/nasa/daidalus-go/math"
	"github.com/nasa/daidalus-go/traj"
)

// Traffic is one intruder aircraft as seen by the bands engine: a
// constant-velocity horizontal/vertical projection and the alerter
// assigned to it for this step.
type Traffic struct {
	Position      math.Vec2
	Velocity      math.Vec2
	Altitude      float64
	VerticalSpeed float64
	Alerter       alert.Alerter
}

// PositionAt returns this traffic's projected horizontal position and
// altitude at time t, assuming straight, level, constant-velocity
// flight — traffic intent is not modeled.
func (tr Traffic) PositionAt(t float64) (pos math.Vec2, altitude float64) {
	return math.Add2(tr.Position, math.Scale2(tr.Velocity, t)), tr.Altitude + tr.VerticalSpeed*t
}

// Config carries the per-dimension parameters that drive candidate
// enumeration, trajectory generation, time sampling, and recovery
// search (spec.md §4.2, §6.1 recognized keys).
type Config struct {
	Min, Max, Step float64 // candidate range and discretisation, dimension units

	// LeftClip/RightClip narrow [Min,Max] symmetrically around the
	// ownship's current value for this dimension (spec.md §4.2 step 1,
	// "left_hdir"/"right_hdir"-style clipping); zero means unclipped.
	LeftClip, RightClip float64

	Lookahead float64 // seconds, upper end of the sampling window
	TimeStep  float64 // seconds, time-sample spacing within [0,lookahead]

	Kinematics traj.Kinematics

	RecoveryEnabled       bool
	CAFactor              float64 // recovery volume shrink step, in (0,1]
	RecoveryStabilityTime float64 // seconds a candidate must stay clear of the shrunk volume
}

// Candidate is one discretised value of the dimension under test,
// coloured by the most severe region any traffic aircraft raised
// against it within the lookahead window.
type Candidate struct {
	Value  float64
	Region alert.BandRegion
}

// Interval is a maximal run of adjacent candidates sharing a region,
// the unit the bands result is actually reported in (spec.md §3
// "Bands (result)").
type Interval struct {
	Lo, Hi float64
	Region alert.BandRegion
}

// Contains reports whether v lies within [Lo,Hi], inclusive.
func (iv Interval) Contains(v float64) bool { return v >= iv.Lo && v <= iv.Hi }

// RecoveryInfo is the result of the recovery search (spec.md §3
// "RecoveryInformation" and §4.2 step 6).
type RecoveryInfo struct {
	Saturated              bool
	SecondsToRecovery      float64
	HorizontalMissDistance float64
	VerticalMissDistance   float64
}

// Result is everything the bands engine produces for one dimension
// in one step.
type Result struct {
	Dimension traj.Dimension
	Intervals []Interval
	Active    int // index into Intervals containing the ownship's current value
	Preferred float64
	Recovery  RecoveryInfo

	// Contributing/Peripheral are computed by Classify, keyed by
	// traffic index into the slice passed to Compute.
	Contributing map[int]int // traffic index -> most severe alert level it contributes to the active band
	Peripheral   map[int]bool
}

// ActiveInterval returns the interval containing the current value,
// i.e. the one at index Active.
func (r Result) ActiveInterval() Interval {
	if r.Active < 0 || r.Active >= len(r.Intervals) {
		return Interval{Region: alert.UNKNOWN}
	}
	return r.Intervals[r.Active]
}

// Compute runs the full per-dimension bands pipeline (spec.md §4.2
// steps 1-7) for the given ownship state and traffic list, returning
// the merged, coloured, recovered, and resolved Result.
func Compute(dim traj.Dimension, own traj.State, current float64, traffic []Traffic, cfg Config) Result {
	candidates := enumerate(dim, current, cfg)
	colourAll(dim, own, candidates, traffic, cfg)
	intervals := merge(candidates)

	recovery := RecoveryInfo{}
	if allConflict(intervals) && cfg.RecoveryEnabled {
		intervals, recovery = searchRecovery(dim, own, candidates, traffic, cfg)
	}

	active := activeIndex(intervals, current)
	preferred := resolve(intervals, current, active)

	return Result{
		Dimension: dim,
		Intervals: intervals,
		Active:    active,
		Preferred: preferred,
		Recovery:  recovery,
	}
}

func allConflict(intervals []Interval) bool {
	for _, iv := range intervals {
		if iv.Region == alert.NONE {
			return false
		}
	}
	return true
}

func activeIndex(intervals []Interval, current float64) int {
	for i, iv := range intervals {
		if iv.Contains(current) {
			return i
		}
	}
	if len(intervals) == 0 {
		return -1
	}
	// Current value fell in a clipped-out gap between candidates;
	// report whichever interval is nearest.
	best, bestDist := 0, gomath.Inf(1)
	for i, iv := range intervals {
		d := gomath.Min(gomath.Abs(iv.Lo-current), gomath.Abs(iv.Hi-current))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
