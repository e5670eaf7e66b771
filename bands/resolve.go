// bands/resolve.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	gomath "math"

	"github.com/nasa/daidalus-go/alert"
	"github.com/nasa/daidalus-go/math"
	"github.com/nasa/daidalus-go/traj"
)

// resolve computes the preferred maneuver value (spec.md §4.2 step
// 7): the conflict-free (or RECOVERY) interval value nearest current
// in each direction, preferring the smaller-magnitude delta, with
// ties broken toward positive. Recovery margin is not compared when
// breaking a tie.
func resolve(intervals []Interval, current float64, active int) float64 {
	if len(intervals) == 0 {
		return current
	}
	if acceptable(intervals[active].Region) {
		return current
	}

	up := nearestAcceptable(intervals, current, active, +1)
	down := nearestAcceptable(intervals, current, active, -1)

	switch {
	case gomath.IsInf(up, 1) && gomath.IsInf(down, 1):
		return current
	case gomath.IsInf(up, 1):
		return down
	case gomath.IsInf(down, 1):
		return up
	}

	du, dd := gomath.Abs(up-current), gomath.Abs(down-current)
	switch {
	case du < dd:
		return up
	case dd < du:
		return down
	default:
		return up // tie broken toward positive
	}
}

func acceptable(r alert.BandRegion) bool {
	return r == alert.NONE || r == alert.RECOVERY
}

// nearestAcceptable walks the interval list from active in direction
// dir (+1 toward higher indices/values, -1 toward lower) and returns
// the nearest boundary value of the first acceptable interval
// encountered, or +Inf if none exists in that direction.
func nearestAcceptable(intervals []Interval, current float64, active, dir int) float64 {
	for i := active; i >= 0 && i < len(intervals); i += dir {
		if !acceptable(intervals[i].Region) {
			continue
		}
		if i == active {
			return current
		}
		if dir > 0 {
			return intervals[i].Lo
		}
		return intervals[i].Hi
	}
	return gomath.Inf(1)
}

// Classify computes, for the active band of a completed Result, which
// traffic aircraft are conflict-contributing (removing them would
// strictly widen the active band) versus peripheral (they colour some
// non-active band but do not narrow the active one) — spec.md §4.2
// step 8. It re-runs the colouring pass once per traffic aircraft
// with that aircraft removed, so it is only as cheap as the original
// Compute call times len(traffic).
func Classify(dim traj.Dimension, own traj.State, current float64, traffic []Traffic, cfg Config, r Result) Result {
	r.Contributing = map[int]int{}
	r.Peripheral = map[int]bool{}

	baseActive := r.ActiveInterval()

	for i := range traffic {
		candidates := enumerate(dim, current, cfg)
		for j := range candidates {
			candidates[j].Region = colourCandidate(dim, own, candidates[j].Value, traffic, cfg, i)
		}
		withoutI := merge(candidates)
		activeIdx := activeIndex(withoutI, current)
		widened := withoutI[activeIdx].Hi-withoutI[activeIdx].Lo > baseActive.Hi-baseActive.Lo

		if widened {
			region := colourCandidate(dim, own, current, traffic[i:i+1], cfg, -1)
			level := 1
			for k, th := range traffic[i].Alerter.Thresholds {
				if region != alert.NONE && th.Region.Severity() <= region.Severity() {
					level = k + 1
				}
			}
			r.Contributing[i] = level
			continue
		}

		for _, c := range candidates {
			if c.Value >= baseActive.Lo && c.Value <= baseActive.Hi {
				continue
			}
			if colourCandidate(dim, own, c.Value, traffic[i:i+1], cfg, -1) != alert.NONE {
				r.Peripheral[i] = true
				break
			}
		}
	}
	return r
}

func overlaps(a, b Interval) bool {
	return a.Lo <= b.Hi && b.Lo <= a.Hi
}

// LastTimeToManeuver finds, for one traffic aircraft, the latest
// delay tau in [0, alertingTime] such that beginning the configured
// maneuver at tau still leaves a conflict-free (or RECOVERY) value
// available in this dimension (spec.md §4.2 step 9), via bisection.
func LastTimeToManeuver(dim traj.Dimension, own traj.State, current float64, traffic []Traffic, cfg Config, alertingTime float64) float64 {
	feasible := func(tau float64) bool {
		delayed := cfg
		delayed.Kinematics.TimeToManeuver = tau
		res := Compute(dim, own, current, traffic, delayed)
		for _, iv := range res.Intervals {
			if acceptable(iv.Region) {
				return true
			}
		}
		return false
	}

	if !feasible(0) {
		return 0
	}
	if feasible(alertingTime) {
		return alertingTime
	}

	f := func(tau float64) float64 {
		if feasible(tau) {
			return 1
		}
		return -1
	}
	return math.Bisect(f, 0, alertingTime, 0.5, 40)
}
