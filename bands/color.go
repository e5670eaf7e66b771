// bands/color.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	gomath "math"

	"github.com/nasa/daidalus-go/alert"
	"github.com/nasa/daidalus-go/detect"
	"github.com/nasa/daidalus-go/math"
	"github.com/nasa/daidalus-go/traj"
)

// enumerate discretises [Min,Max] by Step (spec.md §4.2 step 1),
// clipped symmetrically around current when Left/RightClip are set.
// Direction is enumerated modulo 360 degrees; the other dimensions
// are linear.
func enumerate(dim traj.Dimension, current float64, cfg Config) []Candidate {
	lo, hi := cfg.Min, cfg.Max
	if dim == traj.Direction {
		if cfg.LeftClip > 0 {
			lo = current - cfg.LeftClip
		}
		if cfg.RightClip > 0 {
			hi = current + cfg.RightClip
		}
	} else {
		if cfg.LeftClip > 0 {
			lo = gomath.Max(lo, current-cfg.LeftClip)
		}
		if cfg.RightClip > 0 {
			hi = gomath.Min(hi, current+cfg.RightClip)
		}
	}

	step := cfg.Step
	if step <= 0 {
		step = 1
	}

	var candidates []Candidate
	for v := lo; v <= hi+1e-9; v += step {
		value := v
		if dim == traj.Direction {
			value = math.NormalizeHeading(v)
		}
		candidates = append(candidates, Candidate{Value: value})
	}
	return candidates
}

// colourAll fills in each candidate's Region in place: the most
// severe region any traffic aircraft raises against it across the
// sampled lookahead window (spec.md §4.2 step 3).
func colourAll(dim traj.Dimension, own traj.State, candidates []Candidate, traffic []Traffic, cfg Config) {
	for i := range candidates {
		candidates[i].Region = colourCandidate(dim, own, candidates[i].Value, traffic, cfg, -1)
	}
}

// colourCandidate is the per-candidate severity test shared by the
// main colouring pass and by peripheral/recovery analysis; skipIndex
// excludes one traffic aircraft (used by Classify's removal test), or
// is -1 to include all.
func colourCandidate(dim traj.Dimension, own traj.State, candidate float64, traffic []Traffic, cfg Config, skipIndex int) alert.BandRegion {
	worst := alert.NONE

	step := cfg.TimeStep
	if step <= 0 {
		step = 1
	}
	for t := 0.0; t <= cfg.Lookahead+1e-9; t += step {
		ownAt := traj.Project(dim, candidate, own, cfg.Kinematics, t)
		ownVel := ownAt.Velocity()

		for ti, tr := range traffic {
			if ti == skipIndex {
				continue
			}
			trPos, trAlt := tr.PositionAt(t)
			relPos := math.Sub2(ownAt.Position, trPos)
			relVel := math.Sub2(ownVel, tr.Velocity)
			relZ := ownAt.Altitude - trAlt
			relVz := ownAt.VerticalSpeed - tr.VerticalSpeed

			region := severityAt(tr.Alerter, relPos, relVel, relZ, relVz)
			if region.Severity() > worst.Severity() {
				worst = region
			}
		}
	}
	return worst
}

// severityAt scans an alerter's thresholds from most to least severe
// (mirroring alert.Alerter.Level, but using each threshold's
// EarlyAlertingTime rather than AlertingTime, as the bands engine's
// colouring pass requires — spec.md §4.2 step 3) and returns the
// region of the most severe threshold currently violated.
func severityAt(a alert.Alerter, relPos, relVel detect.Vec2, relZ, relVz float64) alert.BandRegion {
	for k := len(a.Thresholds); k >= 1; k-- {
		th := a.Thresholds[k-1]
		ok, _ := th.EarlyConflict(relPos, relVel, relZ, relVz, detect.Vec2{}, detect.Vec2{}, 0, 0, 0, 0)
		if ok {
			return th.Region
		}
	}
	return alert.NONE
}
