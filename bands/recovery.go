// bands/recovery.go
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

// shrinkDetector returns a copy of d with its protected volume shrunk
// toward alert.NMAC by factor t (spec.md §4.2 step 6); detectors
// without a horizontal/vertical protected-volume shape (TCASII's
// altitude-indexed table) are left unchanged, since the recovery
// search only ever shrinks the uniform-volume CD3D/WCV family that
// default alerter presets use for their most severe rung.
func shrinkDetector(d detect.Detector, t float64) detect.Detector {
	switch dd := d.(type) {
	case detect.Cylinder:
		nd, nh := alert.ShrinkToNMAC(dd.D, dd.H, t)
		return detect.Cylinder{D: nd, H: nh}
	case detect.WCV:
		nd, nh := alert.ShrinkToNMAC(dd.DTHR, dd.ZTHR, t)
		dd.DTHR, dd.ZTHR = nd, nh
		return dd
	default:
		return d
	}
}

// clearFromTime returns the latest time in [0,lookahead] at which any
// traffic aircraft is found inside the shrunk-volume detector when
// evaluated against the candidate's trajectory, or -1 if the
// candidate is clear for the whole window.
func clearFromTime(dim traj.Dimension, own traj.State, candidate float64, traffic []Traffic, cfg Config, shrink float64) float64 {
	step := cfg.TimeStep
	if step <= 0 {
		step = 1
	}
	lastViolation := -1.0
	for t := 0.0; t <= cfg.Lookahead+1e-9; t += step {
		ownAt := traj.Project(dim, candidate, own, cfg.Kinematics, t)
		ownVel := ownAt.Velocity()

		for _, tr := range traffic {
			if len(tr.Alerter.Thresholds) == 0 {
				continue
			}
			mostSevere := tr.Alerter.Thresholds[len(tr.Alerter.Thresholds)-1]
			shrunk := shrinkDetector(mostSevere.Detector, shrink)

			trPos, trAlt := tr.PositionAt(t)
			cd := shrunk.Conflict(ownAt.Position, ownVel, ownAt.Altitude, ownAt.VerticalSpeed,
				trPos, tr.Velocity, trAlt, tr.VerticalSpeed, 0, 0)
			if cd.TimeIn == 0 {
				lastViolation = t
			}
		}
	}
	return lastViolation
}

// searchRecovery implements spec.md §4.2 step 6: shrink the recovery
// volume by CAFactor increments, looking for the candidate(s) that
// clear the shrunk volume fastest and stay clear for
// RecoveryStabilityTime. Returns the recoloured intervals (with a
// RECOVERY band substituted where found) and the resulting
// RecoveryInformation.
func searchRecovery(dim traj.Dimension, own traj.State, candidates []Candidate, traffic []Traffic, cfg Config) ([]Interval, RecoveryInfo) {
	caFactor := cfg.CAFactor
	if caFactor <= 0 {
		caFactor = 0.1
	}

	for shrink := caFactor; shrink <= 1.0+1e-9; shrink += caFactor {
		bestExit := gomath.Inf(1)
		recovered := make([]bool, len(candidates))
		exits := make([]float64, len(candidates))
		any := false

		for i, c := range candidates {
			lastViol := clearFromTime(dim, own, c.Value, traffic, cfg, shrink)
			exitTime := 0.0
			if lastViol >= 0 {
				exitTime = lastViol
			}
			if cfg.Lookahead-exitTime < cfg.RecoveryStabilityTime {
				continue
			}
			recovered[i] = true
			exits[i] = exitTime
			any = true
			if exitTime < bestExit {
				bestExit = exitTime
			}
		}

		if !any {
			continue
		}
		for i := range recovered {
			recovered[i] = recovered[i] && exits[i] == bestExit
		}

		recoloured := make([]Candidate, len(candidates))
		copy(recoloured, candidates)
		for i, ok := range recovered {
			if ok {
				recoloured[i].Region = alert.RECOVERY
			}
		}

		hMiss, vMiss := recoveryMissDistance(dim, own, candidates, traffic, cfg, recovered)
		return merge(recoloured), RecoveryInfo{
			Saturated:              false,
			SecondsToRecovery:      bestExit,
			HorizontalMissDistance: hMiss,
			VerticalMissDistance:   vMiss,
		}
	}

	return merge(candidates), RecoveryInfo{Saturated: true}
}

// recoveryMissDistance reports the closest horizontal/vertical
// separation achieved by the first recovered candidate, used to
// populate RecoveryInformation's miss-distance fields.
func recoveryMissDistance(dim traj.Dimension, own traj.State, candidates []Candidate, traffic []Traffic, cfg Config, recovered []bool) (float64, float64) {
	idx := -1
	for i, ok := range recovered {
		if ok {
			idx = i
			break
		}
	}
	if idx < 0 || len(traffic) == 0 {
		return gomath.Inf(1), gomath.Inf(1)
	}

	minH, minV := gomath.Inf(1), gomath.Inf(1)
	step := cfg.TimeStep
	if step <= 0 {
		step = 1
	}
	for t := 0.0; t <= cfg.Lookahead+1e-9; t += step {
		ownAt := traj.Project(dim, candidates[idx].Value, own, cfg.Kinematics, t)
		for _, tr := range traffic {
			trPos, trAlt := tr.PositionAt(t)
			h := math.Distance2(ownAt.Position, trPos)
			v := gomath.Abs(ownAt.Altitude - trAlt)
			minH = gomath.Min(minH, h)
			minV = gomath.Min(minV, v)
		}
	}
	return minH, minV
}
