// bands/bands_test.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package bands

import (
	"testing"

	"github.com/nasa/daidalus-go/alert"
	"github.com/nasa/daidalus-go/math"
	"github.com/nasa/daidalus-go/traj"
)

func headOnTraffic() []Traffic {
	return []Traffic{{
		Position: math.Vec2{0, 20000},
		Velocity: math.Vec2{0, -100},
		Altitude: 3000,
		Alerter:  alert.DefaultDO365B(),
	}}
}

func directionConfig() Config {
	return Config{
		Min: 0, Max: 359, Step: 5,
		Lookahead: 300, TimeStep: 10,
		Kinematics: traj.Kinematics{BankAngleDeg: 25},
	}
}

func TestComputeDirectionFlagsHeadOnConflict(t *testing.T) {
	own := traj.State{Track: 0, GroundSpeed: 100, Altitude: 3000}
	res := Compute(traj.Direction, own, 0, headOnTraffic(), directionConfig())

	foundConflict := false
	for _, iv := range res.Intervals {
		if iv.Region != alert.NONE && iv.Region != alert.RECOVERY {
			foundConflict = true
		}
	}
	if !foundConflict {
		t.Errorf("expected at least one conflict-coloured interval for a head-on encounter, got %+v", res.Intervals)
	}
}

func TestComputeIntervalsPartitionRange(t *testing.T) {
	own := traj.State{Track: 0, GroundSpeed: 100, Altitude: 3000}
	cfg := directionConfig()
	res := Compute(traj.Direction, own, 0, headOnTraffic(), cfg)

	if len(res.Intervals) == 0 {
		t.Fatal("expected at least one interval")
	}

	// §8-1: the returned intervals must be pairwise interior-disjoint
	// (no overlap) and exactly contiguous (no gap) between neighbours.
	for i := 1; i < len(res.Intervals); i++ {
		if res.Intervals[i].Lo < res.Intervals[i-1].Hi {
			t.Errorf("intervals %d and %d overlap: %+v, %+v", i-1, i, res.Intervals[i-1], res.Intervals[i])
		}
		if res.Intervals[i].Lo != res.Intervals[i-1].Hi {
			t.Errorf("intervals %d and %d leave a gap: %+v, %+v", i-1, i, res.Intervals[i-1], res.Intervals[i])
		}
	}

	// §8-1: the union of the returned intervals must equal the full
	// enumerated range exactly, with no uncovered edge.
	candidates := enumerate(traj.Direction, 0, cfg)
	if first, last := candidates[0].Value, candidates[len(candidates)-1].Value; res.Intervals[0].Lo != first || res.Intervals[len(res.Intervals)-1].Hi != last {
		t.Errorf("intervals span [%v,%v], expected full range [%v,%v]",
			res.Intervals[0].Lo, res.Intervals[len(res.Intervals)-1].Hi, first, last)
	}
}

func TestComputeActiveBandContainsCurrent(t *testing.T) {
	own := traj.State{Track: 0, GroundSpeed: 100, Altitude: 3000}
	res := Compute(traj.Direction, own, 0, headOnTraffic(), directionConfig())

	active := res.ActiveInterval()
	if !active.Contains(0) && !(active.Lo <= 0 || active.Hi >= 359) {
		t.Errorf("active interval %+v does not contain the current value 0", active)
	}
}

func TestComputeNoConflictWhenFarAndDiverging(t *testing.T) {
	own := traj.State{Track: 0, GroundSpeed: 100, Altitude: 3000}
	traffic := []Traffic{{
		Position: math.Vec2{0, -50000},
		Velocity: math.Vec2{0, -100},
		Altitude: 3000,
		Alerter:  alert.DefaultDO365B(),
	}}

	res := Compute(traj.Direction, own, 0, traffic, directionConfig())
	for _, iv := range res.Intervals {
		if iv.Region != alert.NONE {
			t.Errorf("expected every interval to be NONE for a distant diverging traffic, got %+v", iv)
		}
	}
	if res.Preferred != 0 {
		t.Errorf("expected preferred value to equal current (0) with no conflict, got %v", res.Preferred)
	}
}

func TestLastTimeToManeuverWithinAlertingTime(t *testing.T) {
	own := traj.State{Track: 0, GroundSpeed: 100, Altitude: 3000}
	tau := LastTimeToManeuver(traj.Direction, own, 0, headOnTraffic(), directionConfig(), 60)
	if tau < 0 || tau > 60 {
		t.Errorf("LastTimeToManeuver = %v, expected a value in [0,60]", tau)
	}
}

func TestClassifyMarksContributingTraffic(t *testing.T) {
	own := traj.State{Track: 0, GroundSpeed: 100, Altitude: 3000}
	traffic := headOnTraffic()
	cfg := directionConfig()
	res := Compute(traj.Direction, own, 0, traffic, cfg)
	res = Classify(traj.Direction, own, 0, traffic, cfg, res)

	if _, ok := res.Contributing[0]; !ok {
		t.Errorf("expected the head-on traffic to be classified as contributing, got Contributing=%v Peripheral=%v", res.Contributing, res.Peripheral)
	}
}
