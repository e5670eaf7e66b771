// daidalus/daidalus_test.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package daidalus

import (
	"testing"
	"time"

	"github.com/nasa/daidalus-go/config"
	"github.com/nasa/daidalus-go/math"
	"github.com/nasa/daidalus-go/traj"
)

func headOn(t *testing.T) (*Daidalus, time.Time) {
	t.Helper()
	d := New(config.Default())
	now := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)

	own := AircraftState{
		ID:             "own",
		Frame:          FrameLocalEuclidean,
		Local:          math.Vec2{0, 0},
		Altitude:       3000,
		GroundVelocity: math.Vec2{0, 100}, // heading north
		Time:           now,
	}
	d.SetOwnship(own)

	intruder := AircraftState{
		ID:             "intruder",
		Frame:          FrameLocalEuclidean,
		Local:          math.Vec2{0, 20000}, // 20km ahead
		Altitude:       3000,
		GroundVelocity: math.Vec2{0, -100}, // head-on
		Time:           now,
	}
	d.AddTraffic(intruder)
	return d, now
}

func TestSetOwnshipClearsTraffic(t *testing.T) {
	d, now := headOn(t)
	if d.NumberOfAircraft() != 2 {
		t.Fatalf("expected 2 aircraft, got %d", d.NumberOfAircraft())
	}
	d.SetOwnship(AircraftState{
		ID: "own", Frame: FrameLocalEuclidean, Time: now,
		GroundVelocity: math.Vec2{0, 100},
	})
	if d.NumberOfAircraft() != 1 {
		t.Errorf("SetOwnship should clear traffic, got %d aircraft", d.NumberOfAircraft())
	}
}

func TestAlertLevelEscalatesForHeadOnConflict(t *testing.T) {
	d, now := headOn(t)
	level := d.AlertLevel("intruder", now)
	if level <= 0 {
		t.Errorf("expected a positive alert level for a closing head-on encounter, got %d", level)
	}
}

func TestAlertLevelUnknownAircraft(t *testing.T) {
	d, now := headOn(t)
	if level := d.AlertLevel("nonexistent", now); level != -1 {
		t.Errorf("expected -1 for unknown aircraft, got %d", level)
	}
}

func TestTimeToViolationNaNForUnknownAircraft(t *testing.T) {
	d, _ := headOn(t)
	v := d.TimeToViolation("nonexistent")
	if v == v { // NaN != NaN
		t.Errorf("expected NaN for unknown aircraft, got %v", v)
	}
	if !d.Log.HasError() {
		t.Errorf("expected an error to be logged for an unknown aircraft")
	}
}

func TestBandsDirectionShowsConflictAhead(t *testing.T) {
	d, now := headOn(t)
	result := d.Bands(traj.Direction, now)
	if len(result.Intervals) == 0 {
		t.Fatal("expected at least one interval")
	}
	foundConflict := false
	for _, iv := range result.Intervals {
		if iv.Region != 0 { // not alert.NONE
			foundConflict = true
		}
	}
	if !foundConflict {
		t.Errorf("expected some direction values to be in conflict for a head-on encounter")
	}
}

func TestBandsCachesResult(t *testing.T) {
	d, now := headOn(t)
	first := d.Bands(traj.Altitude, now)
	second := d.Bands(traj.Altitude, now)
	if len(first.Intervals) != len(second.Intervals) {
		t.Errorf("expected cached result to match recomputed result")
	}
}

func TestDTAInactiveByDefault(t *testing.T) {
	d, _ := headOn(t)
	if d.dta != DTAInactive {
		t.Errorf("expected DTA inactive with default parameters, got %v", d.dta)
	}
}

func TestRegisterAlerterRejectsNonDominant(t *testing.T) {
	d, _ := headOn(t)
	bad := d.alerters["default"]
	bad.Name = "bad"
	// Reverse the thresholds so the ordering no longer dominates.
	bad.Thresholds[0], bad.Thresholds[len(bad.Thresholds)-1] = bad.Thresholds[len(bad.Thresholds)-1], bad.Thresholds[0]
	if err := d.RegisterAlerter(bad); err == nil {
		t.Errorf("expected a dominance validation error")
	}
}
