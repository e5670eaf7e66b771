// traj/traj_test.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package traj

import (
	gomath "math"
	"testing"
)

func TestProjectDirectionReachesTarget(t *testing.T) {
	start := State{Track: 0, GroundSpeed: 120}
	k := Kinematics{BankAngleDeg: 25, HorizontalAccel: 2, VerticalAccel: 1, AltitudeRate: 5}

	s := Project(Direction, 90, start, k, 120)
	if gomath.Abs(s.Track-90) > 0.5 {
		t.Errorf("after a long projection the track should have reached the target: got %v", s.Track)
	}
}

func TestProjectDirectionMidTurn(t *testing.T) {
	start := State{Track: 0, GroundSpeed: 120}
	k := Kinematics{BankAngleDeg: 25}

	s := Project(Direction, 90, start, k, 1)
	if s.Track <= 0 || s.Track >= 90 {
		t.Errorf("one second into a 90-degree turn, track should be strictly between 0 and 90, got %v", s.Track)
	}
}

func TestProjectHorizontalSpeedRamps(t *testing.T) {
	start := State{Track: 0, GroundSpeed: 100}
	k := Kinematics{HorizontalAccel: 2}

	before := Project(HorizontalSpeed, 140, start, k, 5)
	if before.GroundSpeed <= 100 || before.GroundSpeed >= 140 {
		t.Errorf("mid-ramp ground speed should be strictly between start and target, got %v", before.GroundSpeed)
	}

	after := Project(HorizontalSpeed, 140, start, k, 100)
	if gomath.Abs(after.GroundSpeed-140) > 1e-6 {
		t.Errorf("after the ramp completes, ground speed should equal the target, got %v", after.GroundSpeed)
	}
}

func TestProjectAltitudeCapturesAndLevels(t *testing.T) {
	start := State{Altitude: 3000}
	k := Kinematics{AltitudeRate: 5}

	mid := Project(Altitude, 3300, start, k, 30)
	if mid.Altitude <= 3000 || mid.Altitude >= 3300 {
		t.Errorf("mid-climb altitude should be strictly between start and target, got %v", mid.Altitude)
	}

	after := Project(Altitude, 3300, start, k, 100)
	if gomath.Abs(after.Altitude-3300) > 1e-6 || after.VerticalSpeed != 0 {
		t.Errorf("after altitude capture the aircraft should level at the target, got alt=%v vs=%v", after.Altitude, after.VerticalSpeed)
	}
}

func TestProjectRespectsManeuverDelay(t *testing.T) {
	start := State{Track: 0, GroundSpeed: 120}
	k := Kinematics{BankAngleDeg: 25, TimeToManeuver: 10}

	s := Project(Direction, 90, start, k, 5)
	if s.Track != 0 {
		t.Errorf("before the maneuver delay elapses, track should be unchanged, got %v", s.Track)
	}
}

func TestProjectInstantaneousSkipsTransient(t *testing.T) {
	start := State{Track: 0, GroundSpeed: 120}
	k := Kinematics{Instantaneous: true}

	s := Project(Direction, 90, start, k, 0.001)
	if gomath.Abs(s.Track-90) > 1e-6 {
		t.Errorf("instantaneous mode should skip the turn transient, got track=%v", s.Track)
	}
}
