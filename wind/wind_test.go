// wind/wind_test.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wind

import (
	gomath "math"
	"testing"

	"github.com/nasa/daidalus-go/math"
)

func TestAirGroundRoundTrip(t *testing.T) {
	w := Vector{V: math.Vec2{5, -3}}
	ground := math.Vec2{100, 40}
	air := w.AirVelocity(ground)
	back := w.GroundVelocity(air)

	const tol = 1e-9
	if gomath.Abs(back[0]-ground[0]) > tol || gomath.Abs(back[1]-ground[1]) > tol {
		t.Errorf("GroundVelocity(AirVelocity(g)) = %v, expected %v", back, ground)
	}
}

func TestZeroWindIsIdentity(t *testing.T) {
	var w Vector
	if !w.IsZero() {
		t.Fatalf("zero-value Vector should report IsZero()")
	}
	ground := math.Vec2{12, -7}
	if air := w.AirVelocity(ground); air != ground {
		t.Errorf("AirVelocity with zero wind = %v, expected %v unchanged", air, ground)
	}
}

func TestFromHeadingSpeedNorthWind(t *testing.T) {
	// A wind reported as "from the north" blows toward the south.
	w := FromHeadingSpeed(0, 10)
	const tol = 1e-6
	if gomath.Abs(w.V[0]) > tol || w.V[1] > -9.999 {
		t.Errorf("FromHeadingSpeed(0,10).V = %v, expected approximately {0,-10}", w.V)
	}
}
