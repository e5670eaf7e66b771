// detect/cylinder_test.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package detect

import (
	gomath "math"
	"testing"
)

func TestCylinderHeadOnConflict(t *testing.T) {
	tests := []struct {
		name        string
		so, vo      Vec2
		si, vi      Vec2
		zo, zi      float64
		wantConflict bool
		tolerance   float64
	}{
		{
			name: "head-on closing, same altitude",
			so:   Vec2{0, 0}, vo: Vec2{0, 100},
			si: Vec2{0, 20000}, vi: Vec2{0, -100},
			zo: 3000, zi: 3000,
			wantConflict: true,
		},
		{
			name: "parallel tracks, well separated",
			so:   Vec2{0, 0}, vo: Vec2{0, 100},
			si: Vec2{20000, 0}, vi: Vec2{0, 100},
			zo: 3000, zi: 3000,
			wantConflict: false,
		},
		{
			name: "diverging, no conflict",
			so:   Vec2{0, 0}, vo: Vec2{0, -100},
			si: Vec2{0, 20000}, vi: Vec2{0, 100},
			zo: 3000, zi: 3000,
			wantConflict: false,
		},
		{
			name: "altitude separated, lateral collision course",
			so:   Vec2{0, 0}, vo: Vec2{0, 100},
			si: Vec2{0, 20000}, vi: Vec2{0, -100},
			zo: 3000, zi: 6000,
			wantConflict: false,
		},
	}

	c := Cylinder{D: 1852, H: 150} // 1nm, ~500ft

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := c.Conflict(tt.so, tt.vo, tt.zo, 0, tt.si, tt.vi, tt.zi, 0, 0, 600)
			got := cd.TimeIn <= cd.TimeOut && !gomath.IsInf(cd.TimeIn, 1)
			if got != tt.wantConflict {
				t.Errorf("Conflict() in-window = %v (TimeIn=%v TimeOut=%v), expected %v",
					got, cd.TimeIn, cd.TimeOut, tt.wantConflict)
			}
		})
	}
}

func TestCylinderCurrentlyInViolation(t *testing.T) {
	c := Cylinder{D: 1852, H: 150}
	cd := c.Conflict(Vec2{0, 0}, Vec2{0, 0}, 3000, 0, Vec2{100, 0}, Vec2{0, 0}, 3000, 0, 0, 600)
	if cd.TimeIn != 0 {
		t.Errorf("expected TimeIn == 0 for already-inside geometry, got %v", cd.TimeIn)
	}
}

func TestCylinderSymmetric(t *testing.T) {
	// Swapping ownship/intruder roles must report the same interval:
	// the hazard volume is symmetric in the two aircraft.
	c := Cylinder{D: 1852, H: 150}
	so, vo := Vec2{0, 0}, Vec2{0, 100}
	si, vi := Vec2{0, 20000}, Vec2{0, -100}

	a := c.Conflict(so, vo, 3000, 0, si, vi, 3000, 0, 0, 600)
	b := c.Conflict(si, vi, 3000, 0, so, vo, 3000, 0, 0, 600)

	const tol = 1e-6
	if gomath.Abs(a.TimeIn-b.TimeIn) > tol || gomath.Abs(a.TimeOut-b.TimeOut) > tol {
		t.Errorf("Conflict() not symmetric: ownship-view {%v,%v}, intruder-view {%v,%v}",
			a.TimeIn, a.TimeOut, b.TimeIn, b.TimeOut)
	}
}

func TestCylinderInvalidParameters(t *testing.T) {
	for _, c := range []Cylinder{{D: 0, H: 150}, {D: 1852, H: 0}, {D: -1, H: 150}} {
		cd := c.Conflict(Vec2{0, 0}, Vec2{0, 100}, 3000, 0, Vec2{0, 1000}, Vec2{0, -100}, 3000, 0, 0, 600)
		if !gomath.IsInf(cd.TimeIn, 1) {
			t.Errorf("invalid Cylinder %+v should report NoConflict, got TimeIn=%v", c, cd.TimeIn)
		}
	}
}
