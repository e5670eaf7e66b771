// alert/alert_test.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package alert

import (
	"testing"

	"github.com/nasa/daidalus-go/detect"
)

func TestDefaultDO365BDominance(t *testing.T) {
	a := DefaultDO365B()
	if err := a.ValidateDominance(); err != nil {
		t.Fatalf("DefaultDO365B() violates the dominance invariant: %v", err)
	}
}

func TestAlerterLevelHeadOnEscalates(t *testing.T) {
	a := DefaultDO365B()

	so, vo := detect.Vec2{0, 0}, detect.Vec2{0, 100}
	far := detect.Vec2{0, 50000}
	near := detect.Vec2{0, 5000}
	vi := detect.Vec2{0, -100}

	levelFar, _ := a.Level(so, vo, 3000, 0, far, vi, 3000, 0, 0, 600)
	levelNear, _ := a.Level(so, vo, 3000, 0, near, vi, 3000, 0, 0, 600)

	if levelNear < levelFar {
		t.Errorf("closer encounter produced a lower alert level (%d) than a farther one (%d)", levelNear, levelFar)
	}
}

func TestAlerterLevelZeroWhenDiverging(t *testing.T) {
	a := DefaultDO365B()
	so, vo := detect.Vec2{0, 0}, detect.Vec2{0, -100}
	si, vi := detect.Vec2{0, 20000}, detect.Vec2{0, 100}

	level, _ := a.Level(so, vo, 3000, 0, si, vi, 3000, 0, 0, 600)
	if level != 0 {
		t.Errorf("expected alert level 0 on a diverging encounter, got %d", level)
	}
}

func TestBandRegionSeverityOrdering(t *testing.T) {
	order := []BandRegion{NONE, FAR, MID, NEAR}
	for i := 1; i < len(order); i++ {
		if order[i].Severity() <= order[i-1].Severity() {
			t.Errorf("%v.Severity() should exceed %v.Severity()", order[i], order[i-1])
		}
	}
}

func TestShrinkToNMACBounds(t *testing.T) {
	d, h := ShrinkToNMAC(1852, 150, 0)
	if d != 1852 || h != 150 {
		t.Errorf("ShrinkToNMAC(t=0) = (%v,%v), expected the original volume", d, h)
	}
	d, h = ShrinkToNMAC(1852, 150, 1)
	if d != NMAC.D || h != NMAC.H {
		t.Errorf("ShrinkToNMAC(t=1) = (%v,%v), expected NMAC (%v,%v)", d, h, NMAC.D, NMAC.H)
	}
}
