// detect/property_test.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package detect

import (
	"testing"

	"github.com/nasa/daidalus-go/internal/rand"
)

// randomEncounter draws a random relative-state pair within bounds
// generous enough to hit both "clear" and "in conflict" geometries.
func randomEncounter(r *rand.Rand) (so, vo Vec2, zo, zvo float64, si, vi Vec2, zi, zvi float64) {
	so = Vec2{r.Float64Range(-5000, 5000), r.Float64Range(-5000, 5000)}
	vo = Vec2{r.Float64Range(-150, 150), r.Float64Range(-150, 150)}
	si = Vec2{r.Float64Range(-5000, 5000), r.Float64Range(-5000, 5000)}
	vi = Vec2{r.Float64Range(-150, 150), r.Float64Range(-150, 150)}
	zo = r.Float64Range(0, 10000)
	zi = r.Float64Range(0, 10000)
	zvo = r.Float64Range(-20, 20)
	zvi = r.Float64Range(-20, 20)
	return
}

// swap exercises the symmetry invariant of spec.md §8: relabeling which
// aircraft is "ownship" negates the relative state but must not change
// which time interval is reported in conflict.
func swap(so, vo Vec2, zo, zvo float64, si, vi Vec2, zi, zvi float64) (Vec2, Vec2, float64, float64, Vec2, Vec2, float64, float64) {
	return si, vi, zi, zvi, so, vo, zo, zvo
}

func TestCylinderSymmetricUnderOwnshipSwap(t *testing.T) {
	r := rand.New()
	r.Seed(1)
	c := Cylinder{D: 500, H: 300}
	for i := 0; i < 500; i++ {
		so, vo, zo, zvo, si, vi, zi, zvi := randomEncounter(&r)
		a := c.Conflict(so, vo, zo, zvo, si, vi, zi, zvi, 0, 600)
		sso, svo, szo, szvo, ssi, svi, szi, szvi := swap(so, vo, zo, zvo, si, vi, zi, zvi)
		b := c.Conflict(sso, svo, szo, szvo, ssi, svi, szi, szvi, 0, 600)
		if a.TimeIn != b.TimeIn || a.TimeOut != b.TimeOut {
			t.Fatalf("trial %d: swap broke symmetry: %+v vs %+v", i, a, b)
		}
	}
}

func TestWCVSymmetricUnderOwnshipSwap(t *testing.T) {
	r := rand.New()
	r.Seed(2)
	for _, variant := range []WCVVariant{TauModVariant, TCPAVariant, TEPVariant} {
		w := WCV{DTHR: 500, ZTHR: 300, TTHR: 35, TCOA: 20, Variant: variant}
		for i := 0; i < 300; i++ {
			so, vo, zo, zvo, si, vi, zi, zvi := randomEncounter(&r)
			a := w.Conflict(so, vo, zo, zvo, si, vi, zi, zvi, 0, 600)
			sso, svo, szo, szvo, ssi, svi, szi, szvi := swap(so, vo, zo, zvo, si, vi, zi, zvi)
			b := w.Conflict(sso, svo, szo, szvo, ssi, svi, szi, szvi, 0, 600)
			if a.TimeIn != b.TimeIn || a.TimeOut != b.TimeOut {
				t.Fatalf("%s trial %d: swap broke symmetry: %+v vs %+v", variant, i, a, b)
			}
		}
	}
}

// TestDetectorsAreDeterministic covers the idempotence invariant of
// spec.md §8: calling Conflict twice on the same inputs must agree.
func TestDetectorsAreDeterministic(t *testing.T) {
	r := rand.New()
	r.Seed(3)
	c := Cylinder{D: 500, H: 300}
	w := WCV{DTHR: 500, ZTHR: 300, TTHR: 35, TCOA: 20, Variant: TauModVariant}
	for i := 0; i < 200; i++ {
		so, vo, zo, zvo, si, vi, zi, zvi := randomEncounter(&r)
		a1 := c.Conflict(so, vo, zo, zvo, si, vi, zi, zvi, 0, 600)
		a2 := c.Conflict(so, vo, zo, zvo, si, vi, zi, zvi, 0, 600)
		if a1 != a2 {
			t.Fatalf("cylinder non-deterministic at trial %d", i)
		}
		b1 := w.Conflict(so, vo, zo, zvo, si, vi, zi, zvi, 0, 600)
		b2 := w.Conflict(so, vo, zo, zvo, si, vi, zi, zvi, 0, 600)
		if b1 != b2 {
			t.Fatalf("wcv non-deterministic at trial %d", i)
		}
	}
}
