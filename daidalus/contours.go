// daidalus/contours.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package daidalus

import (
	gomath "math"

	"github.com/nasa/daidalus-go/alert"
	"github.com/nasa/daidalus-go/detect"
	"github.com/nasa/daidalus-go/math"
)

// Display-only angular sweep bounds (spec.md §4.6: "out-of-contract for
// numerical precision beyond pixel use"). maxSweepRadius is generous
// enough to bound any protected zone this repo's detectors configure;
// sweepRadialStep trades contour smoothness for sweep cost.
const (
	maxSweepRadius    = 20000.0 // meters
	sweepRadialStep   = 100.0   // meters
	defaultContourDeg = 15.0
)

// contourStep returns the configured angular sweep resolution in
// degrees, defaulting to 15 (config.Parameters' own default) if unset.
func (d *Daidalus) contourStep() float64 {
	if d.params.ContourThreshold > 0 {
		return d.params.ContourThreshold
	}
	return defaultContourDeg
}

// correctiveDetector returns the detector belonging to the least
// severe threshold whose region meets or exceeds the configured
// corrective_region (spec.md §6.1 "corrective_region"), the hazard
// volume horizontalContours/horizontalHazardZone sweep against. Falls
// back to the most severe threshold if none meets the configured
// region, or nil if the alerter has no thresholds at all.
func (d *Daidalus) correctiveDetector(a alert.Alerter) detect.Detector {
	if len(a.Thresholds) == 0 {
		return nil
	}
	want := alert.MID
	if d.params.CorrectiveRegion == "NEAR" {
		want = alert.NEAR
	}
	for _, th := range a.Thresholds {
		if th.Region.Severity() >= want.Severity() {
			return th.Detector
		}
	}
	return a.Thresholds[len(a.Thresholds)-1].Detector
}

// sweepRing walks bearing angles 0..360 at the coordinator's configured
// contour_thr resolution, calling test for each direction (a unit
// vector in the East-x/North-y plane, increasing angle counter-
// clockwise from east) and collecting whatever boundary point it
// reports, producing a counter-clockwise polygon approximation.
func (d *Daidalus) sweepRing(test func(dir math.Vec2) (math.Vec2, bool)) []math.Vec2 {
	step := d.contourStep()
	var ring []math.Vec2
	for deg := 0.0; deg < 360; deg += step {
		rad := deg * gomath.Pi / 180
		dir := math.Vec2{gomath.Cos(rad), gomath.Sin(rad)}
		if pt, ok := test(dir); ok {
			ring = append(ring, pt)
		}
	}
	return ring
}

// HorizontalContours approximates, for the named traffic aircraft, the
// set of ownship ground positions whose straight-line projection over
// the lookahead window would enter the corrective hazard volume
// (spec.md §4.6). Advisory/display-only: not consulted by the bands
// engine. Returned as counter-clockwise polygons in the local
// Euclidean frame centered on the ownship's current position; an empty
// result means no bearing within the sweep radius is in conflict.
func (d *Daidalus) HorizontalContours(id string) [][]math.Vec2 {
	if d.ownship == nil {
		return nil
	}
	idx := d.aircraftIndex(id)
	if idx < 0 {
		d.Log.Errorf("HorizontalContours: unknown aircraft %q", id)
		return nil
	}
	tr := d.traffic[idx]

	det := d.correctiveDetector(d.alerterFor())
	if det == nil {
		return nil
	}

	origin := d.ownship.LatLon
	ownVel := d.ownship.AirVelocity(d.wind)
	trPos := math.Sub2(tr.LocalPosition(origin), d.ownship.LocalPosition(origin))
	trVel := tr.AirVelocity(d.wind)
	lookahead := d.params.LookaheadTime

	ring := d.sweepRing(func(dir math.Vec2) (math.Vec2, bool) {
		for r := sweepRadialStep; r <= maxSweepRadius; r += sweepRadialStep {
			so := math.Scale2(dir, r)
			cd := det.Conflict(so, ownVel, d.ownship.Altitude, d.ownship.VerticalSpeed,
				trPos, trVel, tr.Altitude, tr.VerticalSpeed, 0, lookahead)
			if !gomath.IsInf(cd.TimeIn, 1) {
				return so, true
			}
		}
		return math.Vec2{}, false
	})
	if len(ring) == 0 {
		return nil
	}
	return [][]math.Vec2{ring}
}

// HorizontalHazardZone approximates the corrective hazard volume
// around the named traffic aircraft's projected position at the given
// time horizon (seconds), as seen from the ownship (spec.md §4.6).
// Advisory/display-only, returned as a counter-clockwise polygon in
// the same local Euclidean frame as HorizontalContours.
func (d *Daidalus) HorizontalHazardZone(id string, horizon float64) []math.Vec2 {
	if d.ownship == nil {
		return nil
	}
	idx := d.aircraftIndex(id)
	if idx < 0 {
		d.Log.Errorf("HorizontalHazardZone: unknown aircraft %q", id)
		return nil
	}
	tr := d.traffic[idx]

	det := d.correctiveDetector(d.alerterFor())
	if det == nil {
		return nil
	}

	origin := d.ownship.LatLon
	trVel := tr.AirVelocity(d.wind)
	trPos := math.Add2(math.Sub2(tr.LocalPosition(origin), d.ownship.LocalPosition(origin)), math.Scale2(trVel, horizon))
	trAlt := tr.Altitude + tr.VerticalSpeed*horizon

	return d.sweepRing(func(dir math.Vec2) (math.Vec2, bool) {
		last := math.Vec2{}
		found := false
		for r := 0.0; r <= maxSweepRadius; r += sweepRadialStep {
			probe := math.Add2(trPos, math.Scale2(dir, r))
			cd := det.Conflict(probe, math.Vec2{}, d.ownship.Altitude, 0,
				trPos, math.Vec2{}, trAlt, 0, 0, 0)
			if gomath.IsInf(cd.TimeIn, 1) {
				if !found {
					return math.Vec2{}, false
				}
				// First radius clear of the hazard volume: report the
				// boundary as the midpoint of the last two samples.
				return math.Vec2{(last[0] + probe[0]) / 2, (last[1] + probe[1]) / 2}, true
			}
			last = probe
			found = true
		}
		if found {
			return last, true
		}
		return math.Vec2{}, false
	})
}
