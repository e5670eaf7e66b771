// daidalus/dta.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package daidalus

import (
	"github.com/nasa/daidalus-go/config"
	"github.com/nasa/daidalus-go/math"
)

// DTAMode is the coordinator's resolved Designated Terminal Area state
// for the current step (spec.md §4.2 "Special configurations": a DTA
// substitutes a dedicated alerter while the ownship is within the
// terminal area cylinder; on approach it also suppresses the
// non-horizontal recovery bands, and no mode suppresses the horizontal
// ones).
type DTAMode int

const (
	// DTAInactive: ownship outside the DTA radius, or dta_logic == 0.
	DTAInactive DTAMode = iota
	// DTAApproach: dta_logic > 0, ownship inside radius — non-horizontal
	// (vertical-speed, altitude) recovery bands are suppressed, since an
	// approach is assumed to require holding the vertical profile.
	DTAApproach
	// DTADeparture: dta_logic < 0, ownship inside radius — no recovery
	// suppression; both horizontal and non-horizontal recovery bands
	// are produced normally.
	DTADeparture
)

// dtaStatus resolves the DTA mode for an ownship position against the
// configured terminal area (spec.md §6.1 dta_latitude/dta_longitude/
// dta_radius/dta_height, dta_logic). Height is checked against the
// ownship's altitude above the DTA's reference height; a negative or
// zero radius means DTA is disabled regardless of dta_logic.
func dtaStatus(p config.Parameters, ownLatLon math.LatLon, ownAltitude float64) DTAMode {
	if p.DTALogic == 0 || p.DTARadius <= 0 {
		return DTAInactive
	}
	center := math.LatLon{p.DTALongitude, p.DTALatitude}
	distMeters := math.NMDistance(center, ownLatLon) * math.NauticalMilesToMeters
	if distMeters > p.DTARadius {
		return DTAInactive
	}
	if p.DTAHeight > 0 && ownAltitude > p.DTAHeight {
		return DTAInactive
	}
	if p.DTALogic > 0 {
		return DTAApproach
	}
	return DTADeparture
}

// suppressHorizontalRecovery reports whether the DTA mode suppresses
// the horizontal-dimension (direction, horizontal-speed) recovery
// bands for this step. spec.md §4.2 names no horizontal suppression
// for either DTA mode, so this is always false.
func (m DTAMode) suppressHorizontalRecovery() bool { return false }

// suppressNonHorizontalRecovery reports whether the DTA mode suppresses
// the non-horizontal-dimension (vertical-speed, altitude) recovery
// bands for this step (spec.md §4.2: suppressed during approach,
// produced normally during departure).
func (m DTAMode) suppressNonHorizontalRecovery() bool { return m == DTAApproach }
