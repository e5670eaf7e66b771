// detect/wcv.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package detect

import gomath "math"

// WCVVariant selects which time-variable a Well-Clear-Volume detector
// uses to decide whether an eventual protected-zone entry is close
// enough in time to count as a loss of well clear (spec.md §4.1:
// "WCV_TAUMOD/WCV_TCPA/WCV_TEP share a horizontal/vertical protected
// zone and a time-variable threshold, and differ only in which closure
// time variable that threshold is applied to").
type WCVVariant int

const (
	TauModVariant WCVVariant = iota
	TCPAVariant
	TEPVariant
)

func (v WCVVariant) String() string {
	switch v {
	case TauModVariant:
		return "WCV_TAUMOD"
	case TCPAVariant:
		return "WCV_TCPA"
	case TEPVariant:
		return "WCV_TEP"
	default:
		return "WCV_UNKNOWN"
	}
}

// WCV implements the well-clear-volume family of detectors: a
// cylindrical protected zone of horizontal radius DTHR and vertical
// half-height ZTHR, entered into only if the closure time variable
// selected by Variant is within TTHR (for the horizontal dimension) or
// TCOA (for the vertical, time-to-co-altitude, dimension) of the
// encounter's current time. A variant's time variable is itself only
// meaningful while closing (negative range rate); this mirrors the
// reference family's "tau" gate on the cylindrical test while keeping
// the result closed-form.
type WCV struct {
	DTHR float64 // horizontal protected radius, meters
	ZTHR float64 // vertical protected half-height, meters
	TTHR float64 // horizontal time-variable threshold, seconds
	TCOA float64 // vertical time-to-co-altitude threshold, seconds

	Variant WCVVariant
}

func (w WCV) Name() string { return w.Variant.String() }

func (w WCV) Valid() bool {
	return w.DTHR > 0 && w.ZTHR > 0 && w.TTHR >= 0 && w.TCOA >= 0
}

// timeVariable returns the variant's closure-time estimate at the
// current instant (t=0 of the relative state s,v), or +Inf if the
// geometry is not closing and so the variable is undefined.
func (w WCV) timeVariable(s, v Vec2) float64 {
	closingRate := dot(s, v)
	if closingRate >= 0 {
		return gomath.Inf(1)
	}
	switch w.Variant {
	case TCPAVariant:
		// Time of closest horizontal approach.
		return -closingRate / dot(v, v)
	case TEPVariant:
		// Time to (horizontal) protected-zone entry, i.e. the first
		// root of the cylinder's horizontal quadratic.
		tin, _, ok := horizontalInterval(s, v, w.DTHR, 0, gomath.Inf(1))
		if !ok {
			return gomath.Inf(1)
		}
		return tin
	default: // TauModVariant
		// Modified tau: scales the raw range-rate tau by how far
		// outside the protected radius the current separation is, so
		// tau reaches zero exactly at the protected boundary rather
		// than at the origin.
		distH2 := dot(s, s)
		if distH2 <= w.DTHR*w.DTHR {
			return 0
		}
		return -(distH2 - w.DTHR*w.DTHR) / closingRate
	}
}

func (w WCV) Conflict(so, vo Vec2, zo, zvo float64, si, vi Vec2, zi, zvi float64, B, T float64) ConflictData {
	if !w.Valid() {
		return NoConflict()
	}
	s, v, sz, vz := relative(so, vo, zo, zvo, si, vi, zi, zvi)

	// Vertical gate: inside ZTHR, or closing to co-altitude within TCOA.
	vin, vout, vok := verticalInterval(sz, vz, w.ZTHR, B, T)
	if !vok {
		if w.TCOA <= 0 || gomath.Abs(vz) < 1e-9 {
			return NoConflict()
		}
		tCoAlt := -sz / vz
		if tCoAlt < B || tCoAlt > T || tCoAlt < 0 || tCoAlt > w.TCOA {
			return NoConflict()
		}
		vin, vout = tCoAlt, T
	}

	// Horizontal gate: inside DTHR, gated by the variant's time
	// variable being within TTHR of the interval's start.
	hin, hout, hok := horizontalInterval(s, v, w.DTHR, B, T)
	if !hok {
		return NoConflict()
	}
	tv := w.timeVariable(posAt(s, v, gomath.Max(hin-1, B)), v)
	if hin > B && tv > w.TTHR {
		// Entry lies beyond the time-variable threshold: not yet a
		// well-clear violation under this variant.
		return NoConflict()
	}

	tin := gomath.Max(hin, vin)
	tout := gomath.Min(hout, vout)
	if tin > tout {
		return NoConflict()
	}

	return ConflictData{
		TimeIn:              tin,
		TimeOut:             tout,
		RelPositionAtTimeIn: posAt(s, v, tin),
		RelVelocityAtTimeIn: v,
	}
}
