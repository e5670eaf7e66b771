// detect/tcas.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package detect

import gomath "math"

// SensitivityLevel is one row of the TCAS II RA/TA sensitivity-level
// table: the altitude band it applies to, and the DMOD/ZTHR/TAU
// parameters a TCASII detector resolves to within that band.
type SensitivityLevel struct {
	AltitudeFloor float64 // meters, inclusive
	DMOD          float64 // meters
	ZTHR          float64 // meters
	TAU           float64 // seconds
}

// DefaultSensitivityLevels is the standard TCAS II RA table, altitudes
// converted from the published feet bands to meters. Levels are
// checked from the top down; the first whose AltitudeFloor the
// queried altitude meets or exceeds applies.
var DefaultSensitivityLevels = []SensitivityLevel{
	{AltitudeFloor: 6096.0, DMOD: 2100.0, ZTHR: 213.36, TAU: 35}, // SL7, >20000ft
	{AltitudeFloor: 3048.0, DMOD: 1852.0, ZTHR: 213.36, TAU: 35}, // SL6, 10000-20000ft
	{AltitudeFloor: 610.0, DMOD: 1111.2, ZTHR: 182.88, TAU: 25},  // SL5, 2000-10000ft
	{AltitudeFloor: 305.0, DMOD: 926.0, ZTHR: 152.4, TAU: 20},    // SL4, 1000-2000ft
	{AltitudeFloor: 0.0, DMOD: 556.0, ZTHR: 91.44, TAU: 15},      // SL3, <1000ft
}

// sensitivityLevelFor returns the table row applicable at altitude z.
func sensitivityLevelFor(table []SensitivityLevel, z float64) SensitivityLevel {
	best := table[len(table)-1]
	for _, sl := range table {
		if z >= sl.AltitudeFloor {
			return sl
		}
		best = sl
	}
	return best
}

// TCASII implements the TCAS II resolution-advisory (or, with a
// looser table, traffic-advisory) detector: the protected cylinder's
// DMOD/ZTHR/TAU parameters are looked up from a sensitivity-level
// table keyed on the higher of the two aircraft's altitudes rather
// than fixed in advance, per
// spec.md §4.1 ("TCASII ... selects DMOD/ZTHR/TAU from a table indexed
// by altitude layer"). Internally this is a modified-tau WCV detector
// re-parameterized for each query's altitude.
type TCASII struct {
	Levels []SensitivityLevel // nil uses DefaultSensitivityLevels
}

func (t TCASII) Name() string { return "TCASII" }

func (t TCASII) Valid() bool { return true }

func (t TCASII) levels() []SensitivityLevel {
	if t.Levels == nil {
		return DefaultSensitivityLevels
	}
	return t.Levels
}

func (t TCASII) Conflict(so, vo Vec2, zo, zvo float64, si, vi Vec2, zi, zvi float64, B, T float64) ConflictData {
	sl := sensitivityLevelFor(t.levels(), gomath.Max(zo, zi))
	wcv := WCV{
		DTHR:    sl.DMOD,
		ZTHR:    sl.ZTHR,
		TTHR:    sl.TAU,
		TCOA:    sl.TAU,
		Variant: TauModVariant,
	}
	cd := wcv.Conflict(so, vo, zo, zvo, si, vi, zi, zvi, B, T)
	return cd
}
