// config/parameters.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package config is the parameter store (spec.md §3 "Parameters", §6.1):
// every recognized knob, its unit, its validity constraint, and a
// snapshot identity the coordinator's lazy cache keys on.
package config

import (
	"fmt"

	"github.com/nasa/daidalus-go/util"
)

// Parameters holds every recognized key from spec.md §6.1, internally
// in SI units (meters, seconds, radians) regardless of how a
// persisted file or JSON document expressed them.
type Parameters struct {
	LookaheadTime float64

	LeftHDir, RightHDir float64

	MinHS, MaxHS, MinAirspeed float64
	MinVS, MaxVS              float64
	MinAlt, MaxAlt            float64

	StepHDir, StepHS, StepVS, StepAlt float64

	HorizontalAccel, VerticalAccel float64
	TurnRate, BankAngle            float64
	VerticalRate                   float64

	RecoveryStabilityTime                    float64
	MinHorizontalRecovery, MinVerticalRecovery float64
	RecoveryHDir, RecoveryHS, RecoveryVS, RecoveryAlt bool

	CABands bool
	CAFactor float64

	HorizontalNMAC, VerticalNMAC float64

	HysteresisTime, PersistenceTime float64
	AlertingM, AlertingN            int

	ContourThreshold float64

	DTALogic                                          int // 0, +1, -1
	DTALatitude, DTALongitude, DTARadius, DTAHeight    float64
	DTAAlerter                                         string

	CorrectiveRegion string // "MID" or "NEAR"

	OwnshipCentricAlerting bool

	Alerters []string

	// epoch increments on every successful Set*, giving the snapshot
	// identity the coordinator's cache fingerprint folds in (spec.md
	// §4.5).
	epoch uint64
}

// Default returns the DO-365B-flavoured default parameter set used
// throughout the example boundary scenarios (spec.md §8).
func Default() Parameters {
	return Parameters{
		LookaheadTime: 180,

		LeftHDir: 3.14159265, RightHDir: 3.14159265,

		MinHS: 0, MaxHS: 700 * 0.514444, MinAirspeed: 0,
		MinVS: -35, MaxVS: 35,
		MinAlt: 0, MaxAlt: 15000 * 0.3048,

		StepHDir: 1 * 3.14159265 / 180, StepHS: 5 * 0.514444, StepVS: 1, StepAlt: 100 * 0.3048,

		HorizontalAccel: 2, VerticalAccel: 1,
		TurnRate: 0, BankAngle: 25 * 3.14159265 / 180,
		VerticalRate: 5,

		RecoveryStabilityTime:   2,
		MinHorizontalRecovery:   1852 * 0.66,
		MinVerticalRecovery:     450 * 0.3048,
		RecoveryHDir:            true,
		RecoveryHS:              true,
		RecoveryVS:              true,
		RecoveryAlt:             true,

		CABands: true, CAFactor: 0.1,

		HorizontalNMAC: 150, VerticalNMAC: 30.48,

		HysteresisTime: 5, PersistenceTime: 30,
		AlertingM: 2, AlertingN: 3,

		ContourThreshold: 15,

		CorrectiveRegion: "MID",

		Alerters: []string{"default"},
	}
}

// Epoch returns the current snapshot identity: it changes whenever a
// Set method successfully mutates the parameters.
func (p Parameters) Epoch() uint64 { return p.epoch }

// Validate checks every §6.1 constraint, returning all violations
// found (rather than failing on the first) so a caller can report
// them all through the error log in one pass.
func (p Parameters) Validate() []error {
	var errs []error
	check := func(cond bool, format string, args ...any) {
		if !cond {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(p.LookaheadTime > 0, "lookahead_time must be > 0, got %v", p.LookaheadTime)
	check(p.LeftHDir >= 0 && p.LeftHDir <= 3.14159265, "left_hdir must be in [0,pi]")
	check(p.RightHDir >= 0 && p.RightHDir <= 3.14159265, "right_hdir must be in [0,pi]")
	check(p.MinHS >= 0 && p.MinHS < p.MaxHS, "min_hs/max_hs out of order")
	check(p.MinVS < p.MaxVS, "min_vs/max_vs out of order")
	check(p.MinAlt >= 0 && p.MinAlt < p.MaxAlt, "min_alt/max_alt out of order")
	check(p.StepHDir > 0, "step_hdir must be > 0")
	check(p.StepHS > 0, "step_hs must be > 0")
	check(p.StepVS > 0, "step_vs must be > 0")
	check(p.StepAlt > 0, "step_alt must be > 0")
	check(p.HorizontalAccel >= 0, "horizontal_accel must be >= 0")
	check(p.VerticalAccel >= 0, "vertical_accel must be >= 0")
	check(p.TurnRate >= 0, "turn_rate must be >= 0")
	check(p.BankAngle >= 0, "bank_angle must be >= 0")
	check(!(p.TurnRate > 0 && p.BankAngle > 0), "exactly one of turn_rate/bank_angle may be non-zero")
	check(p.VerticalRate >= 0, "vertical_rate must be >= 0")
	check(p.RecoveryStabilityTime >= 0, "recovery_stability_time must be >= 0")
	check(p.MinHorizontalRecovery >= p.HorizontalNMAC, "min_horizontal_recovery must be >= horizontal_nmac")
	check(p.MinVerticalRecovery >= p.VerticalNMAC, "min_vertical_recovery must be >= vertical_nmac")
	check(p.CAFactor > 0 && p.CAFactor <= 1, "ca_factor must be in (0,1]")
	check(p.HorizontalNMAC > 0, "horizontal_nmac must be > 0")
	check(p.VerticalNMAC > 0, "vertical_nmac must be > 0")
	check(p.HysteresisTime >= 0, "hysteresis_time must be >= 0")
	check(p.PersistenceTime >= 0, "persistence_time must be >= 0")
	check(p.AlertingM >= 0 && p.AlertingM <= p.AlertingN, "alerting_m must be in [0,alerting_n]")
	check(p.ContourThreshold >= 0 && p.ContourThreshold <= 180, "contour_thr must be in [0,180] degrees")
	check(p.CorrectiveRegion == "" || p.CorrectiveRegion == "MID" || p.CorrectiveRegion == "NEAR",
		"corrective_region must be MID or NEAR")
	check(len(p.Alerters) > 0, "alerters must be non-empty")

	return errs
}

// Set applies fn to a copy of p, validates the result, and either
// returns the new, accepted Parameters with its epoch advanced, or
// rejects the change and logs every violation to log (spec.md §7
// "Invalid parameter ... the setter is rejected; previous value
// retained; warning logged").
func (p Parameters) Set(log *util.ErrorLogger, fn func(*Parameters)) Parameters {
	next := p
	fn(&next)
	if errs := next.Validate(); len(errs) > 0 {
		for _, e := range errs {
			log.Error(e)
		}
		return p
	}
	next.epoch = p.epoch + 1
	return next
}
