// config/file.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nasa/daidalus-go/util"
)

// unit conversion factors to internal SI, keyed by the bracketed unit
// token a persisted value may carry (spec.md §6.2 "value [unit]").
var unitToSI = map[string]float64{
	"":     1,
	"m":    1,
	"s":    1,
	"rad":  1,
	"deg":  3.14159265 / 180,
	"ft":   0.3048,
	"nmi":  1852,
	"kn":   0.514444,
	"kt":   0.514444,
	"fpm":  0.00508,
	"m/s":  1,
	"rad/s": 1,
	"deg/s": 3.14159265 / 180,
}

// parseValueUnit splits a "value [unit]" token and converts to SI.
func parseValueUnit(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	unit := ""
	if i := strings.IndexByte(tok, '['); i >= 0 {
		j := strings.IndexByte(tok[i:], ']')
		if j < 0 {
			return 0, fmt.Errorf("unterminated unit bracket in %q", tok)
		}
		unit = strings.TrimSpace(tok[i+1 : i+j])
		tok = strings.TrimSpace(tok[:i])
	}
	v, err := util.Atof(tok)
	if err != nil {
		return 0, err
	}
	factor, ok := unitToSI[unit]
	if !ok {
		return 0, fmt.Errorf("unrecognized unit %q", unit)
	}
	return v * factor, nil
}

// fieldSetters maps every recognized §6.1 key to a function writing
// its SI value into a Parameters. Boolean and string/list keys are
// parsed separately in Load, since they don't carry units.
var fieldSetters = map[string]func(p *Parameters, v float64){
	"lookahead_time":   func(p *Parameters, v float64) { p.LookaheadTime = v },
	"left_hdir":        func(p *Parameters, v float64) { p.LeftHDir = v },
	"right_hdir":       func(p *Parameters, v float64) { p.RightHDir = v },
	"min_hs":           func(p *Parameters, v float64) { p.MinHS = v },
	"max_hs":           func(p *Parameters, v float64) { p.MaxHS = v },
	"min_airspeed":     func(p *Parameters, v float64) { p.MinAirspeed = v },
	"min_vs":           func(p *Parameters, v float64) { p.MinVS = v },
	"max_vs":           func(p *Parameters, v float64) { p.MaxVS = v },
	"min_alt":          func(p *Parameters, v float64) { p.MinAlt = v },
	"max_alt":          func(p *Parameters, v float64) { p.MaxAlt = v },
	"step_hdir":        func(p *Parameters, v float64) { p.StepHDir = v },
	"step_hs":          func(p *Parameters, v float64) { p.StepHS = v },
	"step_vs":          func(p *Parameters, v float64) { p.StepVS = v },
	"step_alt":         func(p *Parameters, v float64) { p.StepAlt = v },
	"horizontal_accel": func(p *Parameters, v float64) { p.HorizontalAccel = v },
	"vertical_accel":   func(p *Parameters, v float64) { p.VerticalAccel = v },
	"turn_rate":        func(p *Parameters, v float64) { p.TurnRate = v },
	"bank_angle":       func(p *Parameters, v float64) { p.BankAngle = v },
	"vertical_rate":    func(p *Parameters, v float64) { p.VerticalRate = v },

	"recovery_stability_time": func(p *Parameters, v float64) { p.RecoveryStabilityTime = v },
	"min_horizontal_recovery": func(p *Parameters, v float64) { p.MinHorizontalRecovery = v },
	"min_vertical_recovery":   func(p *Parameters, v float64) { p.MinVerticalRecovery = v },

	"ca_factor": func(p *Parameters, v float64) { p.CAFactor = v },

	"horizontal_nmac": func(p *Parameters, v float64) { p.HorizontalNMAC = v },
	"vertical_nmac":   func(p *Parameters, v float64) { p.VerticalNMAC = v },

	"hysteresis_time":  func(p *Parameters, v float64) { p.HysteresisTime = v },
	"persistence_time": func(p *Parameters, v float64) { p.PersistenceTime = v },

	"contour_thr": func(p *Parameters, v float64) { p.ContourThreshold = v },

	"dta_latitude":  func(p *Parameters, v float64) { p.DTALatitude = v },
	"dta_longitude": func(p *Parameters, v float64) { p.DTALongitude = v },
	"dta_radius":    func(p *Parameters, v float64) { p.DTARadius = v },
	"dta_height":    func(p *Parameters, v float64) { p.DTAHeight = v },
}

var boolKeys = map[string]func(p *Parameters, v bool){
	"recovery_hdir": func(p *Parameters, v bool) { p.RecoveryHDir = v },
	"recovery_hs":   func(p *Parameters, v bool) { p.RecoveryHS = v },
	"recovery_vs":   func(p *Parameters, v bool) { p.RecoveryVS = v },
	"recovery_alt":  func(p *Parameters, v bool) { p.RecoveryAlt = v },
	"ca_bands":      func(p *Parameters, v bool) { p.CABands = v },
	"ownship_centric_alerting": func(p *Parameters, v bool) { p.OwnshipCentricAlerting = v },
}

// Load merges a persisted key=value[unit] file (spec.md §6.2) into
// base: recognized keys overwrite; missing keys retain base's value;
// `#` starts a comment; blank lines are ignored.
func Load(r io.Reader, base Parameters) (Parameters, error) {
	p := base
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return base, fmt.Errorf("line %d: missing '='", lineNo)
		}
		key := strings.TrimSpace(line[:eq])
		val := strings.TrimSpace(line[eq+1:])

		switch {
		case key == "dta_logic":
			var v float64
			if _, err := fmt.Sscanf(val, "%g", &v); err != nil {
				return base, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p.DTALogic = int(v)
		case key == "dta_alerter":
			p.DTAAlerter = val
		case key == "corrective_region":
			p.CorrectiveRegion = val
		case key == "alerters":
			p.Alerters = strings.Split(val, ",")
			for i := range p.Alerters {
				p.Alerters[i] = strings.TrimSpace(p.Alerters[i])
			}
		case key == "alerting_m":
			fmt.Sscanf(val, "%d", &p.AlertingM)
		case key == "alerting_n":
			fmt.Sscanf(val, "%d", &p.AlertingN)
		default:
			if setter, ok := boolKeys[key]; ok {
				setter(&p, val == "true" || val == "1")
				continue
			}
			setter, ok := fieldSetters[key]
			if !ok {
				return base, fmt.Errorf("line %d: unrecognized key %q", lineNo, key)
			}
			v, err := parseValueUnit(val)
			if err != nil {
				return base, fmt.Errorf("line %d: %w", lineNo, err)
			}
			setter(&p, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return base, err
	}
	p.epoch = base.epoch + 1
	return p, nil
}

// Save emits every recognized key as "key = value" in internal SI
// units (spec.md §6.2 "Saving emits every recognized key").
func Save(w io.Writer, p Parameters) error {
	fields := []struct {
		key string
		val float64
	}{
		{"lookahead_time", p.LookaheadTime},
		{"left_hdir", p.LeftHDir}, {"right_hdir", p.RightHDir},
		{"min_hs", p.MinHS}, {"max_hs", p.MaxHS}, {"min_airspeed", p.MinAirspeed},
		{"min_vs", p.MinVS}, {"max_vs", p.MaxVS},
		{"min_alt", p.MinAlt}, {"max_alt", p.MaxAlt},
		{"step_hdir", p.StepHDir}, {"step_hs", p.StepHS}, {"step_vs", p.StepVS}, {"step_alt", p.StepAlt},
		{"horizontal_accel", p.HorizontalAccel}, {"vertical_accel", p.VerticalAccel},
		{"turn_rate", p.TurnRate}, {"bank_angle", p.BankAngle},
		{"vertical_rate", p.VerticalRate},
		{"recovery_stability_time", p.RecoveryStabilityTime},
		{"min_horizontal_recovery", p.MinHorizontalRecovery}, {"min_vertical_recovery", p.MinVerticalRecovery},
		{"ca_factor", p.CAFactor},
		{"horizontal_nmac", p.HorizontalNMAC}, {"vertical_nmac", p.VerticalNMAC},
		{"hysteresis_time", p.HysteresisTime}, {"persistence_time", p.PersistenceTime},
		{"contour_thr", p.ContourThreshold},
		{"dta_latitude", p.DTALatitude}, {"dta_longitude", p.DTALongitude},
		{"dta_radius", p.DTARadius}, {"dta_height", p.DTAHeight},
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s = %g\n", f.key, f.val); err != nil {
			return err
		}
	}
	for key, get := range map[string]bool{
		"recovery_hdir": p.RecoveryHDir, "recovery_hs": p.RecoveryHS,
		"recovery_vs": p.RecoveryVS, "recovery_alt": p.RecoveryAlt,
		"ca_bands": p.CABands, "ownship_centric_alerting": p.OwnshipCentricAlerting,
	} {
		if _, err := fmt.Fprintf(w, "%s = %v\n", key, get); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "alerting_m = %d\n", p.AlertingM)
	fmt.Fprintf(w, "alerting_n = %d\n", p.AlertingN)
	fmt.Fprintf(w, "dta_logic = %d\n", p.DTALogic)
	fmt.Fprintf(w, "dta_alerter = %s\n", p.DTAAlerter)
	fmt.Fprintf(w, "corrective_region = %s\n", p.CorrectiveRegion)
	fmt.Fprintf(w, "alerters = %s\n", strings.Join(p.Alerters, ","))
	return nil
}
