// config/viper.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"strings"

	"github.com/spf13/viper"
)

// LoadEnvOverlay layers environment-variable and optional YAML/TOML
// file overrides on top of base, using viper's standard precedence
// (explicit file values win over defaults, env vars win over file
// values). Recognized keys are read with the DAIDALUS_ prefix, e.g.
// DAIDALUS_LOOKAHEAD_TIME. This is a convenience layer over the native key=value
// file format (§6.2); it does not replace it.
func LoadEnvOverlay(configFile string, base Parameters) (Parameters, error) {
	v := viper.New()
	v.SetEnvPrefix("daidalus")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return base, err
		}
	}

	p := base
	set := func(key string, assign func(float64)) {
		if v.IsSet(key) {
			assign(v.GetFloat64(key))
		}
	}
	set("lookahead_time", func(f float64) { p.LookaheadTime = f })
	set("horizontal_accel", func(f float64) { p.HorizontalAccel = f })
	set("vertical_accel", func(f float64) { p.VerticalAccel = f })
	set("bank_angle", func(f float64) { p.BankAngle = f })
	set("hysteresis_time", func(f float64) { p.HysteresisTime = f })
	set("persistence_time", func(f float64) { p.PersistenceTime = f })

	if v.IsSet("corrective_region") {
		p.CorrectiveRegion = v.GetString("corrective_region")
	}
	if v.IsSet("alerters") {
		p.Alerters = v.GetStringSlice("alerters")
	}

	if errs := p.Validate(); len(errs) > 0 {
		return base, errs[0]
	}
	p.epoch = base.epoch + 1
	return p, nil
}
