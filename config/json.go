// config/json.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"encoding/json"

	"github.com/nasa/daidalus-go/util"
)

// document is the JSON-exchange shape for Parameters. Only
// LookaheadTime carries a json tag (lookahead_time); every other field
// is encoded under its Go field name, not under its §6.1 key name.
type document struct {
	LookaheadTime float64 `json:"lookahead_time"`

	LeftHDir, RightHDir float64

	MinHS, MaxHS, MinAirspeed float64
	MinVS, MaxVS              float64
	MinAlt, MaxAlt            float64

	StepHDir, StepHS, StepVS, StepAlt float64

	HorizontalAccel, VerticalAccel float64
	TurnRate, BankAngle            float64
	VerticalRate                   float64

	RecoveryStabilityTime                      float64
	MinHorizontalRecovery, MinVerticalRecovery float64
	RecoveryHDir, RecoveryHS, RecoveryVS, RecoveryAlt bool

	CABands  bool
	CAFactor float64

	HorizontalNMAC, VerticalNMAC float64

	HysteresisTime, PersistenceTime float64
	AlertingM, AlertingN            int

	ContourThreshold float64

	DTALogic                                       int
	DTALatitude, DTALongitude, DTARadius, DTAHeight float64
	DTAAlerter                                      string

	CorrectiveRegion string

	OwnshipCentricAlerting bool

	Alerters []string
}

func toDocument(p Parameters) document {
	return document{
		LookaheadTime: p.LookaheadTime,
		LeftHDir:      p.LeftHDir, RightHDir: p.RightHDir,
		MinHS: p.MinHS, MaxHS: p.MaxHS, MinAirspeed: p.MinAirspeed,
		MinVS: p.MinVS, MaxVS: p.MaxVS,
		MinAlt: p.MinAlt, MaxAlt: p.MaxAlt,
		StepHDir: p.StepHDir, StepHS: p.StepHS, StepVS: p.StepVS, StepAlt: p.StepAlt,
		HorizontalAccel: p.HorizontalAccel, VerticalAccel: p.VerticalAccel,
		TurnRate: p.TurnRate, BankAngle: p.BankAngle,
		VerticalRate:            p.VerticalRate,
		RecoveryStabilityTime:   p.RecoveryStabilityTime,
		MinHorizontalRecovery:   p.MinHorizontalRecovery,
		MinVerticalRecovery:     p.MinVerticalRecovery,
		RecoveryHDir:            p.RecoveryHDir,
		RecoveryHS:              p.RecoveryHS,
		RecoveryVS:              p.RecoveryVS,
		RecoveryAlt:             p.RecoveryAlt,
		CABands:                 p.CABands,
		CAFactor:                p.CAFactor,
		HorizontalNMAC:          p.HorizontalNMAC,
		VerticalNMAC:            p.VerticalNMAC,
		HysteresisTime:          p.HysteresisTime,
		PersistenceTime:         p.PersistenceTime,
		AlertingM:               p.AlertingM,
		AlertingN:               p.AlertingN,
		ContourThreshold:        p.ContourThreshold,
		DTALogic:                p.DTALogic,
		DTALatitude:             p.DTALatitude,
		DTALongitude:            p.DTALongitude,
		DTARadius:               p.DTARadius,
		DTAHeight:               p.DTAHeight,
		DTAAlerter:              p.DTAAlerter,
		CorrectiveRegion:        p.CorrectiveRegion,
		OwnshipCentricAlerting:  p.OwnshipCentricAlerting,
		Alerters:                p.Alerters,
	}
}

func fromDocument(d document, epoch uint64) Parameters {
	return Parameters{
		LookaheadTime: d.LookaheadTime,
		LeftHDir:      d.LeftHDir, RightHDir: d.RightHDir,
		MinHS: d.MinHS, MaxHS: d.MaxHS, MinAirspeed: d.MinAirspeed,
		MinVS: d.MinVS, MaxVS: d.MaxVS,
		MinAlt: d.MinAlt, MaxAlt: d.MaxAlt,
		StepHDir: d.StepHDir, StepHS: d.StepHS, StepVS: d.StepVS, StepAlt: d.StepAlt,
		HorizontalAccel: d.HorizontalAccel, VerticalAccel: d.VerticalAccel,
		TurnRate: d.TurnRate, BankAngle: d.BankAngle,
		VerticalRate:            d.VerticalRate,
		RecoveryStabilityTime:   d.RecoveryStabilityTime,
		MinHorizontalRecovery:   d.MinHorizontalRecovery,
		MinVerticalRecovery:     d.MinVerticalRecovery,
		RecoveryHDir:            d.RecoveryHDir,
		RecoveryHS:              d.RecoveryHS,
		RecoveryVS:              d.RecoveryVS,
		RecoveryAlt:             d.RecoveryAlt,
		CABands:                 d.CABands,
		CAFactor:                d.CAFactor,
		HorizontalNMAC:          d.HorizontalNMAC,
		VerticalNMAC:            d.VerticalNMAC,
		HysteresisTime:          d.HysteresisTime,
		PersistenceTime:         d.PersistenceTime,
		AlertingM:               d.AlertingM,
		AlertingN:               d.AlertingN,
		ContourThreshold:        d.ContourThreshold,
		DTALogic:                d.DTALogic,
		DTALatitude:             d.DTALatitude,
		DTALongitude:            d.DTALongitude,
		DTARadius:               d.DTARadius,
		DTAHeight:               d.DTAHeight,
		DTAAlerter:              d.DTAAlerter,
		CorrectiveRegion:        d.CorrectiveRegion,
		OwnshipCentricAlerting:  d.OwnshipCentricAlerting,
		Alerters:                d.Alerters,
		epoch:                   epoch + 1,
	}
}

// ExportJSON marshals p into the §6.1-keyed JSON exchange document.
func ExportJSON(p Parameters) ([]byte, error) {
	return json.MarshalIndent(toDocument(p), "", "  ")
}

// ImportJSON parses a JSON document into Parameters, reporting
// duplicate-key collisions found along the way (util.FindDuplicateJSONKeys)
// into the given error log before attempting the strict unmarshal,
// mirroring how the persisted-file loader treats malformed input:
// warn and fall back to base rather than throwing.
func ImportJSON(data []byte, base Parameters, log *util.ErrorLogger) Parameters {
	for _, dup := range util.FindDuplicateJSONKeys(data) {
		log.ErrorString("duplicate JSON key %q at %s", dup.Key, dup.Path)
	}

	var d document
	if err := util.UnmarshalJSONBytes(data, &d); err != nil {
		log.Error(err)
		return base
	}
	next := fromDocument(d, base.epoch)
	if errs := next.Validate(); len(errs) > 0 {
		for _, e := range errs {
			log.Error(e)
		}
		return base
	}
	return next
}
