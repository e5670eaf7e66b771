// alert/default.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package alert

import (
	"github.com/nasa/daidalus-go/detect"
	"github.com/nasa/daidalus-go/math"
)

// DefaultDO365B approximates the standard three-level DO-365B alerter
// preset (preventive / corrective / warning) with WCV_TAUMOD detectors:
// the preventive rung uses a 700 ft vertical threshold and the two
// more severe rungs 450 ft, and the alerting time is 55 s for the first
// two rungs and 25 s for the warning rung. No rung's volume or alerting
// time exceeds the one below it, satisfying ValidateDominance.
func DefaultDO365B() Alerter {
	return Alerter{
		Name: "default",
		Thresholds: []AlertThreshold{
			{
				Detector: detect.WCV{
					DTHR: 0.66 * math.NauticalMilesToMeters,
					ZTHR: 700 * math.FeetToMeters,
					TTHR: 35,
					TCOA: 0,
				},
				AlertingTime:      55,
				EarlyAlertingTime: 75,
				Region:            FAR,
			},
			{
				Detector: detect.WCV{
					DTHR: 0.66 * math.NauticalMilesToMeters,
					ZTHR: 450 * math.FeetToMeters,
					TTHR: 35,
					TCOA: 0,
				},
				AlertingTime:      55,
				EarlyAlertingTime: 75,
				Region:            MID,
			},
			{
				Detector: detect.WCV{
					DTHR: 0.66 * math.NauticalMilesToMeters,
					ZTHR: 450 * math.FeetToMeters,
					TTHR: 35,
					TCOA: 0,
				},
				AlertingTime:      25,
				EarlyAlertingTime: 55,
				Region:            NEAR,
			},
		},
	}
}
