// config/snapshot.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import "github.com/nasa/daidalus-go/util"

// snapshot is the msgpack-serializable mirror of Parameters: the
// unexported epoch field is excluded, since a restored snapshot gets a
// fresh epoch on load (it is, from the caller's perspective, a brand
// new accepted Set).
type snapshot struct {
	LookaheadTime                              float64
	LeftHDir, RightHDir                        float64
	MinHS, MaxHS, MinAirspeed                  float64
	MinVS, MaxVS                               float64
	MinAlt, MaxAlt                             float64
	StepHDir, StepHS, StepVS, StepAlt          float64
	HorizontalAccel, VerticalAccel             float64
	TurnRate, BankAngle                        float64
	VerticalRate                                float64
	RecoveryStabilityTime                      float64
	MinHorizontalRecovery, MinVerticalRecovery float64
	RecoveryHDir, RecoveryHS, RecoveryVS, RecoveryAlt bool
	CABands                                    bool
	CAFactor                                   float64
	HorizontalNMAC, VerticalNMAC                float64
	HysteresisTime, PersistenceTime             float64
	AlertingM, AlertingN                        int
	ContourThreshold                            float64
	DTALogic                                    int
	DTALatitude, DTALongitude, DTARadius, DTAHeight float64
	DTAAlerter                                  string
	CorrectiveRegion                            string
	OwnshipCentricAlerting                      bool
	Alerters                                    []string
}

func toSnapshot(p Parameters) snapshot {
	d := toDocument(p)
	return snapshot(d)
}

func fromSnapshot(s snapshot) Parameters {
	return fromDocument(document(s), 0)
}

// maxSnapshotCacheBytes bounds the total size of saved snapshots;
// SaveSnapshot culls the oldest entries past this budget so repeated
// crash/resume cycles don't grow the cache directory unbounded.
const maxSnapshotCacheBytes = 16 << 20 // 16 MiB

// SaveSnapshot persists p to the process-wide cache directory under
// name, msgpack-encoded and flate-compressed (util.CacheStoreObject),
// for fast crash/resume reload without re-parsing a text or JSON
// config file. Culling a best-effort over-budget entry is not fatal to
// the save itself, so only the store's own error is returned.
func SaveSnapshot(name string, p Parameters) error {
	if err := util.CacheStoreObject(name, toSnapshot(p)); err != nil {
		return err
	}
	util.CacheCullObjects(maxSnapshotCacheBytes)
	return nil
}

// LoadSnapshot restores a Parameters previously saved with
// SaveSnapshot, validating it before returning; an invalid or
// unreadable snapshot returns the error and the caller's base instead.
func LoadSnapshot(name string, base Parameters) (Parameters, error) {
	var s snapshot
	if _, err := util.CacheRetrieveObject(name, &s); err != nil {
		return base, err
	}
	p := fromSnapshot(s)
	if errs := p.Validate(); len(errs) > 0 {
		return base, errs[0]
	}
	return p, nil
}
