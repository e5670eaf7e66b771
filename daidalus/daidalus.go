// daidalus/daidalus.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package daidalus

import (
	"fmt"
	gomath "math"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/nasa/daidalus-go/alert"
	"github.com/nasa/daidalus-go/bands"
	"github.com/nasa/daidalus-go/config"
	"github.com/nasa/daidalus-go/hysteresis"
	"github.com/nasa/daidalus-go/math"
	"github.com/nasa/daidalus-go/traj"
	"github.com/nasa/daidalus-go/util"
	"github.com/nasa/daidalus-go/wind"
)

// Daidalus is the top-level coordinator (spec.md §4.5): it holds the
// current step's ownship, traffic list, wind, and parameter snapshot,
// and answers alert-level and bands queries against them, caching
// per-dimension/per-aircraft results keyed on a fingerprint of the
// inputs that would change the answer.
type Daidalus struct {
	params config.Parameters

	ownship *AircraftState
	traffic []AircraftState

	wind wind.Vector
	dta  DTAMode

	alerters map[string]alert.Alerter

	hysteresis      map[string]*hysteresis.State            // keyed by traffic ID
	bandsHysteresis map[traj.Dimension]*hysteresis.PreferredFilter

	cache *cache.Cache

	Log ErrorLog
}

// New builds a coordinator with the given parameter snapshot and the
// default DO-365B alerter registered under the name "default" (spec.md
// §6.1 "alerters" names one or more entries from this registry).
func New(p config.Parameters) *Daidalus {
	d := &Daidalus{
		params:     p,
		alerters:   map[string]alert.Alerter{"default": alert.DefaultDO365B()},
		hysteresis: map[string]*hysteresis.State{},
		cache:      cache.New(30*time.Second, 5*time.Minute),
	}
	return d
}

// RegisterAlerter adds or replaces a named alerter in the coordinator's
// registry, validating its dominance invariant first (spec.md §4.3).
func (d *Daidalus) RegisterAlerter(a alert.Alerter) error {
	if err := a.ValidateDominance(); err != nil {
		d.Log.Errorf("alerter %q failed dominance validation: %v", a.Name, err)
		return err
	}
	d.alerters[a.Name] = a
	return nil
}

// SetParameters replaces the coordinator's parameter snapshot. Since
// Parameters.epoch changes on every accepted Set/Load/Import, this
// also invalidates every cached result whose fingerprint folded in
// the old epoch.
func (d *Daidalus) SetParameters(p config.Parameters) {
	d.params = p
}

// Parameters returns the coordinator's current parameter snapshot.
func (d *Daidalus) Parameters() config.Parameters { return d.params }

// SetOwnship replaces the ownship state and clears the traffic list
// (spec.md §3 "ownship must be set first, which clears the traffic list").
func (d *Daidalus) SetOwnship(a AircraftState) {
	if !a.Valid() {
		d.Log.Errorf("ownship state %s is invalid", a)
		return
	}
	d.ownship = &a
	d.traffic = nil
	d.dta = dtaStatus(d.params, a.LatLon, a.Altitude)
}

// AddTraffic appends a traffic aircraft's state for the current step.
// SetOwnship must have been called first for this step.
func (d *Daidalus) AddTraffic(a AircraftState) {
	if d.ownship == nil {
		d.Log.Errorf("AddTraffic called before SetOwnship")
		return
	}
	if !a.Valid() {
		d.Log.Errorf("traffic state %s is invalid", a)
		return
	}
	if a.Frame != d.ownship.Frame {
		d.Log.Errorf("traffic %s frame does not match ownship frame", a.ID)
		return
	}
	d.traffic = append(d.traffic, a)
	if _, ok := d.hysteresis[a.ID]; !ok {
		d.hysteresis[a.ID] = hysteresis.NewState(
			d.params.AlertingM, d.params.AlertingN, d.params.HysteresisTime,
			d.params.PersistenceTime, d.params.StepHDir*5,
		)
	}
}

// SetWind sets the current step's wind vector (spec.md §3 "Air velocity
// = ground velocity - wind vector").
func (d *Daidalus) SetWind(w wind.Vector) { d.wind = w }

// NumberOfAircraft returns 1 (ownship) plus the traffic count, or 0 if
// no ownship has been set yet.
func (d *Daidalus) NumberOfAircraft() int {
	if d.ownship == nil {
		return 0
	}
	return 1 + len(d.traffic)
}

// aircraftIndex resolves an identifier to its traffic slice index, or
// -1 if not found (spec.md §6.4 "unknown/invalid aircraft indices
// always negative").
func (d *Daidalus) aircraftIndex(id string) int {
	for i, a := range d.traffic {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// fingerprint builds the lazy-cache key for one query: the parameter
// epoch plus a hash of every input that could change the answer
// (spec.md §4.5 "keyed on a fingerprint of inputs").
func (d *Daidalus) fingerprint(parts ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", d.params.Epoch())
	if d.ownship != nil {
		fmt.Fprintf(&sb, "|o:%s", ownshipKey(*d.ownship))
	}
	for _, tr := range d.traffic {
		fmt.Fprintf(&sb, "|t:%s", ownshipKey(tr))
	}
	fmt.Fprintf(&sb, "|w:%v,%v", d.wind.V[0], d.wind.V[1])
	fmt.Fprintf(&sb, "|dta:%d", d.dta)
	for _, p := range parts {
		sb.WriteByte('|')
		sb.WriteString(p)
	}
	return strconv.FormatUint(util.HashString64(sb.String()), 16)
}

func ownshipKey(a AircraftState) string {
	return fmt.Sprintf("%s,%v,%v,%v,%v,%v,%v,%v,%d",
		a.ID, a.LatLon[0], a.LatLon[1], a.Local[0], a.Local[1],
		a.Altitude, a.GroundVelocity, a.VerticalSpeed, a.Time.UnixNano())
}

// alerterFor resolves the alerter assigned to a traffic aircraft: the
// coordinator's DTA alerter while a DTA is active and one is
// registered, else the first name in params.Alerters, else "default".
func (d *Daidalus) alerterFor() alert.Alerter {
	if d.dta != DTAInactive && d.params.DTAAlerter != "" {
		if a, ok := d.alerters[d.params.DTAAlerter]; ok {
			return a
		}
		d.Log.Warnf("dta_alerter %q not registered, falling back", d.params.DTAAlerter)
	}
	for _, name := range d.params.Alerters {
		if a, ok := d.alerters[name]; ok {
			return a
		}
	}
	return d.alerters["default"]
}

// AlertLevel returns the filtered (hysteresis-applied) alert level for
// the traffic aircraft with the given identifier (spec.md §4.3, §4.4).
// Returns level -1 if the identifier is unknown or no ownship has been
// set.
func (d *Daidalus) AlertLevel(id string, now time.Time) int {
	if d.ownship == nil {
		return -1
	}
	idx := d.aircraftIndex(id)
	if idx < 0 {
		return -1
	}
	tr := d.traffic[idx]

	key := "alert:" + id
	fp := d.fingerprint(key, now.Format(time.RFC3339Nano))
	if v, ok := d.cache.Get(fp); ok {
		return v.(int)
	}

	so, vo, zo, zvo := d.relativeOwnship()
	si, vi, zi, zvi := d.relativeTraffic(tr)

	a := d.alerterFor()
	raw, _ := a.Level(so, vo, zo, zvo, si, vi, zi, zvi, 0, d.params.LookaheadTime)

	filtered := d.hysteresis[id].Level.Update(raw, timeSeconds(now))
	d.cache.SetDefault(fp, filtered)
	return filtered
}

func timeSeconds(t time.Time) float64 { return float64(t.UnixNano()) / 1e9 }

// relativeOwnship returns the ownship's horizontal position/velocity
// and altitude/vertical-speed, in the air-velocity frame used by the
// detect package (spec.md §3 "Air velocity = ground velocity - wind").
func (d *Daidalus) relativeOwnship() (pos [2]float64, vel [2]float64, alt, vs float64) {
	o := d.ownship
	origin := o.LatLon
	pos = o.LocalPosition(origin)
	vel = o.AirVelocity(d.wind)
	return pos, vel, o.Altitude, o.VerticalSpeed
}

func (d *Daidalus) relativeTraffic(tr AircraftState) (pos [2]float64, vel [2]float64, alt, vs float64) {
	origin := d.ownship.LatLon
	pos = tr.LocalPosition(origin)
	vel = tr.AirVelocity(d.wind)
	return pos, vel, tr.Altitude, tr.VerticalSpeed
}

// Bands computes the maneuver-guidance bands for one dimension (spec.md
// §4.2), applying the DTA recovery suppression rule and the preferred-
// direction hysteresis filter, caching the result per dimension.
func (d *Daidalus) Bands(dim traj.Dimension, now time.Time) bands.Result {
	fp := d.fingerprint("bands", dim.String(), now.Format(time.RFC3339Nano))
	if v, ok := d.cache.Get(fp); ok {
		return v.(bands.Result)
	}

	own := d.ownshipTrajState()
	current := d.currentValue(dim, own)
	cfg := d.bandsConfig(dim)

	traffic := make([]bands.Traffic, len(d.traffic))
	for i, tr := range d.traffic {
		origin := d.ownship.LatLon
		traffic[i] = bands.Traffic{
			Position:      tr.LocalPosition(origin),
			Velocity:      tr.AirVelocity(d.wind),
			Altitude:      tr.Altitude,
			VerticalSpeed: tr.VerticalSpeed,
			Alerter:       d.alerterFor(),
		}
	}

	result := bands.Compute(dim, own, current, traffic, cfg)
	result = bands.Classify(dim, own, current, traffic, cfg, result)

	if pf := d.preferredFilterFor(dim); pf != nil {
		result.Preferred = pf.Update(result.Preferred, timeSeconds(now))
	}

	d.cache.SetDefault(fp, result)
	return result
}

// LastTimeToManeuver returns, for the named traffic aircraft and
// dimension, the latest delay (seconds, within the alerter's most
// severe threshold's alerting time) at which beginning a maneuver in
// that dimension still leaves a conflict-free or recovery value
// available (spec.md §4.2 step 9). Returns 0 if id is unknown or no
// ownship has been set.
func (d *Daidalus) LastTimeToManeuver(id string, dim traj.Dimension) float64 {
	if d.ownship == nil {
		d.Log.Errorf("LastTimeToManeuver: no ownship set")
		return 0
	}
	idx := d.aircraftIndex(id)
	if idx < 0 {
		d.Log.Errorf("LastTimeToManeuver: unknown aircraft %q", id)
		return 0
	}

	own := d.ownshipTrajState()
	current := d.currentValue(dim, own)
	cfg := d.bandsConfig(dim)

	a := d.alerterFor()
	alertingTime := d.params.LookaheadTime
	if len(a.Thresholds) > 0 {
		alertingTime = a.Thresholds[len(a.Thresholds)-1].AlertingTime
	}

	tr := d.traffic[idx]
	traffic := []bands.Traffic{{
		Position:      tr.LocalPosition(d.ownship.LatLon),
		Velocity:      tr.AirVelocity(d.wind),
		Altitude:      tr.Altitude,
		VerticalSpeed: tr.VerticalSpeed,
		Alerter:       a,
	}}

	return bands.LastTimeToManeuver(dim, own, current, traffic, cfg, alertingTime)
}

// preferredFilterFor returns a representative preferred-direction
// hysteresis filter for the dimension: since spec.md's persistence
// filter is a bands-level (not per-traffic) concern, the coordinator
// keeps one filter set per dimension shared across all traffic,
// distinct from the per-traffic alert-level filters in d.hysteresis.
// It is lazily created the first time a dimension is queried.
func (d *Daidalus) preferredFilterFor(dim traj.Dimension) *hysteresis.PreferredFilter {
	if d.bandsHysteresis == nil {
		d.bandsHysteresis = map[traj.Dimension]*hysteresis.PreferredFilter{}
	}
	f, ok := d.bandsHysteresis[dim]
	if !ok {
		spread := math.Degrees(d.params.StepHDir)
		switch dim {
		case traj.HorizontalSpeed:
			spread = d.params.StepHS
		case traj.VerticalSpeed:
			spread = d.params.StepVS
		case traj.Altitude:
			spread = d.params.StepAlt
		}
		f = hysteresis.NewPreferredFilter(d.params.PersistenceTime, spread)
		d.bandsHysteresis[dim] = f
	}
	return f
}

func (d *Daidalus) ownshipTrajState() traj.State {
	o := d.ownship
	v := o.AirVelocity(d.wind)
	track := math.Degrees(gomath.Atan2(v[0], v[1]))
	gs := gomath.Hypot(v[0], v[1])
	return traj.State{
		Position:      o.LocalPosition(o.LatLon),
		Track:         track,
		GroundSpeed:   gs,
		Altitude:      o.Altitude,
		VerticalSpeed: o.VerticalSpeed,
	}
}

// currentValue returns the ownship's present value for dim, in the
// units the bands engine's Candidate.Value uses for that dimension:
// degrees for Direction (matching traj.State.Track and
// math.NormalizeHeading), SI otherwise.
func (d *Daidalus) currentValue(dim traj.Dimension, own traj.State) float64 {
	switch dim {
	case traj.Direction:
		return own.Track
	case traj.HorizontalSpeed:
		return own.GroundSpeed
	case traj.VerticalSpeed:
		return own.VerticalSpeed
	case traj.Altitude:
		return own.Altitude
	default:
		return 0
	}
}

func (d *Daidalus) bandsConfig(dim traj.Dimension) bands.Config {
	p := d.params
	kin := traj.Kinematics{
		BankAngleDeg:    math.Degrees(p.BankAngle),
		HorizontalAccel: p.HorizontalAccel,
		VerticalAccel:   p.VerticalAccel,
		AltitudeRate:    p.VerticalRate,
	}

	recoveryEnabled := p.CABands
	switch dim {
	case traj.Direction, traj.HorizontalSpeed:
		recoveryEnabled = recoveryEnabled && !d.dta.suppressHorizontalRecovery()
	case traj.VerticalSpeed, traj.Altitude:
		recoveryEnabled = recoveryEnabled && !d.dta.suppressNonHorizontalRecovery()
	}

	switch dim {
	case traj.Direction:
		// Parameters stores angles in SI radians (spec.md §6.1); the
		// bands/traj packages work in degrees for this dimension
		// (traj.State.Track, math.NormalizeHeading), so convert here.
		return bands.Config{
			Min: 0, Max: 360, Step: math.Degrees(p.StepHDir),
			LeftClip: math.Degrees(p.LeftHDir), RightClip: math.Degrees(p.RightHDir),
			Lookahead: p.LookaheadTime, TimeStep: 1,
			Kinematics: kin, RecoveryEnabled: recoveryEnabled,
			CAFactor: p.CAFactor, RecoveryStabilityTime: p.RecoveryStabilityTime,
		}
	case traj.HorizontalSpeed:
		return bands.Config{
			Min: p.MinHS, Max: p.MaxHS, Step: p.StepHS,
			Lookahead: p.LookaheadTime, TimeStep: 1,
			Kinematics: kin, RecoveryEnabled: recoveryEnabled,
			CAFactor: p.CAFactor, RecoveryStabilityTime: p.RecoveryStabilityTime,
		}
	case traj.VerticalSpeed:
		return bands.Config{
			Min: p.MinVS, Max: p.MaxVS, Step: p.StepVS,
			Lookahead: p.LookaheadTime, TimeStep: 1,
			Kinematics: kin, RecoveryEnabled: recoveryEnabled,
			CAFactor: p.CAFactor, RecoveryStabilityTime: p.RecoveryStabilityTime,
		}
	default: // traj.Altitude
		return bands.Config{
			Min: p.MinAlt, Max: p.MaxAlt, Step: p.StepAlt,
			Lookahead: p.LookaheadTime, TimeStep: 1,
			Kinematics: kin, RecoveryEnabled: recoveryEnabled,
			CAFactor: p.CAFactor, RecoveryStabilityTime: p.RecoveryStabilityTime,
		}
	}
}

// TimeToViolation returns the time (seconds) until the alerter's most
// severe detector reports a conflict with the named traffic aircraft,
// 0 if already in violation, +Inf if none within the lookahead window,
// and NaN (with an error logged) if id is unknown or no ownship has
// been set (spec.md §6.4).
func (d *Daidalus) TimeToViolation(id string) float64 {
	if d.ownship == nil {
		d.Log.Errorf("TimeToViolation: no ownship set")
		return gomath.NaN()
	}
	idx := d.aircraftIndex(id)
	if idx < 0 {
		d.Log.Errorf("TimeToViolation: unknown aircraft %q", id)
		return gomath.NaN()
	}
	tr := d.traffic[idx]

	so, vo, zo, zvo := d.relativeOwnship()
	si, vi, zi, zvi := d.relativeTraffic(tr)

	a := d.alerterFor()
	if len(a.Thresholds) == 0 {
		return gomath.Inf(1)
	}
	most := a.Thresholds[len(a.Thresholds)-1]
	cd := most.Detector.Conflict(so, vo, zo, zvo, si, vi, zi, zvi, 0, d.params.LookaheadTime)
	return cd.TimeIn
}
