// traj/traj.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package traj generates the closed-form kinematic (or instantaneous)
// ownship trajectories the bands engine projects forward when testing
// a candidate maneuver value against traffic (spec.md §4.2 step 2).
// Turn geometry follows the constant-bank-angle circular arc used
// throughout nav/lateral.go; speed, vertical-speed, and altitude
// changes are constant-acceleration ramps to the candidate value,
// after which the ownship continues level/straight at that value.
package traj

import (
	gomath "math"

	"github.com/nasa/daidalus-go/math"
)

// Dimension is one of the four maneuver axes the bands engine
// enumerates candidates over (spec.md §4.2).
type Dimension int

const (
	Direction Dimension = iota
	HorizontalSpeed
	VerticalSpeed
	Altitude
)

func (d Dimension) String() string {
	switch d {
	case Direction:
		return "direction"
	case HorizontalSpeed:
		return "horizontal-speed"
	case VerticalSpeed:
		return "vertical-speed"
	case Altitude:
		return "altitude"
	default:
		return "unknown"
	}
}

// State is the ownship's instantaneous kinematic state: a horizontal
// position and track/ground-speed pair, plus altitude and vertical
// speed.
type State struct {
	Position math.Vec2
	Track    float64 // degrees true, clockwise from north
	GroundSpeed float64 // m/s
	Altitude    float64 // meters
	VerticalSpeed float64 // m/s
}

// Velocity returns the horizontal ground-velocity vector implied by
// Track/GroundSpeed, using the same (sin,cos) heading convention
// nav/lateral.go uses for its flight-vector computation.
func (s State) Velocity() math.Vec2 {
	rad := math.Radians(s.Track)
	return math.Vec2{s.GroundSpeed * gomath.Sin(rad), s.GroundSpeed * gomath.Cos(rad)}
}

// Kinematics bundles the performance parameters the trajectory
// generator needs: turn bank angle, horizontal/vertical acceleration,
// a maneuver-start delay, and whether to skip the transient
// altogether (spec.md §4.2 step 2, "instantaneous mode").
type Kinematics struct {
	BankAngleDeg      float64 // deg, used to derive turn rate via math.TurnRateFromBank
	HorizontalAccel   float64 // m/s^2
	VerticalAccel     float64 // m/s^2, used for vertical-speed-dimension ramps
	AltitudeRate      float64 // m/s, constant climb/descend rate used for the altitude dimension
	TimeToManeuver    float64 // seconds, delay before the transient begins
	Instantaneous     bool
}

// Project returns the ownship's projected State at time t (seconds
// from now) assuming a maneuver toward candidate in dimension dim
// begun (after TimeToManeuver) from the given starting state, using
// the given kinematics. Other dimensions' values are held constant.
func Project(dim Dimension, candidate float64, start State, k Kinematics, t float64) State {
	delay := gomath.Max(0, k.TimeToManeuver)
	if t <= delay {
		return coast(start, t)
	}

	atDelay := coast(start, delay)
	tau := t - delay

	switch dim {
	case Direction:
		return projectDirection(candidate, atDelay, k, tau)
	case HorizontalSpeed:
		return projectHorizontalSpeed(candidate, atDelay, k, tau)
	case VerticalSpeed:
		return projectVerticalSpeed(candidate, atDelay, k, tau)
	case Altitude:
		return projectAltitude(candidate, atDelay, k, tau)
	default:
		return coast(atDelay, tau)
	}
}

// coast advances s by dt seconds of straight, level, constant-speed
// flight: no maneuver in progress.
func coast(s State, dt float64) State {
	v := s.Velocity()
	s.Position = math.Add2(s.Position, math.Scale2(v, dt))
	s.Altitude += s.VerticalSpeed * dt
	return s
}

func projectDirection(targetTrack float64, s State, k Kinematics, tau float64) State {
	if k.Instantaneous {
		s.Track = math.NormalizeHeading(targetTrack)
		return coast(s, tau)
	}

	turnRate := math.TurnRateFromBank(k.BankAngleDeg, s.GroundSpeed)
	if turnRate <= 0 {
		return coast(s, tau)
	}
	signedTurn := math.HeadingSignedTurn(s.Track, targetTrack) // degrees, (-180,180]
	turnDuration := gomath.Abs(signedTurn) / turnRate
	omega := math.Radians(turnRate) * math.Sign(signedTurn) // rad/s, signed

	active := gomath.Min(tau, turnDuration)
	h0 := math.Radians(s.Track)
	V := s.GroundSpeed

	if omega != 0 {
		hEnd := h0 + omega*active
		s.Position = math.Add2(s.Position, math.Vec2{
			(V / omega) * (gomath.Cos(h0) - gomath.Cos(hEnd)),
			(V / omega) * (gomath.Sin(hEnd) - gomath.Sin(h0)),
		})
		s.Track = math.NormalizeHeading(math.Degrees(hEnd))
	}
	s.Altitude += s.VerticalSpeed * active

	if tau > turnDuration {
		s.Track = math.NormalizeHeading(targetTrack)
		s = coast(s, tau-turnDuration)
	}
	return s
}

func projectHorizontalSpeed(targetGS float64, s State, k Kinematics, tau float64) State {
	if k.Instantaneous || k.HorizontalAccel <= 0 {
		s.GroundSpeed = targetGS
		return coast(s, tau)
	}

	accel := k.HorizontalAccel
	delta := targetGS - s.GroundSpeed
	rampDuration := gomath.Abs(delta) / accel
	signedAccel := accel * math.Sign(delta)

	active := gomath.Min(tau, rampDuration)
	dir := math.Normalize2(s.Velocity())
	if math.LengthSqr2(dir) == 0 {
		dir = math.Vec2{gomath.Sin(math.Radians(s.Track)), gomath.Cos(math.Radians(s.Track))}
	}
	dist := s.GroundSpeed*active + 0.5*signedAccel*active*active
	s.Position = math.Add2(s.Position, math.Scale2(dir, dist))
	s.Altitude += s.VerticalSpeed * active
	s.GroundSpeed += signedAccel * active

	if tau > rampDuration {
		s.GroundSpeed = targetGS
		s = coast(s, tau-rampDuration)
	}
	return s
}

func projectVerticalSpeed(targetVS float64, s State, k Kinematics, tau float64) State {
	if k.Instantaneous || k.VerticalAccel <= 0 {
		s.VerticalSpeed = targetVS
		return coast(s, tau)
	}

	accel := k.VerticalAccel
	delta := targetVS - s.VerticalSpeed
	rampDuration := gomath.Abs(delta) / accel
	signedAccel := accel * math.Sign(delta)

	active := gomath.Min(tau, rampDuration)
	s.Altitude += s.VerticalSpeed*active + 0.5*signedAccel*active*active
	s.Position = math.Add2(s.Position, math.Scale2(s.Velocity(), active))
	s.VerticalSpeed += signedAccel * active

	if tau > rampDuration {
		s.VerticalSpeed = targetVS
		s = coast(s, tau-rampDuration)
	}
	return s
}

func projectAltitude(targetAlt float64, s State, k Kinematics, tau float64) State {
	if k.Instantaneous || k.AltitudeRate <= 0 {
		s.Altitude = targetAlt
		s.VerticalSpeed = 0
		return coast(s, tau)
	}

	delta := targetAlt - s.Altitude
	rate := k.AltitudeRate * math.Sign(delta)
	captureDuration := gomath.Abs(delta) / k.AltitudeRate

	active := gomath.Min(tau, captureDuration)
	s.Position = math.Add2(s.Position, math.Scale2(s.Velocity(), active))
	s.Altitude += rate * active
	s.VerticalSpeed = rate

	if tau > captureDuration {
		s.Altitude = targetAlt
		s.VerticalSpeed = 0
		s = coast(s, tau-captureDuration)
	}
	return s
}
