// hysteresis/hysteresis.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package hysteresis implements the two time-windowed stabilisation
// filters applied to a traffic aircraft's alert level and preferred
// maneuver direction (spec.md §4.4): m-of-n confirmation with a
// downgrade lockout for alert levels, and a spread/time-capped
// retention for the bands engine's preferred-direction resolution.
// Both run in series per the spec's resolved hysteresis ordering
// (alert level filtering happens independently of, and before,
// per-dimension preferred-direction persistence).
package hysteresis

import gomath "math"

// LevelFilter is the m-of-n confirmation and hysteresis_time downgrade
// lockout applied to a traffic aircraft's raw alert level (spec.md
// §4.4 "Alert hysteresis").
type LevelFilter struct {
	M, N           int
	HysteresisTime float64 // seconds

	history       []int
	committed     int
	lastAtOrAbove float64
	seenFirst     bool
}

// NewLevelFilter constructs a filter requiring m of the last n raw
// observations to support a raise, with downgrades delayed by
// hysteresisTime seconds after the committed level was last observed.
func NewLevelFilter(m, n int, hysteresisTime float64) *LevelFilter {
	return &LevelFilter{M: m, N: n, HysteresisTime: hysteresisTime}
}

// Update pushes a new raw alert level observed at time now and
// returns the filtered, committed level.
func (f *LevelFilter) Update(raw int, now float64) int {
	if !f.seenFirst {
		f.committed = raw
		f.lastAtOrAbove = now
		f.seenFirst = true
	}

	f.history = append(f.history, raw)
	if n := f.N; n > 0 && len(f.history) > n {
		f.history = f.history[len(f.history)-n:]
	}

	if raw >= f.committed {
		f.lastAtOrAbove = now
	}

	switch {
	case raw > f.committed:
		count := 0
		for _, h := range f.history {
			if h >= raw {
				count++
			}
		}
		if count >= f.M {
			f.committed = raw
			f.lastAtOrAbove = now
		}
	case raw < f.committed:
		if now-f.lastAtOrAbove >= f.HysteresisTime {
			f.committed = raw
		}
	}
	return f.committed
}

// Level returns the currently committed level without observing a
// new raw value.
func (f *LevelFilter) Level() int { return f.committed }

// PreferredFilter retains a committed preferred-direction value while
// the newly computed preferred stays within Spread of it, for up to
// PersistenceTime seconds (spec.md §4.4 "Bands persistence"); once
// either bound is exceeded the new value is accepted immediately.
type PreferredFilter struct {
	PersistenceTime float64
	Spread          float64

	committed   float64
	committedAt float64
	hasValue    bool
}

func NewPreferredFilter(persistenceTime, spread float64) *PreferredFilter {
	return &PreferredFilter{PersistenceTime: persistenceTime, Spread: spread}
}

// Update folds in a newly computed preferred-direction value at time
// now and returns the filter's retained value.
func (f *PreferredFilter) Update(newPreferred, now float64) float64 {
	if !f.hasValue {
		f.committed = newPreferred
		f.committedAt = now
		f.hasValue = true
		return f.committed
	}

	withinSpread := gomath.Abs(newPreferred-f.committed) <= f.Spread
	elapsed := now - f.committedAt
	if withinSpread && elapsed < f.PersistenceTime {
		return f.committed
	}

	f.committed = newPreferred
	f.committedAt = now
	return f.committed
}

// Value returns the currently retained preferred value.
func (f *PreferredFilter) Value() float64 { return f.committed }

// State is the composite per-traffic hysteresis context named in
// spec.md §3 "HysteresisState": one alert-level filter, and one
// preferred-direction filter per maneuver dimension (indexed by the
// small integer dimension codes the traj package defines — direction,
// horizontal speed, vertical speed, altitude — to avoid a dependency
// from this package back onto traj's State/Kinematics types).
type State struct {
	Level      *LevelFilter
	Preferred  [4]*PreferredFilter
}

// NewState builds a State with the given alert-hysteresis and
// bands-persistence parameters, ready to filter a new traffic
// aircraft's per-step observations.
func NewState(m, n int, hysteresisTime, persistenceTime, spread float64) *State {
	s := &State{Level: NewLevelFilter(m, n, hysteresisTime)}
	for i := range s.Preferred {
		s.Preferred[i] = NewPreferredFilter(persistenceTime, spread)
	}
	return s
}
