// ingest/ingest.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package ingest reads the CSV-like scenario file format of spec.md
// §6.3: a header row naming NAME/time plus either lat/lon/alt or
// x/y/z position columns, either trk/gs/vs or vx/vy/vz velocity
// columns, and optional sUncertainty columns. The first aircraft named
// at a given time-step is the ownship unless a caller-supplied name
// override says otherwise; time strictly increases across distinct
// steps.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	gomath "math"
	"strconv"
	"strings"
	"time"

	"github.com/nasa/daidalus-go/daidalus"
	"github.com/nasa/daidalus-go/math"
)

// Step is every aircraft state sharing one time-of-applicability, in
// file order (ownship first, per §6.3).
type Step struct {
	Time    time.Time
	States  []daidalus.AircraftState
}

// columnSet records which optional columns a given file actually
// supplies, resolved once from the header row.
type columnSet struct {
	idx map[string]int

	geodesic bool // lat/lon/alt vs x/y/z
	euler    bool // trk/gs/vs vs vx/vy/vz
	hasUnc   bool
}

func resolveColumns(header []string) columnSet {
	cs := columnSet{idx: map[string]int{}}
	for i, h := range header {
		cs.idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	_, cs.geodesic = cs.idx["latitude"]
	_, hasTrk := cs.idx["trk"]
	cs.euler = hasTrk
	_, cs.hasUnc = cs.idx["sx"]
	return cs
}

func (cs columnSet) col(row []string, name string) (string, bool) {
	i, ok := cs.idx[name]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

func (cs columnSet) float(row []string, name string) (float64, error) {
	s, ok := cs.col(row, name)
	if !ok {
		return 0, fmt.Errorf("missing column %q", name)
	}
	return strconv.ParseFloat(s, 64)
}

// OwnshipOverride, when non-empty, names the aircraft to treat as
// ownship regardless of file order (spec.md §6.3 "unless overridden
// by name").
type Options struct {
	OwnshipOverride string
}

// ReadAll parses every step of r into a Step slice, validating that
// time strictly increases across distinct steps (spec.md §6.3) and
// that every step names an ownship.
func ReadAll(r io.Reader, opts Options) ([]Step, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cs := resolveColumns(header)

	var steps []Step
	var lastTime time.Time
	haveLastTime := false

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		state, stamp, err := parseRow(cs, row)
		if err != nil {
			return nil, fmt.Errorf("row %v: %w", row, err)
		}

		if len(steps) == 0 || !steps[len(steps)-1].Time.Equal(stamp) {
			if haveLastTime && !stamp.After(lastTime) {
				return nil, fmt.Errorf("time does not strictly increase: %s after %s", stamp, lastTime)
			}
			steps = append(steps, Step{Time: stamp})
			lastTime = stamp
			haveLastTime = true
		}
		last := &steps[len(steps)-1]
		last.States = append(last.States, state)
	}

	for i := range steps {
		reorderOwnship(steps[i].States, opts.OwnshipOverride)
	}
	return steps, nil
}

// reorderOwnship moves the named aircraft (or leaves the first, if
// override is empty or not found) to index 0.
func reorderOwnship(states []daidalus.AircraftState, override string) {
	if override == "" {
		return
	}
	for i, s := range states {
		if s.ID == override {
			states[0], states[i] = states[i], states[0]
			return
		}
	}
}

func parseRow(cs columnSet, row []string) (daidalus.AircraftState, time.Time, error) {
	name, _ := cs.col(row, "name")
	if name == "" {
		return daidalus.AircraftState{}, time.Time{}, fmt.Errorf("missing NAME")
	}

	tsec, err := cs.float(row, "time")
	if err != nil {
		return daidalus.AircraftState{}, time.Time{}, err
	}
	stamp := time.Unix(0, 0).Add(time.Duration(tsec * float64(time.Second)))

	state := daidalus.AircraftState{ID: name, Time: stamp}

	if cs.geodesic {
		lon, err := cs.float(row, "longitude")
		if err != nil {
			return state, stamp, err
		}
		lat, err := cs.float(row, "latitude")
		if err != nil {
			return state, stamp, err
		}
		alt, err := cs.float(row, "altitude")
		if err != nil {
			return state, stamp, err
		}
		state.Frame = daidalus.FrameGeodesic
		state.LatLon = math.LatLon{lon, lat}
		state.Altitude = alt
	} else {
		x, err := cs.float(row, "x")
		if err != nil {
			return state, stamp, err
		}
		y, err := cs.float(row, "y")
		if err != nil {
			return state, stamp, err
		}
		z, err := cs.float(row, "z")
		if err != nil {
			return state, stamp, err
		}
		state.Frame = daidalus.FrameLocalEuclidean
		state.Local = math.Vec2{x, y}
		state.Altitude = z
	}

	if cs.euler {
		trk, err := cs.float(row, "trk")
		if err != nil {
			return state, stamp, err
		}
		gs, err := cs.float(row, "gs")
		if err != nil {
			return state, stamp, err
		}
		vs, err := cs.float(row, "vs")
		if err != nil {
			return state, stamp, err
		}
		rad := math.Radians(trk)
		state.GroundVelocity = math.Vec2{gs * gomath.Sin(rad), gs * gomath.Cos(rad)}
		state.VerticalSpeed = vs
	} else {
		vx, err := cs.float(row, "vx")
		if err != nil {
			return state, stamp, err
		}
		vy, err := cs.float(row, "vy")
		if err != nil {
			return state, stamp, err
		}
		vz, err := cs.float(row, "vz")
		if err != nil {
			return state, stamp, err
		}
		state.GroundVelocity = math.Vec2{vx, vy}
		state.VerticalSpeed = vz
	}

	if cs.hasUnc {
		u := &daidalus.Uncertainty{}
		if v, err := cs.float(row, "sx"); err == nil {
			u.HorizontalPositionEW = v
		}
		if v, err := cs.float(row, "sy"); err == nil {
			u.HorizontalPositionNS = v
		}
		if v, err := cs.float(row, "sz"); err == nil {
			u.VerticalPosition = v
		}
		state.Uncertainty = u
	}

	return state, stamp, nil
}
