// ingest/ingest_test.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ingest

import (
	"strings"
	"testing"

	"github.com/nasa/daidalus-go/daidalus"
)

const sampleEuclidean = `NAME,time,x,y,z,trk,gs,vs
ownship,0,0,0,3000,0,100,0
intruder,0,0,20000,3000,180,100,0
ownship,1,0,100,3000,0,100,0
intruder,1,0,19900,3000,180,100,0
`

func TestReadAllParsesSteps(t *testing.T) {
	steps, err := ReadAll(strings.NewReader(sampleEuclidean), Options{})
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if len(steps[0].States) != 2 {
		t.Fatalf("expected 2 aircraft in step 0, got %d", len(steps[0].States))
	}
	if steps[0].States[0].ID != "ownship" {
		t.Errorf("expected first-listed aircraft to be ownship, got %q", steps[0].States[0].ID)
	}
}

func TestReadAllRejectsNonIncreasingTime(t *testing.T) {
	bad := `NAME,time,x,y,z,trk,gs,vs
ownship,1,0,0,3000,0,100,0
ownship,0,0,0,3000,0,100,0
`
	_, err := ReadAll(strings.NewReader(bad), Options{})
	if err == nil {
		t.Fatal("expected an error for non-increasing time")
	}
}

func TestReadAllHonorsOwnshipOverride(t *testing.T) {
	steps, err := ReadAll(strings.NewReader(sampleEuclidean), Options{OwnshipOverride: "intruder"})
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if steps[0].States[0].ID != "intruder" {
		t.Errorf("expected override to move intruder to index 0, got %q", steps[0].States[0].ID)
	}
}

func TestReadAllGeodesicColumns(t *testing.T) {
	geo := `NAME,time,latitude,longitude,altitude,trk,gs,vs
ownship,0,37.5,-122.3,3000,0,100,0
`
	steps, err := ReadAll(strings.NewReader(geo), Options{})
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	s := steps[0].States[0]
	if s.Frame != daidalus.FrameGeodesic {
		t.Errorf("expected geodesic frame")
	}
	if s.LatLon.Latitude() != 37.5 {
		t.Errorf("latitude = %v, expected 37.5", s.LatLon.Latitude())
	}
}
