// config/config_test.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nasa/daidalus-go/util"
)

func TestDefaultValidates(t *testing.T) {
	if errs := Default().Validate(); len(errs) != 0 {
		t.Fatalf("Default() should validate cleanly, got %v", errs)
	}
}

func TestSetRejectsInvalidChange(t *testing.T) {
	p := Default()
	var log util.ErrorLogger
	next := p.Set(&log, func(p *Parameters) { p.LookaheadTime = -1 })

	if next.Epoch() != p.Epoch() {
		t.Errorf("an invalid Set should not advance the epoch")
	}
	if !log.HaveErrors() {
		t.Errorf("an invalid Set should log an error")
	}
}

func TestSetAcceptsValidChange(t *testing.T) {
	p := Default()
	var log util.ErrorLogger
	next := p.Set(&log, func(p *Parameters) { p.LookaheadTime = 300 })

	if next.LookaheadTime != 300 {
		t.Errorf("expected LookaheadTime = 300, got %v", next.LookaheadTime)
	}
	if next.Epoch() == p.Epoch() {
		t.Errorf("a valid Set should advance the epoch")
	}
}

func TestLoadMergesRecognizedKeys(t *testing.T) {
	input := "# a comment\nlookahead_time = 120 [s]\nbank_angle = 30 [deg]\n\nhysteresis_time = 8\n"
	next, err := Load(strings.NewReader(input), Default())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if next.LookaheadTime != 120 {
		t.Errorf("lookahead_time = %v, expected 120", next.LookaheadTime)
	}
	if next.HysteresisTime != 8 {
		t.Errorf("hysteresis_time = %v, expected 8", next.HysteresisTime)
	}
}

func TestLoadRejectsUnrecognizedKey(t *testing.T) {
	_, err := Load(strings.NewReader("not_a_real_key = 1\n"), Default())
	if err == nil {
		t.Fatal("expected an error for an unrecognized key")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	p := Default()
	var buf bytes.Buffer
	if err := Save(&buf, p); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	reloaded, err := Load(&buf, Default())
	if err != nil {
		t.Fatalf("Load() of saved output error: %v", err)
	}
	if reloaded.LookaheadTime != p.LookaheadTime {
		t.Errorf("round-tripped lookahead_time = %v, expected %v", reloaded.LookaheadTime, p.LookaheadTime)
	}
}

func TestImportExportJSONRoundTrip(t *testing.T) {
	p := Default()
	data, err := ExportJSON(p)
	if err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	var log util.ErrorLogger
	reimported := ImportJSON(data, Default(), &log)
	if log.HaveErrors() {
		t.Fatalf("ImportJSON() of valid export logged errors: %v", log.Errors())
	}
	if reimported.LookaheadTime != p.LookaheadTime {
		t.Errorf("round-tripped lookahead_time = %v, expected %v", reimported.LookaheadTime, p.LookaheadTime)
	}
}

func TestImportJSONDuplicateKeyWarns(t *testing.T) {
	data := []byte(`{"lookahead_time": 10, "lookahead_time": 20}`)
	var log util.ErrorLogger
	ImportJSON(data, Default(), &log)
	if !log.HaveErrors() {
		t.Errorf("expected a duplicate-key warning")
	}
}
