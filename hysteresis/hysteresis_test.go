// hysteresis/hysteresis_test.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hysteresis

import "testing"

func TestLevelFilterRequiresMOfN(t *testing.T) {
	f := NewLevelFilter(2, 3, 10)

	if got := f.Update(0, 0); got != 0 {
		t.Fatalf("initial observation should commit immediately, got %d", got)
	}
	if got := f.Update(2, 1); got != 0 {
		t.Errorf("a single raised observation should not yet raise the committed level, got %d", got)
	}
	if got := f.Update(2, 2); got != 2 {
		t.Errorf("two of the last three observations at level 2 should raise the committed level, got %d", got)
	}
}

func TestLevelFilterDelaysDowngrade(t *testing.T) {
	f := NewLevelFilter(1, 1, 5)
	f.Update(3, 0)
	if got := f.Update(0, 1); got != 3 {
		t.Errorf("downgrade before hysteresis_time elapses should be delayed, got %d", got)
	}
	if got := f.Update(0, 6); got != 0 {
		t.Errorf("downgrade after hysteresis_time elapses should take effect, got %d", got)
	}
}

func TestPreferredFilterRetainsWithinSpread(t *testing.T) {
	f := NewPreferredFilter(30, 5)
	f.Update(90, 0)
	if got := f.Update(93, 10); got != 90 {
		t.Errorf("small drift within spread should retain the committed value, got %v", got)
	}
}

func TestPreferredFilterSwitchesBeyondSpread(t *testing.T) {
	f := NewPreferredFilter(30, 5)
	f.Update(90, 0)
	if got := f.Update(150, 10); got != 150 {
		t.Errorf("a jump beyond spread should switch immediately, got %v", got)
	}
}

func TestPreferredFilterSwitchesAfterPersistenceTime(t *testing.T) {
	f := NewPreferredFilter(30, 5)
	f.Update(90, 0)
	if got := f.Update(92, 31); got != 92 {
		t.Errorf("after persistence_time elapses, a new value within spread should still be accepted, got %v", got)
	}
}
