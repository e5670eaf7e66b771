// daidalus/errorlog.go
// Copyright(c) 2024-2026 daidalus-go contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package daidalus

import "github.com/nasa/daidalus-go/util"

// ErrorLog wraps util.ErrorLogger with the spec-named query methods
// (spec.md §3 "the coordinator exposes hasError/hasMessage so callers
// can tell a genuine computation failure from an advisory message").
// The zero value is ready to use, same as the util.ErrorLogger it wraps.
type ErrorLog struct {
	logger util.ErrorLogger
	errors int
}

// record appends a message and, when fatal, counts it as an error
// rather than an informational message.
func (e *ErrorLog) record(fatal bool, s string, args ...interface{}) {
	e.logger.ErrorString(s, args...)
	if fatal {
		e.errors++
	}
}

// Errorf records a fatal condition: the requested computation could
// not be completed (e.g. an invalid aircraft index, a degenerate
// parameter snapshot).
func (e *ErrorLog) Errorf(format string, args ...interface{}) {
	e.record(true, format, args...)
}

// Warnf records an advisory message that does not itself invalidate
// the computed result (e.g. "DTA alerter not found, falling back to
// default").
func (e *ErrorLog) Warnf(format string, args ...interface{}) {
	e.record(false, format, args...)
}

// hasError reports whether any fatal condition was recorded.
func (e *ErrorLog) hasError() bool { return e.errors > 0 }

// hasMessage reports whether any message, fatal or advisory, was
// recorded.
func (e *ErrorLog) hasMessage() bool { return len(e.logger.Errors()) > 0 }

// HasError is the exported form of hasError, for callers outside the
// package; spec.md names the query lower-case but Go requires an
// exported spelling for cross-package use.
func (e *ErrorLog) HasError() bool { return e.hasError() }

// HasMessage is the exported form of hasMessage.
func (e *ErrorLog) HasMessage() bool { return e.hasMessage() }

// Messages returns every recorded message, fatal and advisory, in
// recording order.
func (e *ErrorLog) Messages() []string { return e.logger.Errors() }

// Clear discards all recorded messages, preparing the log for reuse
// on the next computation.
func (e *ErrorLog) Clear() {
	*e = ErrorLog{}
}
