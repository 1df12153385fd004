// Copyright 2026 The Vizkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizkit

// Logger receives optional diagnostics from chart rendering. It is
// satisfied by *log.Logger. Charts that are not handed a Logger use
// NopLogger; there is no package-level logger state.
type Logger interface {
	Printf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return nopLogger{}
}

// EnsureLogger replaces a nil Logger with NopLogger so callers can
// log unconditionally.
func EnsureLogger(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return l
}
