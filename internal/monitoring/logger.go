// Package monitoring provides the package-level diagnostic logger shared
// across the module. The mapping code reports recoverable numerical
// conditions (NaN interpolations, singular crossing systems) through Logf
// rather than returning errors, so queries always produce a value.
package monitoring

import "log"

// Logf is the diagnostic logger. It defaults to log.Printf but may be
// replaced by SetLogger; tests and embedding applications can redirect or
// mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger and returns the previous one so
// callers can restore it. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) (previous func(format string, v ...interface{})) {
	previous = Logf
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return previous
	}
	Logf = f
	return previous
}
