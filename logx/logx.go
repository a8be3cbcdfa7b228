// Package logx wraps the standard library's log.Logger with the small set
// of call sites the solver's error taxonomy needs: operational narration
// (this ran, that many pools found) and recoverable-degradation warnings
// (buffer overflow, no cabs left). It intentionally does not pull in a
// structured logging library — no complete example in the reference pack
// wires one, and a batch call that either succeeds, degrades gracefully or
// fails outright has no real need for log levels, sampling or structured
// fields.
package logx

import (
	"log"
	"os"
)

// std is the package-level logger, in the same spirit as the standard
// library's own log.Print family: a sane default that most callers never
// need to touch, overridable via SetOutput for tests that want to capture
// warnings.
var std = log.New(os.Stderr, "", log.LstdFlags)

// SetOutput redirects all logx output; tests use this to assert that a
// warning was actually emitted.
func SetOutput(w *log.Logger) {
	if w != nil {
		std = w
	}
}

// Infof logs routine, successful progress narration.
func Infof(format string, args ...any) {
	std.Printf("INFO "+format, args...)
}

// Warnf logs a recoverable degradation: dropped branches, no cab
// available, a constraint miss that simply prunes a candidate.
func Warnf(format string, args ...any) {
	std.Printf("WARN "+format, args...)
}
