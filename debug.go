package gesture

import (
	"fmt"
	"os"
)

// logf is the package diagnostic logger. Protocol violations are always
// reported through it; dispatch tracing only when the handler is in debug mode.
var logf = stderrLogf

func stderrLogf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[gesture] "+format+"\n", args...)
}

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, args ...any)) {
	if f == nil {
		logf = func(string, ...any) {}
		return
	}
	logf = f
}

// SetDebugMode enables or disables debug mode. When enabled, protocol
// violations (unknown acks, zero timestamps, double-tap support toggled
// mid-gesture) panic instead of being logged and ignored, and every dispatch
// decision is traced through the logger.
func (h *Handler) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// debugTrace logs a dispatch decision when debug mode is on.
func (h *Handler) debugTrace(format string, args ...any) {
	if !h.debug {
		return
	}
	logf("trace: "+format, args...)
}

// violation reports a broken caller contract. In debug mode it panics with a
// descriptive message; otherwise it logs and the caller ignores the offending
// call.
func (h *Handler) violation(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if h.debug {
		panic("gesture debug: " + msg)
	}
	logf("warning: %s", msg)
}
