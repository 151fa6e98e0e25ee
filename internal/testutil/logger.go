package testutil

import (
	"fmt"
	"sync"
)

// RecordingLogger captures warn and error entries (message plus rendered
// args) so tests can assert on logging side effects. Safe for concurrent use.
type RecordingLogger struct {
	mu       sync.Mutex
	warnings []string
	errors   []string
}

// Debug is discarded.
func (l *RecordingLogger) Debug(string, ...any) {}

// Info is discarded.
func (l *RecordingLogger) Info(string, ...any) {}

// Warn records the entry.
func (l *RecordingLogger) Warn(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, render(msg, args))
}

// Error records the entry.
func (l *RecordingLogger) Error(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, render(msg, args))
}

// Warnings returns a copy of the recorded warn entries.
func (l *RecordingLogger) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warnings...)
}

// Errors returns a copy of the recorded error entries.
func (l *RecordingLogger) Errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.errors...)
}

func render(msg string, args []any) string {
	out := msg
	for _, a := range args {
		out += " " + fmt.Sprint(a)
	}
	return out
}
