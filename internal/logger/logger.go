// Package logger prints diagnostics to stderr when --verbose is set.
// Command results go to stdout; everything here is commentary on what a
// backend is doing, so it stays silent unless asked for.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables diagnostic output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose reports whether diagnostics are enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects diagnostics, for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug logs backend-level detail.
func Debug(format string, args ...any) { logf("[DEBUG] ", format, args...) }

// Info logs progress messages.
func Info(format string, args ...any) { logf("[INFO] ", format, args...) }

// Warn logs recoverable problems.
func Warn(format string, args ...any) { logf("[WARN] ", format, args...) }

// Section marks the start of a named phase.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func logf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}
