// Package logger provides verbose logging for medcalc.
// When verbose mode is enabled via the --verbose flag, messages are
// printed to stderr so users can follow validation, calculation and
// adapter lifecycle events. Nothing is printed otherwise.
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

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Logger prefixes every line with a component name.
type Logger struct {
	component string
}

// Named returns a logger for the given component, e.g. "mcp".
func Named(component string) Logger {
	return Logger{component: component}
}

// Debug prints a debug message if verbose mode is enabled.
func (l Logger) Debug(format string, args ...any) {
	l.write("DEBUG", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func (l Logger) Info(format string, args ...any) {
	l.write("INFO", format, args...)
}

// Warn prints a warning if verbose mode is enabled.
func (l Logger) Warn(format string, args ...any) {
	l.write("WARN", format, args...)
}

func (l Logger) write(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.component != "" {
		fmt.Fprintf(output, "[%s] %s: %s\n", level, l.component, msg)
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, msg)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	Logger{}.Debug(format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	Logger{}.Info(format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	Logger{}.Warn(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
