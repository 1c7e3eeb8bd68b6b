// Package logger provides levelled logging for the assignment-window CLI.
// Info, warnings and errors always reach stderr. When verbose mode is
// enabled via the --verbose flag, debug messages and section headers are
// printed too, tracing each step of a sync.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	mu      sync.RWMutex
	writeMu sync.Mutex
	verbose bool
	color   bool
	output  io.Writer = os.Stderr
)

// Level colours, matching the usual cyan/green/yellow/red scheme.
var (
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
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

// SetColor enables or disables coloured output.
func SetColor(c bool) {
	mu.Lock()
	defer mu.Unlock()
	color = c
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		write(debugStyle, "[DEBUG] "+format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		write(sectionStyle, "\n=== %s ===", name)
	}
}

// Info prints an informational message.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	write(infoStyle, "[INFO] "+format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	write(warnStyle, "[WARN] "+format, args...)
}

// Error prints an error message.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	write(errorStyle, "[ERROR] "+format, args...)
}

// write renders one line (caller must hold the read lock).
func write(style lipgloss.Style, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if color {
		line = style.Render(line)
	}
	writeMu.Lock()
	defer writeMu.Unlock()
	fmt.Fprintln(output, line)
}
