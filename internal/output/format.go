// Package output provides output formatting for the cashin CLI.
package output

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

// Output format constants.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatAuto Format = "auto"
)

// Formatter carries the output format chosen for a run.
type Formatter struct {
	format Format
}

// NewFormatter creates a formatter for format.
func NewFormatter(format Format) *Formatter {
	return &Formatter{format: format}
}

// Format returns the current output format.
func (f *Formatter) Format() Format {
	return f.format
}

// IsJSON returns true if the formatter outputs JSON.
func (f *Formatter) IsJSON() bool {
	return f.format == FormatJSON
}

// WriteJSON encodes v to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DetectFormat determines the appropriate format based on context.
// Returns JSON for non-TTY output, text for TTY, unless explicitly overridden.
func DetectFormat(w io.Writer, explicit Format) Format {
	if explicit != FormatAuto {
		return explicit
	}

	if IsTerminal(w) {
		return FormatText
	}

	return FormatJSON
}

// ParseFormat parses a format string.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatAuto
	}
}

// Color modes accepted by ColorWriter.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
}

// plainWriter hides the underlying file so terminal styling detects no TTY.
type plainWriter struct {
	io.Writer
}

// ColorWriter returns a writer for styled output honoring the color mode.
// With ColorNever the returned writer never reports itself as a terminal.
func ColorWriter(w io.Writer, mode string) io.Writer {
	if strings.EqualFold(strings.TrimSpace(mode), ColorNever) {
		return plainWriter{Writer: w}
	}
	return w
}
