package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mrz1836/cashin/internal/output"
)

// urlColumnWidth bounds logo and icon URL columns unless --verbose is set.
const urlColumnWidth = 48

// out is a helper for CLI output that ignores write errors (standard pattern for CLI tools).
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func out(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// outln is a helper for CLI output with newline.
//
//nolint:errcheck // CLI output writes to stdout are intentionally unchecked
func outln(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}

// writeJSON encodes the value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	return output.WriteJSON(w, v)
}

// currentFormat returns the output format of this run, text before initGlobals.
func currentFormat() output.Format {
	if formatter == nil {
		return output.FormatText
	}
	return formatter.Format()
}

// isJSON reports whether command output should be JSON.
func isJSON() bool {
	return currentFormat() == output.FormatJSON
}

// limitURLColumn elides long URLs in column col.
func limitURLColumn(table *output.Table, col int) {
	if cfg != nil && cfg.IsVerbose() {
		return
	}
	table.SetMaxWidth(col, urlColumnWidth)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func i64toa(n int64) string {
	return strconv.FormatInt(n, 10)
}
