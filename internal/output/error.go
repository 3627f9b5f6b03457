package output

import (
	"fmt"
	"io"
	"slices"
	"strings"

	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// ErrorOutput is the JSON document printed for a failed command.
type ErrorOutput struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail holds the printable fields of an error.
type ErrorDetail struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	ExitCode   int               `json:"exit_code"`
}

// Describe extracts the printable fields of err. Plain errors map to GENERAL_ERROR.
func Describe(err error) ErrorDetail {
	d := ErrorDetail{
		Code:     cashinerr.Code(err),
		Message:  err.Error(),
		ExitCode: cashinerr.ExitCode(err),
	}

	var ce *cashinerr.CashinError
	if cashinerr.As(err, &ce) {
		d.Message = ce.Message
		d.Details = ce.Details
		d.Suggestion = ce.Suggestion
	}
	return d
}

// FormatError writes err to w as JSON or as text lines.
func FormatError(w io.Writer, err error, format Format) error {
	if err == nil {
		return nil
	}

	d := Describe(err)
	if format == FormatJSON {
		return WriteJSON(w, ErrorOutput{Error: d})
	}

	_, writeErr := io.WriteString(w, d.text())
	return writeErr
}

// text lists the message, the details by key, then the suggestion.
func (d ErrorDetail) text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n", d.Message)

	if len(d.Details) > 0 {
		sb.WriteString("\nDetails:\n")
		keys := make([]string, 0, len(d.Details))
		for k := range d.Details {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "  %s: %s\n", k, d.Details[k])
		}
	}

	if d.Suggestion != "" {
		fmt.Fprintf(&sb, "\nSuggestion: %s\n", d.Suggestion)
	}
	return sb.String()
}

// FormatSuccess writes a success message, as a status document in JSON mode.
func FormatSuccess(w io.Writer, message string, format Format) error {
	if format == FormatJSON {
		return WriteJSON(w, map[string]string{"status": "success", "message": message})
	}
	_, err := fmt.Fprintln(w, message)
	return err
}
