package output_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/cashin/internal/output"
)

type providerRow struct {
	TxHash   string `json:"tx_hash"`
	Provider string `json:"provider"`
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, output.WriteJSON(&buf, providerRow{TxHash: "0xabc", Provider: "Moonpay"}))

	var result providerRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "Moonpay", result.Provider)
	assert.Contains(t, buf.String(), "\n  \"tx_hash\"", "JSON output is indented")

	require.Error(t, output.WriteJSON(failingWriter{}, result))
}

func TestFormatter(t *testing.T) {
	t.Parallel()
	f := output.NewFormatter(output.FormatText)
	assert.Equal(t, output.FormatText, f.Format())
	assert.False(t, f.IsJSON())
	assert.True(t, output.NewFormatter(output.FormatJSON).IsJSON())
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]output.Format{
		"json":   output.FormatJSON,
		" JSON ": output.FormatJSON,
		"text":   output.FormatText,
		"Text":   output.FormatText,
		"auto":   output.FormatAuto,
		"yaml":   output.FormatAuto,
		"":       output.FormatAuto,
	}
	for input, expected := range tests {
		assert.Equal(t, expected, output.ParseFormat(input), input)
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.Equal(t, output.FormatText, output.DetectFormat(&buf, output.FormatText))
	assert.Equal(t, output.FormatJSON, output.DetectFormat(&buf, output.FormatJSON))
	assert.Equal(t, output.FormatJSON, output.DetectFormat(&buf, output.FormatAuto), "non-TTY defaults to JSON")
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.False(t, output.IsTerminal(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.False(t, output.IsTerminal(f), "regular files are not terminals")
}

func TestColorWriter(t *testing.T) {
	t.Parallel()
	assert.Equal(t, os.Stdout, output.ColorWriter(os.Stdout, output.ColorAuto))
	assert.Equal(t, os.Stdout, output.ColorWriter(os.Stdout, output.ColorAlways))

	plain := output.ColorWriter(os.Stdout, "NEVER")
	_, isFile := plain.(*os.File)
	assert.False(t, isFile)
	assert.False(t, output.IsTerminal(plain))

	var buf bytes.Buffer
	w := output.ColorWriter(&buf, output.ColorNever)
	_, err := w.Write([]byte("through"))
	require.NoError(t, err)
	assert.Equal(t, "through", buf.String())
}
