package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/cashin/internal/output"
)

func TestTable_Basic(t *testing.T) {
	t.Parallel()
	table := output.NewTable("TX HASH", "PROVIDER")
	table.AddRow("0xabc", "Moonpay")
	table.AddRow("0xdef1234", "Simplex")

	lines := strings.Split(strings.TrimRight(table.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "TX HASH    PROVIDER", lines[0])
	assert.Equal(t, "---------  --------", lines[1])
	assert.Equal(t, "0xabc      Moonpay", lines[2])
	assert.Equal(t, "0xdef1234  Simplex", lines[3])
}

func TestTable_NoHeader(t *testing.T) {
	t.Parallel()
	table := output.NewTable("KEY", "VALUE")
	table.SetNoHeader(true)
	table.AddRow("Names:", "2")
	table.AddRow("Providers:", "10")
	assert.Equal(t, "Names:      2\nProviders:  10\n", table.String())
}

func TestTable_MaxWidthElidesMiddle(t *testing.T) {
	t.Parallel()
	table := output.NewTable("PROVIDER", "LOGO")
	table.SetMaxWidth(1, 11)
	table.AddRow("Moonpay", "https://cdn.example.com/moonpay.png")
	table.AddRow("Ramp", "https://r")

	lines := strings.Split(strings.TrimRight(table.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "PROVIDER  LOGO", lines[0])
	assert.Equal(t, "--------  -----------", lines[1])
	assert.Equal(t, "Moonpay   https…y.png", lines[2])
	assert.Equal(t, "Ramp      https://r", lines[3])

	table.SetMaxWidth(1, 0)
	assert.Contains(t, table.String(), "https://cdn.example.com/moonpay.png")
}

func TestTable_WideCellsAlignByDisplayWidth(t *testing.T) {
	t.Parallel()
	table := output.NewTable("A", "B")
	table.SetNoHeader(true)
	table.AddRow("0x 742d…f44e", "x")
	table.AddRow("0xabc", "y")

	lines := strings.Split(strings.TrimRight(table.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0x 742d…f44e  x", lines[0])
	assert.Equal(t, "0xabc         y", lines[1])
}

func TestTable_RaggedRows(t *testing.T) {
	t.Parallel()
	table := output.NewTable("A")
	table.AddRow("1", "extra")
	table.AddRow()

	out := table.String()
	assert.Contains(t, out, "1  extra")
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 4)
}

func TestTable_Empty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, output.NewTable().Render(&buf))
	assert.Empty(t, buf.String())
}

func TestTable_WriterError(t *testing.T) {
	t.Parallel()
	table := output.NewTable("A")
	table.AddRow("1")
	require.Error(t, table.Render(failingWriter{}))
}

func TestElide(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		in       string
		width    int
		expected string
	}{
		{"fits", "abc", 3, "abc"},
		{"no limit", "abcdef", 0, "abcdef"},
		{"odd keep", "abcdefgh", 5, "ab…gh"},
		{"even keep", "abcdefgh", 4, "ab…h"},
		{"single cell", "abcdef", 1, "…"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, output.Elide(tt.in, tt.width))
		})
	}
}
