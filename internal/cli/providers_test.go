package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/cashin/internal/output"
	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

func TestParseLogoArgs(t *testing.T) {
	t.Parallel()

	logos, err := parseLogoArgs([]string{"Moonpay=https://x/moonpay.png", " Ramp = https://x/ramp.png "})
	require.NoError(t, err)
	assert.Equal(t, "https://x/moonpay.png", logos["Moonpay"])
	assert.Equal(t, "https://x/ramp.png", logos["Ramp"])

	for _, bad := range []string{"Moonpay", "=https://x", "Moonpay="} {
		_, err := parseLogoArgs([]string{bad})
		require.ErrorIs(t, err, cashinerr.ErrInvalidProviderLogo, bad)
	}
}

func TestReadLogoFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "logos.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("Moonpay: https://x/moonpay.png\nSimplex: https://x/simplex.png\n"), 0o600))
	logos, err := readLogoFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, logos, 2)

	jsonPath := filepath.Join(dir, "logos.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"Ramp": "https://x/ramp.png"}`), 0o600))
	logos, err = readLogoFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "https://x/ramp.png", logos["Ramp"])

	emptyLogo := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyLogo, []byte("Moonpay: \"\"\n"), 0o600))
	_, err = readLogoFile(emptyLogo)
	require.ErrorIs(t, err, cashinerr.ErrInvalidProviderLogo)

	_, err = readLogoFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestRunProvidersSetAndList(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()
	defer func() { providersFile, providersMerge = "", false }()

	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runProvidersSet(cmd, []string{"Simplex=https://x/simplex.png", "Moonpay=https://x/moonpay.png"}))
	assert.Contains(t, stdout.String(), "PROVIDER")
	assert.Less(t, indexOf(stdout.String(), "Moonpay"), indexOf(stdout.String(), "Simplex"), "providers are sorted")

	// Without --merge the table is replaced.
	cmd, _, _ = newTestCmd()
	require.NoError(t, runProvidersSet(cmd, []string{"Ramp=https://x/ramp.png"}))
	assert.Equal(t, []string{"Ramp"}, appStore.GetState().FiatExchanges.ProviderNames())

	providersMerge = true
	cmd, _, _ = newTestCmd()
	require.NoError(t, runProvidersSet(cmd, []string{"Moonpay=https://x/moonpay.png"}))
	assert.Equal(t, []string{"Moonpay", "Ramp"}, appStore.GetState().FiatExchanges.ProviderNames())

	useFormat(output.FormatJSON)
	cmd, stdout, _ = newTestCmd()
	require.NoError(t, runProvidersList(cmd, nil))

	var entries []providerEntry
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, providerEntry{Name: "Moonpay", Logo: "https://x/moonpay.png"}, entries[0])
}

func TestRunProvidersList_ElidesLongLogos(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()

	logo := "https://firebasestorage.example.com/v0/b/providers/o/images%2Fmoonpay-logo.png?alt=media"
	cmd, _, _ := newTestCmd()
	require.NoError(t, runProvidersSet(cmd, []string{"Moonpay=" + logo}))

	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runProvidersList(cmd, nil))
	assert.NotContains(t, stdout.String(), logo)
	assert.Contains(t, stdout.String(), "https://firebasestorage.")
	assert.Contains(t, stdout.String(), "…")

	cfg.Output.Verbose = true
	cmd, stdout, _ = newTestCmd()
	require.NoError(t, runProvidersList(cmd, nil))
	assert.Contains(t, stdout.String(), logo)
}

func TestRunProvidersSet_RequiresInput(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()

	cmd, _, _ := newTestCmd()
	err := runProvidersSet(cmd, nil)
	require.ErrorIs(t, err, cashinerr.ErrInvalidInput)
	assert.Nil(t, appStore, "state is not opened for invalid input")
}

func TestRunProvidersList_Empty(t *testing.T) {
	_, testCleanup := setupTestEnv(t)
	defer testCleanup()

	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runProvidersList(cmd, nil))
	assert.Equal(t, "No providers registered.\n", stdout.String())
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
