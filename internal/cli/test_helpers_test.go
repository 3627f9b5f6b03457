package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/cashin/internal/config"
	"github.com/mrz1836/cashin/internal/i18n"
	"github.com/mrz1836/cashin/internal/output"
)

const (
	testHash1   = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"
	testHash2   = "0x1111111111111111111111111111111111111111111111111111111111111111"
	testAddress = "0x742d35cc6634c0532925a3b844bc454e4438f44e"
)

// saveGlobals saves all package-level globals and returns a restore function.
func saveGlobals(t *testing.T) func() {
	t.Helper()
	origCfg, origLogger, origFormatter, origCatalog := cfg, logger, formatter, catalog
	origHomeDir, origOutputFormat, origLanguage, origVerbose := homeDir, outputFormat, language, verbose
	origStore, origPersistor := appStore, persistor
	return func() {
		cfg, logger, formatter, catalog = origCfg, origLogger, origFormatter, origCatalog
		homeDir, outputFormat, language, verbose = origHomeDir, origOutputFormat, origLanguage, origVerbose
		appStore, persistor = origStore, origPersistor
	}
}

// setupTestEnv points the CLI at a fresh home directory with file storage
// that saves every change.
func setupTestEnv(t *testing.T) (string, func()) {
	t.Helper()
	restore := saveGlobals(t)

	tmpDir := t.TempDir()
	cfg = config.Defaults()
	cfg.Home = tmpDir
	cfg.Logging.File = ""
	cfg.Storage.FlushInterval = "0"
	logger = config.NullLogger()
	useFormat(output.FormatText)

	var err error
	catalog, err = i18n.NewCatalog("en-US")
	require.NoError(t, err)
	appStore, persistor = nil, nil

	return tmpDir, func() {
		_ = closeState(nil)
		restore()
	}
}

// useFormat switches command output between text and JSON.
func useFormat(f output.Format) {
	formatter = output.NewFormatter(f)
}

// newTestCmd returns a command capturing stdout and stderr.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	return cmd, &stdout, &stderr
}
