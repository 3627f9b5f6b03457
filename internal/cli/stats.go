package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/cashin/internal/appstate"
	"github.com/mrz1836/cashin/internal/metrics"
	"github.com/mrz1836/cashin/internal/output"
	"github.com/mrz1836/cashin/internal/persist"
)

// statsCmd summarizes the persisted state.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize persisted state",
	Long: `Show how many providers, transactions and names are stored, where they
are stored, and the persistence counters of this run.

Example:
  cashin stats
  cashin stats -o json`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(statsCmd)
}

// statsReport is the output of the stats command.
type statsReport struct {
	Backend      string           `json:"backend"`
	Path         string           `json:"path"`
	Saved        bool             `json:"saved"`
	PendingWrite bool             `json:"pending_write"`
	Language     string           `json:"language"`
	Providers    int              `json:"providers"`
	Transactions int              `json:"transactions"`
	Names        int              `json:"names"`
	Metrics      metrics.Snapshot `json:"metrics"`
}

func runStats(cmd *cobra.Command, _ []string) error {
	st, err := openState(cmd)
	if err != nil {
		return err
	}

	root := st.GetState()
	report := statsReport{
		Backend:      cfg.GetStorageBackend(),
		Path:         cfg.GetStoragePath(),
		Saved:        stateSaved(),
		PendingWrite: persistor != nil && persistor.Dirty(),
		Language:     catalog.Tag().String(),
		Providers:    len(root.FiatExchanges.ProviderLogos),
		Transactions: len(appstate.TxHashToFeedInfo(root)),
		Names:        len(appstate.AddressToDisplayName(root)),
		Metrics:      metrics.Global.Snapshot(),
	}

	w := cmd.OutOrStdout()
	if isJSON() {
		return writeJSON(w, report)
	}

	table := output.NewTable("KEY", "VALUE")
	table.SetNoHeader(true)
	table.AddRow("Storage:", report.Backend+" ("+report.Path+")")
	table.AddRow("Saved:", yesNo(report.Saved))
	table.AddRow("Language:", report.Language)
	table.AddRow("Providers:", itoa(report.Providers))
	table.AddRow("Transactions:", itoa(report.Transactions))
	table.AddRow("Names:", itoa(report.Names))
	if cfg.IsVerbose() {
		table.AddRow("Restores:", i64toa(report.Metrics.RestoresTotal)+" ("+i64toa(report.Metrics.RestoreErrors)+" failed)")
		table.AddRow("Dispatches:", i64toa(report.Metrics.DispatchesTotal))
		table.AddRow("Pending write:", yesNo(report.PendingWrite))
		if logger != nil && logger.Path() != "" {
			table.AddRow("Log:", logger.Level().String()+" ("+logger.Path()+")")
		}
	}
	return table.Render(w)
}

// stateSaved reports whether anything has been written to the storage path yet.
func stateSaved() bool {
	if cfg.GetStorageBackend() == persist.BackendLevelDB {
		_, err := os.Stat(cfg.GetStoragePath())
		return err == nil
	}
	return persist.NewFileStorage(cfg.GetStoragePath()).Exists()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
