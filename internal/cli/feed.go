package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/cashin/internal/appstate"
	"github.com/mrz1836/cashin/internal/feed"
	"github.com/mrz1836/cashin/internal/fiatexchange"
	"github.com/mrz1836/cashin/internal/output"
)

// feedCmd shows transactions decorated with their providers.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var feedCmd = &cobra.Command{
	Use:   "feed [tx-hash...]",
	Short: "Show transactions with their providers",
	Long: `Show transactions decorated with the name and icon of their provider.

Without arguments every transaction with a known provider is listed.
Given hashes are listed in order, including those without a provider.

Example:
  cashin feed
  cashin feed 0x88df...944b 0x1234...abcd -o json`,
	RunE: runFeed,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(feedCmd)
}

func runFeed(cmd *cobra.Command, args []string) error {
	hashes := make([]string, 0, len(args))
	for _, arg := range args {
		hash, err := fiatexchange.NormalizeTxHash(arg)
		if err != nil {
			return err
		}
		hashes = append(hashes, hash)
	}

	st, err := openState(cmd)
	if err != nil {
		return err
	}

	info := appstate.TxHashToFeedInfo(st.GetState())
	if len(hashes) == 0 {
		return displayItems(cmd, feed.All(info))
	}
	return displayFeed(cmd, hashes, info)
}

// displayFeed prints the feed items of hashes.
func displayFeed(cmd *cobra.Command, hashes []string, info fiatexchange.TxHashToDisplayInfo) error {
	return displayItems(cmd, feed.Decorate(hashes, info))
}

func displayItems(cmd *cobra.Command, items []feed.Item) error {
	w := cmd.OutOrStdout()
	if isJSON() {
		return writeJSON(w, items)
	}

	if len(items) == 0 {
		outln(w, "No transactions with a known provider.")
		return nil
	}

	table := output.NewTable("TX HASH", "PROVIDER", "ICON")
	limitURLColumn(table, 2)
	for _, item := range items {
		icon := ""
		if item.Provider != nil {
			icon = item.Provider.Icon
		}
		table.AddRow(item.TxHash, item.ProviderName("-"), icon)
	}
	return table.Render(w)
}
