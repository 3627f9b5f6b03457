package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/cashin/internal/currency"
	"github.com/mrz1836/cashin/internal/fiatexchange"
	"github.com/mrz1836/cashin/internal/output"
	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// txCmd is the parent command for transaction operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Associate transactions with providers",
	Long:  `Record which fiat exchange provider a transaction came from and review transaction counterparties.`,
}

// txAssignCmd marks a transaction as a deposit.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var txAssignCmd = &cobra.Command{
	Use:   "assign <tx-hash>",
	Short: "Mark a transaction as a CELO or cUSD deposit",
	Long: `Mark a transaction as a deposit of the given currency.

The transaction is shown as "CELO Deposit" or "cUSD Deposit" in the
active language. A transaction that already has a provider keeps it.

Example:
  cashin tx assign 0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b --currency cUSD`,
	Args: cobra.ExactArgs(1),
	RunE: runTxAssign,
}

// txProvidersCmd assigns providers to many transactions.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var txProvidersCmd = &cobra.Command{
	Use:   "providers <tx-hash>=<provider>...",
	Short: "Assign providers to transactions",
	Long: `Assign registered providers to transactions.

Providers without a registered logo are skipped with a warning, or
rejected with --strict. An existing assignment is replaced.

Example:
  cashin tx providers 0x88df...944b=Moonpay 0x1234...abcd=Simplex`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTxProviders,
}

// txGetCmd shows the provider of transactions.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var txGetCmd = &cobra.Command{
	Use:   "get <tx-hash>",
	Short: "Show the provider of a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxGet,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	txCurrency string
	txStrict   bool
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(txCmd)
	txCmd.AddCommand(txAssignCmd)
	txCmd.AddCommand(txProvidersCmd)
	txCmd.AddCommand(txGetCmd)

	txAssignCmd.Flags().StringVarP(&txCurrency, "currency", "c", string(currency.Dollar), "deposit currency: cGLD (CELO) or cUSD")
	txProvidersCmd.Flags().BoolVar(&txStrict, "strict", false, "fail when a provider has no registered logo")
}

// txProviderResult is the provider shown for a transaction.
type txProviderResult struct {
	TxHash   string                    `json:"tx_hash"`
	Provider *fiatexchange.DisplayInfo `json:"provider"`
}

func runTxAssign(cmd *cobra.Command, args []string) error {
	hash, err := fiatexchange.NormalizeTxHash(args[0])
	if err != nil {
		return err
	}
	code, err := currency.Parse(txCurrency)
	if err != nil {
		return err
	}

	st, err := openState(cmd)
	if err != nil {
		return err
	}

	before := st.GetState()
	root := st.Dispatch(fiatexchange.AssignProviderToTxHash{TxHash: hash, CurrencyCode: code})
	if root == before {
		logger.Debug("tx %s already has a provider", hash)
	}

	return displayTxProvider(cmd, hash, root.FiatExchanges)
}

func runTxGet(cmd *cobra.Command, args []string) error {
	hash, err := fiatexchange.NormalizeTxHash(args[0])
	if err != nil {
		return err
	}

	st, err := openState(cmd)
	if err != nil {
		return err
	}
	return displayTxProvider(cmd, hash, st.GetState().FiatExchanges)
}

func runTxProviders(cmd *cobra.Command, args []string) error {
	txHashes, err := parseTxProviderArgs(args)
	if err != nil {
		return err
	}

	st, err := openState(cmd)
	if err != nil {
		return err
	}

	state := st.GetState().FiatExchanges
	if unknown := fiatexchange.UnknownProviders(state, txHashes); len(unknown) > 0 {
		known := state.ProviderNames()
		if txStrict {
			return cashinerr.WithSuggestion(
				cashinerr.WithDetails(cashinerr.ErrProviderNotFound, map[string]string{
					"provider": unknown[0],
				}),
				suggestionFor(unknown[0], known),
			)
		}
		stderr := cmd.ErrOrStderr()
		for _, name := range unknown {
			msg := "skipping provider without a logo: " + name
			if hint := didYouMean(name, known); hint != "" {
				msg += " (" + hint + ")"
			}
			output.Warn(stderr, msg)
		}
	}

	root := st.Dispatch(fiatexchange.SetProvidersForTxHashes{TxHashes: txHashes})

	hashes := make([]string, 0, len(txHashes))
	for h := range txHashes {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)
	return displayFeed(cmd, hashes, root.FiatExchanges.TxHashToProvider)
}

// suggestionFor returns a did-you-mean hint, or a pointer to the provider list.
func suggestionFor(name string, known []string) string {
	if hint := didYouMean(name, known); hint != "" {
		return hint
	}
	return "register it with 'cashin providers set --merge " + name + "=<logo-url>'"
}

// parseTxProviderArgs parses hash=provider arguments.
// An empty provider means the transaction has no known provider.
func parseTxProviderArgs(args []string) (map[string]*string, error) {
	txHashes := make(map[string]*string, len(args))
	for _, arg := range args {
		rawHash, provider, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, cashinerr.WithDetails(cashinerr.ErrInvalidInput, map[string]string{
				"argument": arg,
				"expected": "tx-hash=provider",
			})
		}
		hash, err := fiatexchange.NormalizeTxHash(rawHash)
		if err != nil {
			return nil, err
		}
		provider = strings.TrimSpace(provider)
		if provider == "" {
			txHashes[hash] = nil
			continue
		}
		txHashes[hash] = &provider
	}
	return txHashes, nil
}

func displayTxProvider(cmd *cobra.Command, hash string, state *fiatexchange.State) error {
	result := txProviderResult{TxHash: hash}
	if info, ok := state.ProviderFor(hash); ok {
		result.Provider = &info
	}

	w := cmd.OutOrStdout()
	if isJSON() {
		return writeJSON(w, result)
	}

	if result.Provider == nil {
		out(w, "%s has no known provider\n", hash)
		return nil
	}
	out(w, "%s  %s\n", hash, result.Provider.Name)
	if cfg.IsVerbose() {
		out(w, "  icon: %s\n", result.Provider.Icon)
	}
	return nil
}
