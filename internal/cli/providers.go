package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/cashin/internal/appstate"
	"github.com/mrz1836/cashin/internal/fiatexchange"
	"github.com/mrz1836/cashin/internal/output"
	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// providersCmd is the parent command for provider logo operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Manage fiat exchange providers",
	Long:  `Register fiat exchange providers and the logos shown next to their transactions.`,
}

// providersSetCmd replaces the provider logo table.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var providersSetCmd = &cobra.Command{
	Use:   "set [name=logo-url...]",
	Short: "Set provider logos",
	Long: `Replace the provider logo table.

Logos can be given as name=url arguments, read from a YAML or JSON file
mapping names to urls, or both. With --merge the given logos are added to
the registered ones instead of replacing them.

Only providers with a logo can be assigned to transactions.

Example:
  cashin providers set Moonpay=https://example.com/moonpay.png Simplex=https://example.com/simplex.png
  cashin providers set --file logos.yaml
  cashin providers set --merge Ramp=https://example.com/ramp.png`,
	RunE: runProvidersSet,
}

// providersListCmd lists the registered providers.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered providers",
	Long: `List the registered providers and their logos.

Example:
  cashin providers list
  cashin providers list -o json`,
	Args: cobra.NoArgs,
	RunE: runProvidersList,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	providersFile  string
	providersMerge bool
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(providersCmd)
	providersCmd.AddCommand(providersSetCmd)
	providersCmd.AddCommand(providersListCmd)

	providersSetCmd.Flags().StringVarP(&providersFile, "file", "f", "", "YAML or JSON file mapping provider names to logo urls")
	providersSetCmd.Flags().BoolVar(&providersMerge, "merge", false, "add to the registered logos instead of replacing them")
}

func runProvidersSet(cmd *cobra.Command, args []string) error {
	logos := fiatexchange.ProviderLogos{}

	if providersFile != "" {
		fromFile, err := readLogoFile(providersFile)
		if err != nil {
			return err
		}
		for name, logo := range fromFile {
			logos[name] = logo
		}
	}

	fromArgs, err := parseLogoArgs(args)
	if err != nil {
		return err
	}
	for name, logo := range fromArgs {
		logos[name] = logo
	}

	if len(logos) == 0 && !providersMerge && providersFile == "" {
		return cashinerr.WithSuggestion(cashinerr.ErrInvalidInput,
			"pass name=url arguments or --file; an empty table would unregister every provider")
	}

	st, err := openState(cmd)
	if err != nil {
		return err
	}

	if providersMerge {
		merged := fiatexchange.ProviderLogos{}
		for name, logo := range st.GetState().FiatExchanges.ProviderLogos {
			merged[name] = logo
		}
		for name, logo := range logos {
			merged[name] = logo
		}
		logos = merged
	}

	root := st.Dispatch(fiatexchange.SetProviderLogos{Logos: logos})
	logger.Debug("provider logos set: %d providers", len(logos))

	return displayProviders(cmd, root)
}

func runProvidersList(cmd *cobra.Command, _ []string) error {
	st, err := openState(cmd)
	if err != nil {
		return err
	}
	return displayProviders(cmd, st.GetState())
}

// providerEntry is a row of the provider listing.
type providerEntry struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

func displayProviders(cmd *cobra.Command, root *appstate.Root) error {
	state := root.FiatExchanges
	names := state.ProviderNames()

	entries := make([]providerEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, providerEntry{Name: name, Logo: state.ProviderLogos[name]})
	}

	w := cmd.OutOrStdout()
	if isJSON() {
		return writeJSON(w, entries)
	}

	if len(entries) == 0 {
		outln(w, "No providers registered.")
		return nil
	}

	table := output.NewTable("PROVIDER", "LOGO")
	limitURLColumn(table, 1)
	for _, e := range entries {
		table.AddRow(e.Name, e.Logo)
	}
	return table.Render(w)
}

// parseLogoArgs parses name=url arguments.
func parseLogoArgs(args []string) (fiatexchange.ProviderLogos, error) {
	logos := fiatexchange.ProviderLogos{}
	for _, arg := range args {
		name, logo, ok := strings.Cut(arg, "=")
		name, logo = strings.TrimSpace(name), strings.TrimSpace(logo)
		if !ok || name == "" || logo == "" {
			return nil, cashinerr.WithDetails(cashinerr.ErrInvalidProviderLogo, map[string]string{
				"argument": arg,
				"expected": "name=logo-url",
			})
		}
		logos[name] = logo
	}
	return logos, nil
}

// readLogoFile reads a provider logo table from a YAML or JSON file.
func readLogoFile(path string) (fiatexchange.ProviderLogos, error) {
	// #nosec G304 -- path is provided by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cashinerr.Wrap(err, "reading %s", path)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, cashinerr.WithDetails(cashinerr.ErrInvalidProviderLogo, map[string]string{
			"file":   path,
			"reason": err.Error(),
		})
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	logos := fiatexchange.ProviderLogos{}
	for _, name := range names {
		logo := strings.TrimSpace(raw[name])
		if strings.TrimSpace(name) == "" || logo == "" {
			return nil, cashinerr.WithDetails(cashinerr.ErrInvalidProviderLogo, map[string]string{
				"file":     path,
				"provider": name,
				"reason":   fmt.Sprintf("provider %q has no logo url", name),
			})
		}
		logos[strings.TrimSpace(name)] = logo
	}
	return logos, nil
}
