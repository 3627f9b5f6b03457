package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/mrz1836/cashin/internal/address"
	"github.com/mrz1836/cashin/internal/appstate"
	"github.com/mrz1836/cashin/internal/identity"
	"github.com/mrz1836/cashin/internal/output"
)

// identityCmd is the parent command for cached display names.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Manage cached display names",
	Long:  `Cache display names for addresses so transactions show a name instead of an address.`,
}

// identitySetCmd caches a name for an address.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var identitySetCmd = &cobra.Command{
	Use:   "set <address> <name>",
	Short: "Cache a display name for an address",
	Long: `Cache a display name for an address.

Example:
  cashin identity set 0x742d35cc6634c0532925a3b844bc454e4438f44e "Alice"`,
	Args: cobra.ExactArgs(2),
	RunE: runIdentitySet,
}

// identityListCmd lists the cached names.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var identityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached display names",
	Args:  cobra.NoArgs,
	RunE:  runIdentityList,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var identityImage string

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(identityCmd)
	identityCmd.AddCommand(identitySetCmd)
	identityCmd.AddCommand(identityListCmd)

	identitySetCmd.Flags().StringVar(&identityImage, "image", "", "avatar image url")
}

func runIdentitySet(cmd *cobra.Command, args []string) error {
	if err := address.Validate(args[0]); err != nil {
		return err
	}

	st, err := openState(cmd)
	if err != nil {
		return err
	}

	key := address.Normalize(args[0])
	root := st.Dispatch(identity.SetDisplayNames{Names: map[string]identity.NameEntry{
		key: {Name: args[1], ImageURL: identityImage},
	}})
	logger.Debug("cached name for %s", key)

	return displayIdentities(cmd, root)
}

func runIdentityList(cmd *cobra.Command, _ []string) error {
	st, err := openState(cmd)
	if err != nil {
		return err
	}
	return displayIdentities(cmd, st.GetState())
}

// identityEntry is a row of the identity listing.
type identityEntry struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
}

func displayIdentities(cmd *cobra.Command, root *appstate.Root) error {
	names := appstate.AddressToDisplayName(root)

	addrs := make([]string, 0, len(names))
	for a := range names {
		addrs = append(addrs, a)
	}
	sort.Strings(addrs)

	entries := make([]identityEntry, 0, len(addrs))
	for _, a := range addrs {
		entries = append(entries, identityEntry{Address: a, Name: names[a].Name, ImageURL: names[a].ImageURL})
	}

	w := cmd.OutOrStdout()
	if isJSON() {
		return writeJSON(w, entries)
	}

	if len(entries) == 0 {
		outln(w, "No cached names.")
		return nil
	}

	table := output.NewTable("ADDRESS", "NAME")
	for _, e := range entries {
		display := e.Address
		if address.IsValid(e.Address) {
			display = address.Short(e.Address)
		}
		table.AddRow(display, e.Name)
	}
	return table.Render(w)
}
