package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/cashin/internal/address"
	"github.com/mrz1836/cashin/internal/optional"
	"github.com/mrz1836/cashin/internal/output"
	"github.com/mrz1836/cashin/internal/transactions"
	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// txShowCmd renders the counterparty section of a transaction.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var txShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the counterparty of a transaction",
	Long: `Render who a transaction was sent to, received from, or withdrawn to.

The name shown is, in order: the recipient name, the cached name of the
address, the formatted phone number, then the shortened address.

With --address-changed the account number block is expanded and a warning
is shown. --toggle flips the block as a user tap would.

Example:
  cashin tx show --kind sent --address 0x742d35cc6634c0532925a3b844bc454e4438f44e
  cashin tx show --kind received --phone +14155552671 --name Alice
  cashin tx show --kind withdrawn --address 0x742d... --address-changed -o json`,
	Args: cobra.NoArgs,
	RunE: runTxShow,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	showKind           string
	showAddress        string
	showAddressChanged bool
	showPhone          string
	showName           string
	showRecipientPhone string
	showAvatar         string
	showNotExpandable  bool
	showToggle         bool
)

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	txCmd.AddCommand(txShowCmd)

	f := txShowCmd.Flags()
	f.StringVarP(&showKind, "kind", "k", string(transactions.KindSent), "transaction kind: sent, received, withdrawn")
	f.StringVarP(&showAddress, "address", "a", "", "counterparty address")
	f.BoolVar(&showAddressChanged, "address-changed", false, "the counterparty address differs from the last transfer")
	f.StringVar(&showPhone, "phone", "", "counterparty phone number in E164 format")
	f.StringVar(&showName, "name", "", "recipient display name")
	f.StringVar(&showRecipientPhone, "recipient-phone", "", "recipient phone number in E164 format")
	f.StringVar(&showAvatar, "avatar", "", "text shown as the counterparty avatar")
	f.BoolVar(&showNotExpandable, "not-expandable", false, "never show the account number block")
	f.BoolVar(&showToggle, "toggle", false, "toggle the account number block once")
}

// textAvatar renders an avatar as plain text.
type textAvatar string

func (a textAvatar) String() string { return string(a) }

// loggingAnimator records layout animation requests in the debug log.
type loggingAnimator struct{}

func (loggingAnimator) EaseInEaseOut() {
	logger.Debug("layout animation: ease in ease out")
}

func runTxShow(cmd *cobra.Command, _ []string) error {
	kind, err := transactions.ParseKind(showKind)
	if err != nil {
		return err
	}
	if showAddress != "" {
		if err := address.Validate(showAddress); err != nil {
			return err
		}
	}
	if showAddressChanged && showAddress == "" {
		return cashinerr.WithSuggestion(cashinerr.ErrInvalidInput, "--address-changed needs --address")
	}

	st, err := openState(cmd)
	if err != nil {
		return err
	}

	props := transactions.Props{
		Kind:              kind,
		Address:           optional.NonEmpty(showAddress),
		AddressHasChanged: showAddressChanged,
		PhoneNumber:       optional.NonEmpty(showPhone),
	}
	if showName != "" || showRecipientPhone != "" {
		props.Recipient = &transactions.Recipient{
			DisplayName: optional.NonEmpty(showName),
			PhoneNumber: optional.NonEmpty(showRecipientPhone),
		}
	}
	if showAvatar != "" {
		props.Avatar = textAvatar(showAvatar)
	}
	if showNotExpandable {
		props.Expandable = optional.Some(false)
	}

	section := transactions.NewUserSection(props, st.GetState().Identity, catalog,
		transactions.WithAnimator(loggingAnimator{}))
	if showToggle {
		section.Toggle()
	}

	w := cmd.OutOrStdout()
	if isJSON() {
		return writeJSON(w, section.Model())
	}
	return section.Render(output.ColorWriter(w, cfg.Output.Color))
}
