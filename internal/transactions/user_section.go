// Package transactions renders the transaction detail screen sections.
package transactions

import (
	"fmt"

	"github.com/mrz1836/cashin/internal/address"
	"github.com/mrz1836/cashin/internal/i18n"
	"github.com/mrz1836/cashin/internal/optional"
	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// Kind is the relationship of the counterparty to the transaction.
type Kind string

// Relationship kinds.
const (
	KindSent      Kind = "sent"
	KindReceived  Kind = "received"
	KindWithdrawn Kind = "withdrawn"
)

// Translation keys used by the user section.
const (
	KeySentTo                 = "sendFlow7:sentTo"
	KeyReceivedFrom           = "sendFlow7:receivedFrom"
	KeyWithdrawnTo            = "sendFlow7:withdrawnTo"
	KeyTransferAddressChanged = "sendFlow7:transferAddressChanged"
	KeyAccountNumberLabel     = "sendFlow7:accountNumberLabel"
)

// AccountNumberLocation is the screen the account number block reports itself on.
const AccountNumberLocation = "TransactionReview"

// labelKeys maps each kind to its section label.
//
//nolint:gochecknoglobals // Fixed lookup table
var labelKeys = map[Kind]string{
	KindSent:      KeySentTo,
	KindReceived:  KeyReceivedFrom,
	KindWithdrawn: KeyWithdrawnTo,
}

// ParseKind parses a relationship kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := labelKeys[k]; !ok {
		return "", cashinerr.WithDetails(cashinerr.ErrInvalidKind, map[string]string{"kind": s})
	}
	return k, nil
}

// LabelKey returns the translation key of the section label for k.
func (k Kind) LabelKey() string {
	return labelKeys[k]
}

// Animator animates layout changes. Calls are fire-and-forget.
type Animator interface {
	EaseInEaseOut()
}

type nopAnimator struct{}

func (nopAnimator) EaseInEaseOut() {}

// Props are the inputs of a UserSection. They are never modified.
type Props struct {
	Kind              Kind
	Address           optional.Value[string]
	AddressHasChanged bool
	PhoneNumber       optional.Value[string] // E164
	Recipient         *Recipient
	Avatar            fmt.Stringer
	// Expandable defaults to true when absent.
	Expandable optional.Value[bool]
}

// UserSection shows who a transaction was sent to or received from,
// with an optional expandable account number block.
type UserSection struct {
	props       Props
	names       NameLookup
	tr          i18n.Translator
	animator    Animator
	formatPhone PhoneFormatter

	expandable bool
	expanded   bool
}

// Option configures a UserSection.
type Option func(*UserSection)

// WithAnimator sets the animator notified on expand and collapse.
func WithAnimator(a Animator) Option {
	return func(u *UserSection) {
		if a != nil {
			u.animator = a
		}
	}
}

// WithPhoneFormatter replaces the phone number formatter.
func WithPhoneFormatter(f PhoneFormatter) Option {
	return func(u *UserSection) {
		if f != nil {
			u.formatPhone = f
		}
	}
}

// NewUserSection creates a user section. names may be nil when no names are cached.
func NewUserSection(props Props, names NameLookup, tr i18n.Translator, opts ...Option) *UserSection {
	if tr == nil {
		tr = i18n.Identity
	}
	if names == nil {
		names = NameLookupFunc(func(string) (string, bool) { return "", false })
	}

	u := &UserSection{
		props:    props,
		names:    names,
		tr:       tr,
		animator: nopAnimator{},
	}
	for _, opt := range opts {
		opt(u)
	}

	u.expandable = props.Expandable.OrElse(true)
	u.expanded = u.expandable && props.AddressHasChanged
	return u
}

// Expanded reports whether the account block is shown.
func (u *UserSection) Expanded() bool {
	return u.expanded
}

// Expandable reports whether the section reacts to Toggle.
func (u *UserSection) Expandable() bool {
	return u.expandable
}

// Toggle flips the expanded state and requests a layout animation.
// It does nothing when the section is not expandable.
func (u *UserSection) Toggle() {
	if !u.expandable {
		return
	}
	u.animator.EaseInEaseOut()
	u.expanded = !u.expanded
}

// cachedName looks up the cached name for the address; a missing address looks up "".
func (u *UserSection) cachedName() optional.Value[string] {
	name, ok := u.names.NameFor(u.props.Address.OrElse(""))
	if !ok {
		return optional.None[string]()
	}
	return optional.NonEmpty(name)
}

// AccountBlock is the expanded account number detail.
type AccountBlock struct {
	Label    string   `json:"label"`
	Address  string   `json:"address"`
	Chunks   []string `json:"chunks"`
	Location string   `json:"location"`
}

// Model is the computed content of a UserSection.
type Model struct {
	Kind          Kind          `json:"kind"`
	Label         string        `json:"label"`
	DisplayName   string        `json:"display_name,omitempty"`
	DisplayNumber string        `json:"display_number,omitempty"`
	Expandable    bool          `json:"expandable"`
	Expanded      bool          `json:"expanded"`
	ChevronOnName bool          `json:"-"`
	Warning       string        `json:"address_changed_warning,omitempty"`
	Account       *AccountBlock `json:"account,omitempty"`
	Avatar        string        `json:"avatar,omitempty"`
}

// Model computes what the section currently shows.
func (u *UserSection) Model() Model {
	p := u.props

	name := DisplayName(p.Recipient, u.cachedName(), p.PhoneNumber, p.Address, u.formatPhone)
	number := DisplayNumber(p.PhoneNumber, p.Recipient, u.formatPhone)

	m := Model{
		Kind:       p.Kind,
		Label:      u.tr.T(p.Kind.LabelKey()),
		Expandable: u.expandable,
		Expanded:   u.expanded,
	}
	m.DisplayName = name.OrElse("")

	// The number line is hidden when it would repeat the name.
	if n, ok := number.Get(); ok && n != m.DisplayName {
		m.DisplayNumber = n
	}
	m.ChevronOnName = m.DisplayNumber == ""

	if p.Avatar != nil {
		m.Avatar = p.Avatar.String()
	}

	if u.expanded {
		if p.AddressHasChanged {
			m.Warning = u.tr.T(KeyTransferAddressChanged)
		}
		addr := address.Checksum(p.Address.OrElse(""))
		m.Account = &AccountBlock{
			Label:    u.tr.T(KeyAccountNumberLabel),
			Address:  addr,
			Chunks:   address.Chunks(addr),
			Location: AccountNumberLocation,
		}
	}
	return m
}
