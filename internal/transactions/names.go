package transactions

import (
	"strings"

	"github.com/mrz1836/cashin/internal/address"
	"github.com/mrz1836/cashin/internal/optional"
	"github.com/mrz1836/cashin/internal/phone"
)

// Recipient is a known contact of the user.
type Recipient struct {
	DisplayName optional.Value[string]
	PhoneNumber optional.Value[string] // E164
}

// PhoneFormatter turns an E164 number into a display string.
type PhoneFormatter func(e164 string) string

// NameLookup returns a cached display name for an address.
type NameLookup interface {
	NameFor(addr string) (string, bool)
}

// NameLookupFunc adapts a function to NameLookup.
type NameLookupFunc func(addr string) (string, bool)

// NameFor calls f(addr).
func (f NameLookupFunc) NameFor(addr string) (string, bool) {
	return f(addr)
}

// DisplayNumber returns the formatted phone number of the counterparty.
// The explicit number wins over the recipient's number. A number that is
// blank before or after formatting is absent.
func DisplayNumber(e164 optional.Value[string], recipient *Recipient, format PhoneFormatter) optional.Value[string] {
	number := nonEmpty(e164)
	if recipient != nil {
		number = number.Or(nonEmpty(recipient.PhoneNumber))
	}
	n, ok := number.Get()
	if !ok {
		return optional.None[string]()
	}
	if format == nil {
		format = phone.DisplayInternational
	}
	return optional.NonEmpty(strings.TrimSpace(format(n)))
}

// DisplayName picks the name shown for the counterparty. In order: the
// recipient's display name, the cached name, the formatted phone number,
// then the short address form.
func DisplayName(
	recipient *Recipient,
	cachedName optional.Value[string],
	e164 optional.Value[string],
	addr optional.Value[string],
	format PhoneFormatter,
) optional.Value[string] {
	if recipient != nil {
		if name := nonEmpty(recipient.DisplayName); name.IsPresent() {
			return name
		}
	}
	if name := nonEmpty(cachedName); name.IsPresent() {
		return name
	}
	if number := DisplayNumber(e164, recipient, format); number.IsPresent() {
		return number
	}
	if a, ok := nonEmpty(addr).Get(); ok {
		return optional.NonEmpty(address.Short(a))
	}
	return optional.None[string]()
}

func nonEmpty(v optional.Value[string]) optional.Value[string] {
	s, ok := v.Get()
	if !ok || strings.TrimSpace(s) == "" {
		return optional.None[string]()
	}
	return v
}
