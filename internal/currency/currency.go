// Package currency defines the stable and native currency codes handled by cashin.
package currency

import (
	"strings"

	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// Code is a currency code as carried on transactions.
type Code string

// Supported currency codes.
const (
	Celo   Code = "cGLD"
	Dollar Code = "cUSD"
)

// Parse parses a currency code or one of its common aliases.
func Parse(s string) (Code, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cgld", "celo", "gold":
		return Celo, nil
	case "cusd", "dollar", "usd":
		return Dollar, nil
	default:
		return "", cashinerr.WithDetails(cashinerr.ErrUnknownCurrency, map[string]string{"currency": s})
	}
}

// String returns the currency code.
func (c Code) String() string {
	return string(c)
}
