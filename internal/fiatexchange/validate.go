package fiatexchange

import (
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// ValidateTxHash checks that s is a 0x-prefixed 32-byte hex transaction hash.
func ValidateTxHash(s string) error {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return cashinerr.WithDetails(cashinerr.ErrInvalidTxHash, map[string]string{
			"hash": s,
		})
	}
	return nil
}

// NormalizeTxHash returns the lowercase 0x form of a valid hash.
func NormalizeTxHash(s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := ValidateTxHash(s); err != nil {
		return "", err
	}
	return common.HexToHash(s).Hex(), nil
}

// UnknownProviders returns the distinct provider names in txHashes that
// SetProvidersForTxHashes would skip because they have no logo, sorted.
func UnknownProviders(state *State, txHashes map[string]*string) []string {
	seen := make(map[string]struct{})
	for _, provider := range txHashes {
		if provider == nil || *provider == "" {
			continue
		}
		if _, ok := state.LogoFor(*provider); ok {
			continue
		}
		seen[*provider] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProviderNames returns the registered provider names, sorted.
func (s *State) ProviderNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.ProviderLogos))
	for name := range s.ProviderLogos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
