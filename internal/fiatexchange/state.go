// Package fiatexchange tracks which fiat exchange provider is tied to a transaction.
//
// The state maps transaction hashes to the display name and icon of the
// provider that produced them, so a transaction feed can decorate entries.
// It is only changed through Reducer.Reduce.
package fiatexchange

// Namespace is the key under which this state is persisted and restored.
const Namespace = "fiatExchanges"

// DepositIconURL is the icon used for deposits assigned through AssignProviderToTxHash.
const DepositIconURL = "https://firebasestorage.googleapis.com/v0/b/celo-mobile-alfajores.appspot.com/o/images%2Fcelo.jpg?alt=media"

// Translation keys for deposit names.
const (
	KeyCeloDeposit = "fiatExchangeFlow:celoDeposit"
	KeyCUSDDeposit = "fiatExchangeFlow:cUsdDeposit"
)

// ProviderLogos maps a provider name to its icon URL.
type ProviderLogos map[string]string

// DisplayInfo is the name and icon shown for the provider of a transaction.
type DisplayInfo struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// TxHashToDisplayInfo maps a transaction hash to its provider display info.
// A hash without an entry has no provider.
type TxHashToDisplayInfo map[string]DisplayInfo

// State is the persisted provider association state.
type State struct {
	TxHashToProvider TxHashToDisplayInfo `json:"txHashToProvider"`
	ProviderLogos    ProviderLogos       `json:"providerLogos"`
}

// InitialState returns an empty state.
func InitialState() *State {
	return &State{
		TxHashToProvider: TxHashToDisplayInfo{},
		ProviderLogos:    ProviderLogos{},
	}
}

// ProviderFor returns the display info assigned to txHash.
func (s *State) ProviderFor(txHash string) (DisplayInfo, bool) {
	if s == nil {
		return DisplayInfo{}, false
	}
	info, ok := s.TxHashToProvider[txHash]
	return info, ok
}

// LogoFor returns the icon URL registered for provider.
func (s *State) LogoFor(provider string) (string, bool) {
	if s == nil {
		return "", false
	}
	icon, ok := s.ProviderLogos[provider]
	return icon, ok && icon != ""
}

// with returns a shallow copy of s; callers replace the fields they change.
func (s *State) with() *State {
	next := *s
	return &next
}

func (m TxHashToDisplayInfo) clone(extra int) TxHashToDisplayInfo {
	out := make(TxHashToDisplayInfo, len(m)+extra)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// clone copies m. A nil map stays nil.
func (m ProviderLogos) clone() ProviderLogos {
	if m == nil {
		return nil
	}
	out := make(ProviderLogos, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
