package fiatexchange

import (
	"encoding/json"

	"github.com/mrz1836/cashin/internal/currency"
	"github.com/mrz1836/cashin/internal/i18n"
	"github.com/mrz1836/cashin/internal/store"
)

// Reducer applies actions to State.
type Reducer struct {
	tr i18n.Translator
}

// NewReducer creates a reducer that names deposits through tr.
func NewReducer(tr i18n.Translator) *Reducer {
	if tr == nil {
		tr = i18n.Identity
	}
	return &Reducer{tr: tr}
}

// Reduce returns the state after action. A nil state is treated as InitialState.
// The input is never mutated; when nothing changes the input pointer is returned.
func (r *Reducer) Reduce(state *State, action store.Action) *State {
	if state == nil {
		state = InitialState()
	}

	switch a := action.(type) {
	case store.Rehydrate:
		return rehydrate(state, a)
	case SetProviderLogos:
		next := state.with()
		next.ProviderLogos = a.Logos.clone()
		return next
	case AssignProviderToTxHash:
		return r.assignDeposit(state, a)
	case SetProvidersForTxHashes:
		return setProviders(state, a)
	default:
		return state
	}
}

// assignDeposit never replaces an existing assignment.
func (r *Reducer) assignDeposit(state *State, a AssignProviderToTxHash) *State {
	if _, ok := state.TxHashToProvider[a.TxHash]; ok {
		return state
	}

	nameKey := KeyCUSDDeposit
	if a.CurrencyCode == currency.Celo {
		nameKey = KeyCeloDeposit
	}

	next := state.with()
	next.TxHashToProvider = state.TxHashToProvider.clone(1)
	next.TxHashToProvider[a.TxHash] = DisplayInfo{
		Name: r.tr.T(nameKey),
		Icon: DepositIconURL,
	}
	return next
}

// setProviders overwrites existing assignments for hashes whose provider has a logo.
func setProviders(state *State, a SetProvidersForTxHashes) *State {
	staged := make(TxHashToDisplayInfo)
	for txHash, provider := range a.TxHashes {
		if provider == nil || *provider == "" {
			continue
		}
		icon, ok := state.LogoFor(*provider)
		if !ok {
			continue
		}
		staged[txHash] = DisplayInfo{Name: *provider, Icon: icon}
	}

	if len(staged) == 0 {
		return state
	}

	next := state.with()
	next.TxHashToProvider = state.TxHashToProvider.clone(len(staged))
	for txHash, info := range staged {
		next.TxHashToProvider[txHash] = info
	}
	return next
}

// persisted mirrors State with optional fields so a partial payload can be merged.
type persisted struct {
	TxHashToProvider map[string]*DisplayInfo `json:"txHashToProvider"`
	ProviderLogos    ProviderLogos           `json:"providerLogos"`
}

// rehydrate merges the persisted fields over state. Fields missing from the
// payload keep their current value. An unreadable payload is ignored.
func rehydrate(state *State, a store.Rehydrate) *State {
	raw, ok := a.For(Namespace)
	if !ok {
		return state
	}

	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		return state
	}
	if p.TxHashToProvider == nil && p.ProviderLogos == nil {
		return state
	}

	next := state.with()
	if p.TxHashToProvider != nil {
		next.TxHashToProvider = make(TxHashToDisplayInfo, len(p.TxHashToProvider))
		for txHash, info := range p.TxHashToProvider {
			if info != nil {
				next.TxHashToProvider[txHash] = *info
			}
		}
	}
	if p.ProviderLogos != nil {
		next.ProviderLogos = p.ProviderLogos
	}
	return next
}
