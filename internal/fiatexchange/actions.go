package fiatexchange

import (
	"github.com/mrz1836/cashin/internal/currency"
	"github.com/mrz1836/cashin/internal/store"
)

// Action types handled by Reducer.
const (
	TypeSetProviderLogos        store.ActionType = "FIAT_EXCHANGES/SET_PROVIDER_LOGOS"
	TypeAssignProviderToTxHash  store.ActionType = "FIAT_EXCHANGES/ASSIGN_PROVIDER_TO_TX_HASH"
	TypeSetProvidersForTxHashes store.ActionType = "FIAT_EXCHANGES/SET_PROVIDERS_FOR_TX_HASHES"
)

// SetProviderLogos replaces the provider logo table.
type SetProviderLogos struct {
	Logos ProviderLogos
}

// Type implements store.Action.
func (SetProviderLogos) Type() store.ActionType { return TypeSetProviderLogos }

// AssignProviderToTxHash marks txHash as a deposit of the given currency.
// It has no effect when the hash already has a provider.
type AssignProviderToTxHash struct {
	TxHash       string
	CurrencyCode currency.Code
}

// Type implements store.Action.
func (AssignProviderToTxHash) Type() store.ActionType { return TypeAssignProviderToTxHash }

// SetProvidersForTxHashes assigns providers to many hashes at once.
// A nil provider means the hash has no known provider.
type SetProvidersForTxHashes struct {
	TxHashes map[string]*string
}

// Type implements store.Action.
func (SetProvidersForTxHashes) Type() store.ActionType { return TypeSetProvidersForTxHashes }
