// Package appstate combines the cashin state slices into one root state.
package appstate

import (
	"encoding/json"

	"github.com/mrz1836/cashin/internal/fiatexchange"
	"github.com/mrz1836/cashin/internal/i18n"
	"github.com/mrz1836/cashin/internal/identity"
	"github.com/mrz1836/cashin/internal/store"
)

// Root is the global application state.
type Root struct {
	FiatExchanges *fiatexchange.State
	Identity      *identity.State
}

// Initial returns the root state at process start.
func Initial() *Root {
	return &Root{
		FiatExchanges: fiatexchange.InitialState(),
		Identity:      identity.InitialState(),
	}
}

// NewReducer returns the root reducer. The root pointer only changes when a slice changes.
func NewReducer(tr i18n.Translator) store.Reducer[*Root] {
	fiat := fiatexchange.NewReducer(tr)

	return func(root *Root, action store.Action) *Root {
		if root == nil {
			root = Initial()
		}

		nextFiat := fiat.Reduce(root.FiatExchanges, action)
		nextIdentity := identity.Reduce(root.Identity, action)

		if nextFiat == root.FiatExchanges && nextIdentity == root.Identity {
			return root
		}
		return &Root{
			FiatExchanges: nextFiat,
			Identity:      nextIdentity,
		}
	}
}

// NewStore creates a store holding the initial root state.
func NewStore(tr i18n.Translator) *store.Store[*Root] {
	return store.New(NewReducer(tr), Initial())
}

// Snapshot encodes every slice under its namespace for persistence.
func Snapshot(root *Root) (store.Snapshot, error) {
	fiat, err := json.Marshal(root.FiatExchanges)
	if err != nil {
		return nil, err
	}
	ident, err := json.Marshal(root.Identity)
	if err != nil {
		return nil, err
	}
	return store.Snapshot{
		fiatexchange.Namespace: fiat,
		identity.Namespace:     ident,
	}, nil
}

// TxHashToFeedInfo returns the provider display info per transaction hash.
// Transaction feeds use it to decorate entries with a provider name and icon.
func TxHashToFeedInfo(root *Root) fiatexchange.TxHashToDisplayInfo {
	if root == nil || root.FiatExchanges == nil {
		return nil
	}
	return root.FiatExchanges.TxHashToProvider
}

// AddressToDisplayName returns the cached display names keyed by address.
func AddressToDisplayName(root *Root) identity.AddressToDisplayName {
	if root == nil || root.Identity == nil {
		return nil
	}
	return root.Identity.AddressToDisplayName
}
