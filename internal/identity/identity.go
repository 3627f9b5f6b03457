// Package identity caches display names for addresses the user has interacted with.
package identity

import (
	"encoding/json"

	"github.com/mrz1836/cashin/internal/address"
	"github.com/mrz1836/cashin/internal/store"
)

// Namespace is the key under which this state is persisted and restored.
const Namespace = "identity"

// TypeSetDisplayNames is the action type of SetDisplayNames.
const TypeSetDisplayNames store.ActionType = "IDENTITY/SET_DISPLAY_NAMES"

// NameEntry is the cached identity of one address.
type NameEntry struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// AddressToDisplayName maps a normalized address to its cached identity.
type AddressToDisplayName map[string]NameEntry

// State is the persisted identity state.
type State struct {
	AddressToDisplayName AddressToDisplayName `json:"addressToDisplayName"`
}

// InitialState returns an empty state.
func InitialState() *State {
	return &State{AddressToDisplayName: AddressToDisplayName{}}
}

// Lookup returns the cached name for addr. Hex addresses match case-insensitively.
func (m AddressToDisplayName) Lookup(addr string) (NameEntry, bool) {
	if addr == "" {
		return NameEntry{}, false
	}
	entry, ok := m[address.Normalize(addr)]
	return entry, ok
}

// NameFor returns the cached name for addr.
func (s *State) NameFor(addr string) (string, bool) {
	if s == nil {
		return "", false
	}
	entry, ok := s.AddressToDisplayName.Lookup(addr)
	if !ok || entry.Name == "" {
		return "", false
	}
	return entry.Name, true
}

// SetDisplayNames merges names into the cache. Keys are addresses.
type SetDisplayNames struct {
	Names map[string]NameEntry
}

// Type implements store.Action.
func (SetDisplayNames) Type() store.ActionType { return TypeSetDisplayNames }

// Reduce returns the state after action. A nil state is treated as InitialState.
func Reduce(state *State, action store.Action) *State {
	if state == nil {
		state = InitialState()
	}

	switch a := action.(type) {
	case store.Rehydrate:
		return rehydrate(state, a)
	case SetDisplayNames:
		if len(a.Names) == 0 {
			return state
		}
		names := make(AddressToDisplayName, len(state.AddressToDisplayName)+len(a.Names))
		for k, v := range state.AddressToDisplayName {
			names[k] = v
		}
		for addr, entry := range a.Names {
			if addr == "" {
				continue
			}
			names[address.Normalize(addr)] = entry
		}
		return &State{AddressToDisplayName: names}
	default:
		return state
	}
}

func rehydrate(state *State, a store.Rehydrate) *State {
	raw, ok := a.For(Namespace)
	if !ok {
		return state
	}

	var p struct {
		AddressToDisplayName AddressToDisplayName `json:"addressToDisplayName"`
	}
	if err := json.Unmarshal(raw, &p); err != nil || p.AddressToDisplayName == nil {
		return state
	}

	names := make(AddressToDisplayName, len(p.AddressToDisplayName))
	for addr, entry := range p.AddressToDisplayName {
		names[address.Normalize(addr)] = entry
	}
	return &State{AddressToDisplayName: names}
}
