// Package store serializes state transitions for cashin.
//
// A Store owns one root state value and applies every dispatched Action
// through a pure reducer. Reducers return the same value when nothing
// changed, and the Store only notifies subscribers when the root value
// differs from the previous one.
package store

import (
	"encoding/json"
	"sync"

	"github.com/mrz1836/cashin/internal/metrics"
)

// ActionType identifies an event.
type ActionType string

// Action is an event consumed by reducers.
type Action interface {
	Type() ActionType
}

// TypeRehydrate is the type of the Rehydrate event.
const TypeRehydrate ActionType = "persist/REHYDRATE"

// Snapshot is the persisted form of a root state: one JSON document per namespace.
type Snapshot map[string]json.RawMessage

// Rehydrate restores previously persisted state at startup.
type Rehydrate struct {
	Payload Snapshot
}

// Type implements Action.
func (Rehydrate) Type() ActionType {
	return TypeRehydrate
}

// For returns the persisted document for a namespace, if any.
func (r Rehydrate) For(namespace string) (json.RawMessage, bool) {
	raw, ok := r.Payload[namespace]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}
	return raw, true
}

// Reducer computes the next state for an action.
// It must not mutate its input and must return the input itself when nothing changed.
type Reducer[S comparable] func(state S, action Action) S

// Store holds a root state and serializes dispatches against it.
type Store[S comparable] struct {
	dispatchMu sync.Mutex
	mu         sync.RWMutex
	state      S
	reduce     Reducer[S]

	subMu  sync.Mutex
	subs   map[int]func(S)
	nextID int
}

// New creates a store with the given reducer and initial state.
func New[S comparable](reduce Reducer[S], initial S) *Store[S] {
	return &Store[S]{
		state:  initial,
		reduce: reduce,
		subs:   make(map[int]func(S)),
	}
}

// GetState returns the current root state.
func (s *Store[S]) GetState() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies action and returns the resulting state.
// One action is fully processed, subscribers included, before the next is accepted.
// Subscribers must not call Dispatch.
func (s *Store[S]) Dispatch(action Action) S {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	prev := s.GetState()
	next := s.reduce(prev, action)
	changed := next != prev
	metrics.Global.RecordDispatch(changed)

	if !changed {
		return prev
	}

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	for _, fn := range s.subscribers() {
		fn(next)
	}
	return next
}

// Subscribe registers fn to be called with every new root state.
// The returned function removes the subscription.
func (s *Store[S]) Subscribe(fn func(S)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store[S]) subscribers() []func(S) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	fns := make([]func(S), 0, len(s.subs))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	return fns
}
