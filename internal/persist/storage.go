// Package persist saves and restores the cashin root state.
//
// State is persisted as a Snapshot: one JSON document per namespace.
// A Storage backend reads and writes whole snapshots; a Persistor keeps a
// backend in sync with a store and restores it at startup.
package persist

import (
	"context"
	"errors"
	"strings"

	"github.com/mrz1836/cashin/internal/store"
	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

// Backend names accepted by Open.
const (
	BackendFile    = "file"
	BackendLevelDB = "leveldb"
)

// ErrCorruptState indicates the persisted state could not be decoded.
var ErrCorruptState = errors.New("persisted state is corrupted")

// Storage reads and writes snapshots.
type Storage interface {
	// Load returns the persisted snapshot, or an empty one when nothing was saved.
	Load(ctx context.Context) (store.Snapshot, error)

	// Save replaces the persisted snapshot.
	Save(ctx context.Context, snap store.Snapshot) error

	// Close releases the backend.
	Close() error
}

// Open returns the storage backend named by backend rooted at path.
func Open(backend, path string) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFileStorage(path), nil
	case BackendLevelDB:
		return OpenLevelDB(path)
	default:
		return nil, cashinerr.WithDetails(cashinerr.ErrUnknownBackend, map[string]string{
			"backend": backend,
		})
	}
}
