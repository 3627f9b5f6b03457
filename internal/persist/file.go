package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mrz1836/cashin/internal/fileutil"
	"github.com/mrz1836/cashin/internal/store"
)

// stateFilePermissions is the permission mode for state files.
const stateFilePermissions = 0o600

// FileStorage persists snapshots as a single JSON document.
type FileStorage struct {
	path string
}

// Compile-time interface check
var _ Storage = (*FileStorage)(nil)

// NewFileStorage creates a file-based storage at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Save writes the snapshot atomically.
func (s *FileStorage) Save(ctx context.Context, snap store.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	if err := fileutil.WriteAtomic(s.path, data, stateFilePermissions); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}

// Load reads the snapshot. Returns an empty snapshot if the file doesn't exist.
// A corrupt file is moved aside and reported with ErrCorruptState.
func (s *FileStorage) Load(ctx context.Context) (store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 -- state path is derived from validated config
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return store.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		corruptPath, renameErr := fileutil.MoveAside(s.path, "corrupt")
		if renameErr != nil {
			return store.Snapshot{}, fmt.Errorf("%w: %w (also failed to move file: %w)", ErrCorruptState, err, renameErr)
		}
		return store.Snapshot{}, fmt.Errorf("%w: %w (moved to %s)", ErrCorruptState, err, corruptPath)
	}

	if snap == nil {
		snap = store.Snapshot{}
	}
	return snap, nil
}

// Close is a no-op for file storage.
func (s *FileStorage) Close() error {
	return nil
}

// Exists checks if the state file exists.
func (s *FileStorage) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
