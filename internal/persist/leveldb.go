package persist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/mrz1836/cashin/internal/store"
)

// namespacePrefix prefixes every namespace key in the database.
const namespacePrefix = "persist:"

// LevelDBStorage persists each namespace under its own key.
type LevelDBStorage struct {
	db *leveldb.DB
}

// Compile-time interface check
var _ Storage = (*LevelDBStorage)(nil)

// OpenLevelDB opens or creates a LevelDB database at path.
func OpenLevelDB(path string) (*LevelDBStorage, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("opening leveldb: %w", err)
	}
	return &LevelDBStorage{db: db}, nil
}

// Save writes every namespace in one batch and removes namespaces that are no longer present.
func (s *LevelDBStorage) Save(ctx context.Context, snap store.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	batch := new(leveldb.Batch)

	iter := s.db.NewIterator(util.BytesPrefix([]byte(namespacePrefix)), nil)
	for iter.Next() {
		ns := string(iter.Key()[len(namespacePrefix):])
		if _, ok := snap[ns]; !ok {
			batch.Delete(append([]byte(nil), iter.Key()...))
		}
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return fmt.Errorf("scanning namespaces: %w", err)
	}

	for ns, raw := range snap {
		if !json.Valid(raw) {
			return fmt.Errorf("%w: namespace %s is not valid JSON", ErrCorruptState, ns)
		}
		batch.Put([]byte(namespacePrefix+ns), raw)
	}

	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("writing state batch: %w", err)
	}
	return nil
}

// Load reads every namespace. Invalid documents are skipped and reported with ErrCorruptState.
func (s *LevelDBStorage) Load(ctx context.Context) (store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := store.Snapshot{}
	var corrupt []string

	iter := s.db.NewIterator(util.BytesPrefix([]byte(namespacePrefix)), nil)
	defer iter.Release()

	for iter.Next() {
		ns := string(iter.Key()[len(namespacePrefix):])
		value := append([]byte(nil), iter.Value()...)
		if !json.Valid(value) {
			corrupt = append(corrupt, ns)
			continue
		}
		snap[ns] = value
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("reading state: %w", err)
	}

	if len(corrupt) > 0 {
		return snap, fmt.Errorf("%w: namespaces %v", ErrCorruptState, corrupt)
	}
	return snap, nil
}

// Close closes the database.
func (s *LevelDBStorage) Close() error {
	return s.db.Close()
}
