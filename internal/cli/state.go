package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/cashin/internal/appstate"
	"github.com/mrz1836/cashin/internal/output"
	"github.com/mrz1836/cashin/internal/persist"
	"github.com/mrz1836/cashin/internal/store"
	cashinerr "github.com/mrz1836/cashin/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var (
	// appStore and persistor are opened on first use by openState.
	appStore  *store.Store[*appstate.Root]
	persistor *persist.Persistor[*appstate.Root]
)

// openState restores the persisted state into a new store and keeps the
// store saved for the rest of the command.
func openState(cmd *cobra.Command) (*store.Store[*appstate.Root], error) {
	if appStore != nil {
		return appStore, nil
	}

	storage, err := persist.Open(cfg.GetStorageBackend(), cfg.GetStoragePath())
	if err != nil {
		if cashinerr.Is(err, cashinerr.ErrUnknownBackend) {
			return nil, err
		}
		return nil, cashinerr.Wrap(cashinerr.ErrStorage, "opening %s", cfg.GetStoragePath())
	}

	p := persist.NewPersistor(storage, appstate.Snapshot,
		persist.WithInterval(cfg.GetFlushInterval()),
		persist.WithLogger(logger.With("persist")),
	)
	st := appstate.NewStore(catalog)

	ctx, cancel := contextWithTimeout(cmd, storageTimeout)
	defer cancel()

	if err := p.Restore(ctx, st); err != nil {
		if !errors.Is(err, persist.ErrCorruptState) {
			_ = storage.Close()
			return nil, cashinerr.WithDetails(cashinerr.Wrap(cashinerr.ErrStorage, "restoring state"),
				map[string]string{"path": cfg.GetStoragePath(), "reason": err.Error()})
		}
		output.Warnf(os.Stderr, "persisted state was unreadable and has been reset: %v", err)
	}

	p.Attach(st)
	appStore, persistor = st, p
	return st, nil
}

// closeState flushes pending changes and closes the storage backend.
func closeState(cmd *cobra.Command) error {
	if persistor == nil {
		return nil
	}

	if persistor.Dirty() && logger != nil {
		logger.Debug("writing deferred state changes")
	}

	ctx, cancel := contextWithTimeout(cmd, storageTimeout)
	defer cancel()

	err := persistor.Close(ctx)
	appStore, persistor = nil, nil
	if err != nil {
		return cashinerr.WithDetails(cashinerr.Wrap(cashinerr.ErrStorage, "saving state"),
			map[string]string{"reason": err.Error()})
	}
	return nil
}
