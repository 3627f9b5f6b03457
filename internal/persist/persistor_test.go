package persist

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/cashin/internal/appstate"
	"github.com/mrz1836/cashin/internal/currency"
	"github.com/mrz1836/cashin/internal/fiatexchange"
	"github.com/mrz1836/cashin/internal/i18n"
	"github.com/mrz1836/cashin/internal/store"
)

var errSaveFailed = errors.New("disk full")

// memoryStorage records saved snapshots in memory.
type memoryStorage struct {
	mu      sync.Mutex
	saved   []store.Snapshot
	loadErr error
	saveErr error
	initial store.Snapshot
	closed  bool
}

func (m *memoryStorage) Load(context.Context) (store.Snapshot, error) {
	return m.initial, m.loadErr
}

func (m *memoryStorage) Save(_ context.Context, snap store.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, snap)
	return nil
}

func (m *memoryStorage) Close() error {
	m.closed = true
	return nil
}

func (m *memoryStorage) saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saved)
}

func TestPersistor_SavesEveryChangeWithoutInterval(t *testing.T) {
	t.Parallel()
	mem := &memoryStorage{}
	st := appstate.NewStore(i18n.Identity)
	p := NewPersistor(mem, appstate.Snapshot)
	p.Attach(st)

	st.Dispatch(fiatexchange.AssignProviderToTxHash{TxHash: "0x1", CurrencyCode: currency.Celo})
	st.Dispatch(fiatexchange.AssignProviderToTxHash{TxHash: "0x1", CurrencyCode: currency.Celo}) // no-op
	st.Dispatch(fiatexchange.AssignProviderToTxHash{TxHash: "0x2", CurrencyCode: currency.Dollar})

	assert.Equal(t, 2, mem.saves())
	assert.False(t, p.Dirty())
}

func TestPersistor_ThrottlesAndFlushes(t *testing.T) {
	t.Parallel()
	mem := &memoryStorage{}
	st := appstate.NewStore(i18n.Identity)
	p := NewPersistor(mem, appstate.Snapshot, WithInterval(time.Hour))
	p.Attach(st)

	st.Dispatch(fiatexchange.AssignProviderToTxHash{TxHash: "0x1", CurrencyCode: currency.Celo})
	st.Dispatch(fiatexchange.AssignProviderToTxHash{TxHash: "0x2", CurrencyCode: currency.Celo})
	st.Dispatch(fiatexchange.AssignProviderToTxHash{TxHash: "0x3", CurrencyCode: currency.Celo})

	assert.Equal(t, 1, mem.saves(), "only the first change is written immediately")
	assert.True(t, p.Dirty())

	require.NoError(t, p.Close(context.Background()))
	assert.Equal(t, 2, mem.saves())
	assert.True(t, mem.closed)
	assert.False(t, p.Dirty())

	st.Dispatch(fiatexchange.AssignProviderToTxHash{TxHash: "0x4", CurrencyCode: currency.Celo})
	assert.Equal(t, 2, mem.saves(), "detached persistor ignores later changes")
}

func TestPersistor_SaveErrorKeepsDirty(t *testing.T) {
	t.Parallel()
	mem := &memoryStorage{saveErr: errSaveFailed}
	st := appstate.NewStore(i18n.Identity)
	p := NewPersistor(mem, appstate.Snapshot)
	p.Attach(st)

	st.Dispatch(fiatexchange.AssignProviderToTxHash{TxHash: "0x1", CurrencyCode: currency.Celo})
	assert.True(t, p.Dirty())
	require.ErrorIs(t, p.Flush(context.Background()), errSaveFailed)
}

func TestPersistor_RestoreFromFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	// First process run: make changes and close.
	first := appstate.NewStore(i18n.Identity)
	p1 := NewPersistor(NewFileStorage(path), appstate.Snapshot, WithInterval(time.Hour))
	require.NoError(t, p1.Restore(ctx, first))
	p1.Attach(first)
	first.Dispatch(fiatexchange.SetProviderLogos{Logos: fiatexchange.ProviderLogos{"Moonpay": "url1"}})
	provider := "Moonpay"
	first.Dispatch(fiatexchange.SetProvidersForTxHashes{TxHashes: map[string]*string{"0xabc": &provider}})
	require.NoError(t, p1.Close(ctx))

	// Second run: state is rehydrated.
	second := appstate.NewStore(i18n.Identity)
	p2 := NewPersistor(NewFileStorage(path), appstate.Snapshot)
	require.NoError(t, p2.Restore(ctx, second))

	info := appstate.TxHashToFeedInfo(second.GetState())
	assert.Equal(t, fiatexchange.DisplayInfo{Name: "Moonpay", Icon: "url1"}, info["0xabc"])
}

func TestPersistor_RestoreError(t *testing.T) {
	t.Parallel()
	mem := &memoryStorage{loadErr: ErrCorruptState}
	st := appstate.NewStore(i18n.Identity)
	before := st.GetState()

	err := NewPersistor(mem, appstate.Snapshot).Restore(context.Background(), st)
	require.ErrorIs(t, err, ErrCorruptState)
	assert.Same(t, before, st.GetState())
}
