package persist

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mrz1836/cashin/internal/metrics"
	"github.com/mrz1836/cashin/internal/store"
)

// Logger receives persistence diagnostics.
type Logger interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Error(string, ...any) {}

// SnapshotFunc encodes a root state for storage.
type SnapshotFunc[S any] func(S) (store.Snapshot, error)

// Persistor writes store changes to a Storage.
// Writes are throttled: a change arriving before the next write is allowed
// is kept as pending and written by a later change or by Flush.
type Persistor[S comparable] struct {
	storage  Storage
	snapshot SnapshotFunc[S]
	limiter  *rate.Limiter
	logger   Logger

	mu          sync.Mutex
	pending     S
	dirty       bool
	unsubscribe func()
}

// Option configures a Persistor.
type Option func(*options)

type options struct {
	interval time.Duration
	logger   Logger
}

// WithInterval sets the minimum time between two writes. Zero writes every change.
func WithInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewPersistor creates a persistor writing to storage.
func NewPersistor[S comparable](storage Storage, snapshot SnapshotFunc[S], opts ...Option) *Persistor[S] {
	o := options{logger: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	limit := rate.Inf
	if o.interval > 0 {
		limit = rate.Every(o.interval)
	}

	return &Persistor[S]{
		storage:  storage,
		snapshot: snapshot,
		limiter:  rate.NewLimiter(limit, 1),
		logger:   o.logger,
	}
}

// Restore loads the persisted snapshot and dispatches it as a Rehydrate event.
// A corrupt snapshot is still dispatched with whatever could be read, and the error is returned.
func (p *Persistor[S]) Restore(ctx context.Context, st *store.Store[S]) error {
	snap, err := p.storage.Load(ctx)
	metrics.Global.RecordRestore(err)
	if err != nil {
		p.logger.Error("restoring state: %v", err)
	}
	if snap == nil {
		return err
	}

	p.logger.Debug("restoring %d namespaces", len(snap))
	st.Dispatch(store.Rehydrate{Payload: snap})
	return err
}

// Attach subscribes the persistor to st. Calling Attach again replaces the previous subscription.
func (p *Persistor[S]) Attach(st *store.Store[S]) {
	unsubscribe := st.Subscribe(p.onChange)

	p.mu.Lock()
	prev := p.unsubscribe
	p.unsubscribe = unsubscribe
	p.mu.Unlock()

	if prev != nil {
		prev()
	}
}

func (p *Persistor[S]) onChange(state S) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending = state
	p.dirty = true

	if !p.limiter.Allow() {
		metrics.Global.RecordDeferredSave()
		p.logger.Debug("state write deferred")
		return
	}

	if err := p.saveLocked(context.Background()); err != nil {
		p.logger.Error("saving state: %v", err)
	}
}

// Flush writes the pending state, if any.
func (p *Persistor[S]) Flush(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saveLocked(ctx)
}

// Dirty reports whether a change has not been written yet.
func (p *Persistor[S]) Dirty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dirty
}

// Close detaches from the store, flushes pending state and closes the storage.
func (p *Persistor[S]) Close(ctx context.Context) error {
	p.mu.Lock()
	unsubscribe := p.unsubscribe
	p.unsubscribe = nil
	p.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}

	flushErr := p.Flush(ctx)
	closeErr := p.storage.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

func (p *Persistor[S]) saveLocked(ctx context.Context) error {
	if !p.dirty {
		return nil
	}

	snap, err := p.snapshot(p.pending)
	if err != nil {
		return err
	}

	start := time.Now()
	err = p.storage.Save(ctx, snap)
	metrics.Global.RecordSave(time.Since(start), err)
	if err != nil {
		return err
	}

	p.dirty = false
	p.logger.Debug("state saved (%d namespaces)", len(snap))
	return nil
}
