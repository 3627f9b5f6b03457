// Package metrics provides application-level metrics collection.
// This is a lightweight metrics foundation using atomic counters.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics holds application metrics using atomic counters for thread safety.
type Metrics struct {
	// Dispatch metrics
	dispatchesTotal atomic.Int64
	stateChanges    atomic.Int64

	// Persistence metrics
	savesTotal      atomic.Int64
	saveErrors      atomic.Int64
	saveLatencyNano atomic.Int64
	savesDeferred   atomic.Int64
	restoresTotal   atomic.Int64
	restoreErrors   atomic.Int64
}

// Global is the global metrics instance.
// Use this for recording metrics throughout the application.
//
//nolint:gochecknoglobals // Intentional global for metrics access
var Global = &Metrics{}

// RecordDispatch records a dispatched event and whether it produced a new state.
func (m *Metrics) RecordDispatch(changed bool) {
	m.dispatchesTotal.Add(1)
	if changed {
		m.stateChanges.Add(1)
	}
}

// RecordSave records a snapshot write with its duration and success status.
func (m *Metrics) RecordSave(duration time.Duration, err error) {
	m.savesTotal.Add(1)
	m.saveLatencyNano.Add(duration.Nanoseconds())
	if err != nil {
		m.saveErrors.Add(1)
	}
}

// RecordDeferredSave records a change whose write was postponed by throttling.
func (m *Metrics) RecordDeferredSave() {
	m.savesDeferred.Add(1)
}

// RecordRestore records a snapshot load.
func (m *Metrics) RecordRestore(err error) {
	m.restoresTotal.Add(1)
	if err != nil {
		m.restoreErrors.Add(1)
	}
}

// Snapshot is a point-in-time copy of all metrics.
type Snapshot struct {
	DispatchesTotal int64 `json:"dispatches_total"`
	StateChanges    int64 `json:"state_changes"`
	SavesTotal      int64 `json:"saves_total"`
	SaveErrors      int64 `json:"save_errors"`
	SaveLatencyNano int64 `json:"save_latency_nanos"`
	SavesDeferred   int64 `json:"saves_deferred"`
	RestoresTotal   int64 `json:"restores_total"`
	RestoreErrors   int64 `json:"restore_errors"`
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		DispatchesTotal: m.dispatchesTotal.Load(),
		StateChanges:    m.stateChanges.Load(),
		SavesTotal:      m.savesTotal.Load(),
		SaveErrors:      m.saveErrors.Load(),
		SaveLatencyNano: m.saveLatencyNano.Load(),
		SavesDeferred:   m.savesDeferred.Load(),
		RestoresTotal:   m.restoresTotal.Load(),
		RestoreErrors:   m.restoreErrors.Load(),
	}
}

// SaveLatencyAvgMs returns the average snapshot write latency in milliseconds.
// Returns 0 if nothing has been saved.
func (m *Metrics) SaveLatencyAvgMs() float64 {
	saves := m.savesTotal.Load()
	if saves == 0 {
		return 0
	}
	return float64(m.saveLatencyNano.Load()) / float64(saves) / 1e6
}

// NoopRate returns the share of dispatches that left state untouched, as a percentage (0-100).
// Returns 0 if nothing has been dispatched.
func (m *Metrics) NoopRate() float64 {
	total := m.dispatchesTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(total-m.stateChanges.Load()) / float64(total) * 100
}

// Reset resets all metrics to zero.
// Useful for testing.
func (m *Metrics) Reset() {
	m.dispatchesTotal.Store(0)
	m.stateChanges.Store(0)
	m.savesTotal.Store(0)
	m.saveErrors.Store(0)
	m.saveLatencyNano.Store(0)
	m.savesDeferred.Store(0)
	m.restoresTotal.Store(0)
	m.restoreErrors.Store(0)
}
