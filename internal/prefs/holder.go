// Package prefs builds the pipeline configuration from a key/value settings snapshot.
package prefs

import (
	"sync"
	"sync/atomic"
)

// Source provides settings snapshots.
type Source interface {
	Snapshot() Values
}

// SourceFunc adapts a function to Source.
type SourceFunc func() Values

// Snapshot calls f.
func (f SourceFunc) Snapshot() Values {
	return f()
}

// applied pairs a configuration with the rebuild that produced it.
type applied struct {
	cfg     Configuration
	version uint64
}

// Holder keeps the current configuration and rebuilds it lazily after MarkDirty.
type Holder struct {
	source    Source
	dirty     atomic.Bool
	current   atomic.Pointer[applied]
	rebuildMu sync.Mutex
	version   atomic.Uint64
}

// NewHolder returns a holder that builds its first snapshot on demand.
func NewHolder(source Source) *Holder {
	h := &Holder{source: source}
	h.dirty.Store(true)
	return h
}

// MarkDirty flags the snapshot as stale; the next Current call rebuilds it.
func (h *Holder) MarkDirty() {
	h.dirty.Store(true)
}

// Dirty reports whether the next Current call will rebuild.
func (h *Holder) Dirty() bool {
	return h.dirty.Load()
}

// Current returns the applied configuration and its version, rebuilding it
// first when stale. The version changes on every rebuild.
func (h *Holder) Current() (Configuration, uint64) {
	if !h.dirty.Load() {
		if a := h.current.Load(); a != nil {
			return a.cfg, a.version
		}
	}

	h.rebuildMu.Lock()
	defer h.rebuildMu.Unlock()
	if !h.dirty.Load() {
		if a := h.current.Load(); a != nil {
			return a.cfg, a.version
		}
	}
	h.dirty.Store(false)
	a := &applied{cfg: Build(h.source.Snapshot()), version: h.version.Add(1)}
	h.current.Store(a)
	return a.cfg, a.version
}

// Version counts completed rebuilds.
func (h *Holder) Version() uint64 {
	return h.version.Load()
}
