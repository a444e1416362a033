// Package remote delivers normalized pointer commands to a target machine.
package remote

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps device ids to the sinks that reach them.
type Registry struct {
	mu    sync.RWMutex
	sinks map[string]Sink
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sinks: map[string]Sink{}}
}

// Register adds or replaces the sink for id.
func (r *Registry) Register(id string, sink Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks[id] = sink
}

// Remove drops the sink for id when it is still the registered one.
// A nil sink removes unconditionally.
func (r *Registry) Remove(id string, sink Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.sinks[id]; ok && (sink == nil || current == sink) {
		delete(r.sinks, id)
	}
}

// Lookup returns the sink for id or ErrSinkUnavailable.
func (r *Registry) Lookup(id string) (Sink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sink, ok := r.sinks[id]
	if !ok {
		return nil, fmt.Errorf("device %q: %w", id, ErrSinkUnavailable)
	}
	return sink, nil
}

// Provider returns a lookup bound to id.
func (r *Registry) Provider(id string) Provider {
	return func() (Sink, error) {
		return r.Lookup(id)
	}
}

// IDs returns the registered device ids sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.sinks))
	for id := range r.sinks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
