package support

import (
	"sort"
	"sync"
)

// registry is a goroutine-safe table of named extensions. Macros for each
// receiver kind and the hash algorithms keep one apiece.
type registry[F any] struct {
	mu      sync.RWMutex
	entries map[string]F
}

func newRegistry[F any](entries map[string]F) *registry[F] {
	if entries == nil {
		entries = make(map[string]F)
	}
	return &registry[F]{entries: entries}
}

func (r *registry[F]) set(name string, fn F) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = fn
}

func (r *registry[F]) get(name string) (F, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.entries[name]
	return fn, ok
}

func (r *registry[F]) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]F)
}

// names returns the registered names, sorted.
func (r *registry[F]) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
