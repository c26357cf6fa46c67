// Package counter keeps the per-test snapshot counters that disambiguate
// several snapshots taken by the same test.
package counter

import "sync"

// Key identifies one snapshot call site: the test suite and the test
// function joined with its data-set fragment.
type Key struct {
	Suite string
	Call  string
}

// Registry maps keys to the next free snapshot index.
type Registry struct {
	mu     sync.Mutex
	counts map[Key]int
}

// Default is the process-wide registry used when none is injected.
var Default = New()

// New creates an empty registry.
func New() *Registry {
	return &Registry{counts: make(map[Key]int)}
}

// Next returns the current index for k and advances it.
// An unseen key starts at 0.
func (r *Registry) Next(k Key) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.counts[k]
	r.counts[k] = n + 1
	return n
}

// Peek returns the current index for k without advancing it.
func (r *Registry) Peek(k Key) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.counts[k]
}

// Reset forgets every counter.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counts = make(map[Key]int)
}
