package dedupe

import "runtime/debug"

// Backend tracks already-seen candidate domains during a merge. The
// first-occurrence-wins ordering lives with the caller; the backend only
// answers membership.
type Backend interface {
	// Upsert records elem and reports whether it was seen for the first time
	Upsert(elem string) bool
	// Len returns the number of distinct elements recorded so far
	Len() int
	// Cleanup releases any residuals after deduping
	Cleanup()
}

type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]struct{}{}}
}

func (m *MapBackend) Upsert(elem string) bool {
	if _, ok := m.storage[elem]; ok {
		return false
	}
	m.storage[elem] = struct{}{}
	return true
}

func (m *MapBackend) Len() int {
	return len(m.storage)
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// GC keeps freed buckets around for reuse; a candidate merge is a
	// one-shot burst so hand the memory back immediately
	debug.FreeOSMemory()
}
