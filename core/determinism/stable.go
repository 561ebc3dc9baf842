// Package determinism provides primitives for reproducible output.
// Catalog listings and reports iterate in sorted key order so repeated
// runs over the same scenario render identical output.
package determinism

import (
	"sort"
	"sync"
)

// StableMap is a map that guarantees iteration order (sorted by key).
// Used for the product catalog so per-product pricing output is
// reproducible run to run.
type StableMap[K comparable, V any] struct {
	mu      sync.RWMutex
	keys    []K
	values  map[K]V
	keyFunc func(K) string
}

// NewStableMap creates a StableMap ordered by keyFunc
func NewStableMap[K comparable, V any](keyFunc func(K) string) *StableMap[K, V] {
	return &StableMap[K, V]{
		values:  make(map[K]V),
		keyFunc: keyFunc,
	}
}

// Set adds or updates a key-value pair
func (m *StableMap[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
		sort.Slice(m.keys, func(i, j int) bool {
			return m.keyFunc(m.keys[i]) < m.keyFunc(m.keys[j])
		})
	}
	m.values[key] = value
}

// Get retrieves a value by key
func (m *StableMap[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.values[key]
	return val, ok
}

// Range iterates in stable sorted order
func (m *StableMap[K, V]) Range(fn func(K, V) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			break
		}
	}
}

// Keys returns all keys in sorted order
func (m *StableMap[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]K, len(m.keys))
	copy(result, m.keys)
	return result
}

// Len returns the number of entries
func (m *StableMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
