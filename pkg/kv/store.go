// Package kv provides a small thread-safe key-value cache.
package kv

import "sync"

// Store is a thread-safe generic key-value store holding at most Cap
// entries. When full, the oldest inserted entry is evicted.
type Store[K comparable, V any] struct {
	mu    sync.RWMutex
	data  map[K]V
	order []K
	cap   int
}

// New creates a store that holds at most capacity entries. A non-positive
// capacity means unbounded.
func New[K comparable, V any](capacity int) *Store[K, V] {
	return &Store[K, V]{
		data: make(map[K]V),
		cap:  capacity,
	}
}

// Get retrieves a value by key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// Set stores a value by key.
func (s *Store[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(key, value)
}

// GetOrSet returns the value for key, building and storing it with fn on a
// miss. Errors from fn are returned and nothing is stored.
func (s *Store[K, V]) GetOrSet(key K, fn func() (V, error)) (V, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.data[key]; ok {
		return v, nil
	}
	v, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}
	s.set(key, v)
	return v, nil
}

func (s *Store[K, V]) set(key K, value V) {
	if _, ok := s.data[key]; !ok {
		s.order = append(s.order, key)
	}
	s.data[key] = value

	for s.cap > 0 && len(s.order) > s.cap {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.data, oldest)
	}
}

// Len returns the number of items in the store.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
