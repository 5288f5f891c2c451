package memory

import (
	"sync"
)

// store is a generic keyed store preserving insertion order. Values are
// cloned at every boundary so callers never alias live state and a returned
// snapshot is not altered by later mutation.
type store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
	clone func(T) T
}

func newStore[T any](clone func(T) T) *store[T] {
	return &store[T]{
		items: make(map[string]T),
		clone: clone,
	}
}

// add stores item under id. Returns false when the id is already present.
func (s *store[T]) add(id string, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return false
	}
	s.items[id] = s.clone(item)
	s.order = append(s.order, id)
	return true
}

// get returns a clone of the item, or false when absent.
func (s *store[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.clone(item), true
}

// list returns a fresh snapshot of all items in insertion order.
func (s *store[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]T, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, s.clone(s.items[id]))
	}
	return snapshot
}

// update replaces the item stored under id. Returns false when absent.
func (s *store[T]) update(id string, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return false
	}
	s.items[id] = s.clone(item)
	return true
}

// delete removes the item stored under id. Returns false when absent.
func (s *store[T]) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
