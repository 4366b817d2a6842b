package repository

import "github.com/google/uuid"

// entityStore is a generic keyed container for one entity type. Each entity
// type gets its own store; callers impose their own ordering on All.
// Not safe for concurrent use on its own; the owning Store serializes access.
type entityStore[T any] struct {
	items map[uuid.UUID]*T
}

func newEntityStore[T any]() *entityStore[T] {
	return &entityStore[T]{items: make(map[uuid.UUID]*T)}
}

// Put inserts or overwrites the entity under id
func (s *entityStore[T]) Put(id uuid.UUID, entity *T) {
	s.items[id] = entity
}

// Get returns the entity for id, or nil if absent
func (s *entityStore[T]) Get(id uuid.UUID) *T {
	return s.items[id]
}

// Delete removes the entity for id and reports whether anything was removed
func (s *entityStore[T]) Delete(id uuid.UUID) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

// All returns every stored entity in no particular order
func (s *entityStore[T]) All() []*T {
	out := make([]*T, 0, len(s.items))
	for _, e := range s.items {
		out = append(out, e)
	}
	return out
}

func (s *entityStore[T]) Len() int {
	return len(s.items)
}
