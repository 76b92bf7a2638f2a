// Package memory provides the default process-lifetime storage backend: an
// ordered, id-indexed collection per entity type. Data lives exactly as long
// as the process; there is no durability by design.
package memory

import "github.com/edulab/lms-api/internal/core/domain"

// store is an ordered collection indexed by id with a monotonic id counter.
// Ids are never reused, even after removal. Insertion order is semantically
// meaningful: it is the default listing order.
//
// store itself is not safe for concurrent use; the repositories wrapping it
// hold a mutex around every access.
type store[T any] struct {
	nextID int
	order  []int
	items  map[int]T
}

func newStore[T any]() *store[T] {
	return &store[T]{nextID: 1, items: make(map[int]T)}
}

// allocID returns the next identifier and advances the counter.
func (s *store[T]) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

// insert appends the record under id. The id must come from allocID; the
// duplicate check is defensive.
func (s *store[T]) insert(id int, item T) error {
	if _, exists := s.items[id]; exists {
		return domain.ErrIDExists
	}
	s.items[id] = item
	s.order = append(s.order, id)
	return nil
}

func (s *store[T]) get(id int) (T, bool) {
	item, ok := s.items[id]
	return item, ok
}

// all returns every record in insertion order.
func (s *store[T]) all() []T {
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// replace swaps the stored record wholesale, keeping its position in the
// insertion order.
func (s *store[T]) replace(id int, item T) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	s.items[id] = item
	return true
}

func (s *store[T]) remove(id int) bool {
	if _, ok := s.items[id]; !ok {
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
