package ecs

import "slices"

// SparseSet is a cache-friendly map from Entity to T. Iteration follows the
// dense slice: insertion order, except that Remove moves the last element
// into the freed slot.
type SparseSet[T any] struct {
	denseEntities []Entity
	denseValues   []T
	sparse        []int
}

// Has reports whether e (including its generation) is in the set.
func (s *SparseSet[T]) Has(e Entity) bool {
	if s == nil || !e.Valid() {
		return false
	}
	slot := int(e.id()) - 1
	if slot >= len(s.sparse) {
		return false
	}
	idx := s.sparse[slot]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == e
}

// Get returns the value stored for e.
func (s *SparseSet[T]) Get(e Entity) (T, bool) {
	var zero T
	if !s.Has(e) {
		return zero, false
	}
	return s.denseValues[s.sparse[e.id()-1]], true
}

// Set inserts or updates the value for e. A stale generation of the same slot
// is replaced.
func (s *SparseSet[T]) Set(e Entity, v T) {
	if s == nil || !e.Valid() {
		return
	}
	slot := int(e.id()) - 1
	if n := slot + 1 - len(s.sparse); n > 0 {
		old := len(s.sparse)
		s.sparse = slices.Grow(s.sparse, n)[:slot+1]
		for i := old; i <= slot; i++ {
			s.sparse[i] = -1
		}
	}
	if idx := s.sparse[slot]; idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx].id() == e.id() {
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[slot] = len(s.denseEntities) - 1
}

// Remove deletes e from the set and reports whether it was present.
func (s *SparseSet[T]) Remove(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	slot := e.id() - 1
	idx := s.sparse[slot]
	last := len(s.denseEntities) - 1
	lastEntity := s.denseEntities[last]

	s.denseEntities[idx] = lastEntity
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastEntity.id()-1] = idx

	var zero T
	s.denseValues[last] = zero
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[slot] = -1
	return true
}

// Len returns the number of stored entries.
func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns the dense entity list. Callers must not modify it.
func (s *SparseSet[T]) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

// Values returns the dense value list, parallel to Entities.
func (s *SparseSet[T]) Values() []T {
	if s == nil {
		return nil
	}
	return s.denseValues
}

// Clear empties the set, keeping its capacity.
func (s *SparseSet[T]) Clear() {
	if s == nil {
		return
	}
	clear(s.denseValues)
	s.denseEntities = s.denseEntities[:0]
	s.denseValues = s.denseValues[:0]
	s.sparse = s.sparse[:0]
}
