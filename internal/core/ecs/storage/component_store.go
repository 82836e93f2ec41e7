// Package storage implements the insertion-order-preserving component
// storage the deterministic World is built on.
package storage

import "reflect"

// Cloner is the minimal capability Store requires of its value type: a deep
// copy that can be mutated independently of the original. Parameterizing
// Store over this instead of importing package ecs directly keeps storage
// free of any dependency on ecs — ecs.EntityID and ecs.Component are
// supplied as type arguments by World, not imported here.
type Cloner[V any] interface {
	Clone() V
}

// Store is an ordered mapping from key to value for a single component
// type, preserving insertion order across set/remove (spec §4.2).
//
// This deliberately diverges from the teacher's swap-remove SparseSet: swap-
// remove reorders the dense array on every removal, which breaks the "remove
// leaves the order of remaining entries unchanged" guarantee the simulation
// depends on for deterministic multi-component iteration. See DESIGN.md.
type Store[K comparable, V Cloner[V]] struct {
	order  []K
	index  map[K]int
	values map[K]V
}

// New creates an empty ordered store.
func New[K comparable, V Cloner[V]]() *Store[K, V] {
	return &Store[K, V]{
		index:  make(map[K]int),
		values: make(map[K]V),
	}
}

// Set inserts or updates the value for key k. A new key is appended last; an
// existing key is updated in place (its position in iteration order is
// unchanged).
func (s *Store[K, V]) Set(k K, v V) {
	if _, exists := s.index[k]; exists {
		s.values[k] = v
		return
	}
	s.index[k] = len(s.order)
	s.order = append(s.order, k)
	s.values[k] = v
}

// Get returns the value for k, or (zero value, false) if absent.
func (s *Store[K, V]) Get(k K) (V, bool) {
	v, ok := s.values[k]
	return v, ok
}

// Has reports whether k has an entry in this store.
func (s *Store[K, V]) Has(k K) bool {
	_, ok := s.index[k]
	return ok
}

// Remove deletes k's entry. Iteration order of the remaining entries is
// unchanged.
func (s *Store[K, V]) Remove(k K) {
	pos, exists := s.index[k]
	if !exists {
		return
	}
	delete(s.values, k)
	delete(s.index, k)
	s.order = append(s.order[:pos], s.order[pos+1:]...)
	for i := pos; i < len(s.order); i++ {
		s.index[s.order[i]] = i
	}
}

// Len returns the number of entries.
func (s *Store[K, V]) Len() int {
	return len(s.order)
}

// Iterate calls fn(key, value) for every entry in insertion order, stopping
// early if fn returns false.
func (s *Store[K, V]) Iterate(fn func(K, V) bool) {
	for _, k := range s.order {
		if !fn(k, s.values[k]) {
			return
		}
	}
}

// Entities returns the keys with an entry in this store, in insertion order.
func (s *Store[K, V]) Entities() []K {
	out := make([]K, len(s.order))
	copy(out, s.order)
	return out
}

// Equal reports whether s and other hold value-equal entries for the same
// keys in the same insertion order (spec §8 "value-equal" universal
// invariants: determinism, state-machine purity, snapshot round-trip).
func (s *Store[K, V]) Equal(other *Store[K, V]) bool {
	if len(s.order) != len(other.order) {
		return false
	}
	for i, k := range s.order {
		if other.order[i] != k {
			return false
		}
		if !reflect.DeepEqual(s.values[k], other.values[k]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy: every stored value is itself cloned.
func (s *Store[K, V]) Clone() *Store[K, V] {
	out := New[K, V]()
	out.order = make([]K, len(s.order))
	copy(out.order, s.order)
	out.index = make(map[K]int, len(s.index))
	for k, v := range s.index {
		out.index[k] = v
	}
	out.values = make(map[K]V, len(s.values))
	for k, v := range s.values {
		out.values[k] = v.Clone()
	}
	return out
}
