// Package types holds small generic containers shared across packages.
package types

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set is a generic hash set for comparable types, backed by map[T]struct{}.
// It is not safe for concurrent use; callers guard it with their own lock.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes one or more elements from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Has reports whether v is a member of the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s Set[T]) Clone() Set[T] {
	return maps.Clone(s)
}

// ToIter returns an iterator over all elements in the set, in no particular order.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the elements of the set in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}

// Sorted returns the elements of an ordered set in ascending order.
// Listings built from it are stable between calls.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(s.ToIter())
}
