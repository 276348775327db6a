package collections

import (
	"cmp"
	"fmt"
	"slices"
)

// Set is a generic set data structure using a map with zero-size values.
// The zero value of a Set is an empty, read-only set: Has reports false for every value.
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set with the given initial values
func NewSet[T comparable](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	s.Add(vs...)
	return s
}

// Union returns a new set holding every member of the given sets
func Union[T comparable](sets ...Set[T]) Set[T] {
	size := 0
	for _, s := range sets {
		size += len(s)
	}
	u := make(Set[T], size)
	for _, s := range sets {
		for v := range s {
			u[v] = struct{}{}
		}
	}
	return u
}

// Add adds one or more values to the set
func (s Set[T]) Add(vs ...T) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

// Has checks if the set contains the given value
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// HasAny reports whether at least one of the given values is a member
func (s Set[T]) HasAny(vs ...T) bool {
	for _, v := range vs {
		if s.Has(v) {
			return true
		}
	}
	return false
}

// Members returns all values in the set as a slice, in no particular order
func (s Set[T]) Members() []T {
	r := make([]T, 0, len(s))
	for v := range s {
		r = append(r, v)
	}
	return r
}

// Sorted returns the members of an ordered set in ascending order
func Sorted[T cmp.Ordered](s Set[T]) []T {
	r := s.Members()
	slices.Sort(r)
	return r
}

// String returns a string representation of the set
func (s Set[T]) String() string {
	return fmt.Sprintf("%v", s.Members())
}
