// Package seq provides a growable, index-addressed sequence of owned
// elements.
package seq

import "iter"

const defaultCapacity = 5

// Seq is an ordered sequence that grows on demand. The zero value is an
// empty sequence ready to use.
type Seq[T any] struct {
	elems []T
}

// New creates an empty sequence with room for capacity elements.
func New[T any](capacity int) *Seq[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Seq[T]{elems: make([]T, 0, capacity)}
}

// Append adds v to the end of the sequence.
func (s *Seq[T]) Append(v T) {
	s.elems = append(s.elems, v)
}

// PlaceAt stores v at index i, growing the sequence to at least i+1
// elements. Slots skipped over by the growth hold the zero value of T;
// callers that use PlaceAt must track which slots they have written.
func (s *Seq[T]) PlaceAt(i int, v T) {
	if i < 0 {
		panic("seq: negative index")
	}
	if i >= len(s.elems) {
		if i >= cap(s.elems) {
			grown := make([]T, i+1, growCap(cap(s.elems), i+1))
			copy(grown, s.elems)
			s.elems = grown
		} else {
			s.elems = s.elems[:i+1]
		}
	}
	s.elems[i] = v
}

// Get returns the element at index i. It panics if i is out of range.
func (s *Seq[T]) Get(i int) T {
	return s.elems[i]
}

// Len returns the number of slots in the sequence, including any gaps left
// by PlaceAt.
func (s *Seq[T]) Len() int {
	return len(s.elems)
}

// All iterates over the sequence in index order.
func (s *Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Release calls release on every element (if release is non-nil) and
// empties the sequence.
func (s *Seq[T]) Release(release func(T)) {
	if release != nil {
		for _, v := range s.elems {
			release(v)
		}
	}
	clear(s.elems)
	s.elems = s.elems[:0]
}

func growCap(current, need int) int {
	next := current + current/2
	if next < need {
		next = need
	}
	return next
}
