package order

import "github.com/google/btree"

// treeDegree is the B-tree branching factor. Frontiers hold at most a few
// rows of pixels, so a moderate degree keeps nodes small.
const treeDegree = 16

// Set is an ordered set whose order is given by a comparator.
// Elements comparing equal are the same element.
type Set[T any] struct {
	tree *btree.BTreeG[T]
}

// NewSet returns an empty set ordered by cmp.
func NewSet[T any](cmp func(a, b T) int) *Set[T] {
	less := func(a, b T) bool { return cmp(a, b) < 0 }

	return &Set[T]{tree: btree.NewG[T](treeDegree, less)}
}

// Add inserts v and reports whether it was not already present.
func (s *Set[T]) Add(v T) bool {
	_, replaced := s.tree.ReplaceOrInsert(v)

	return !replaced
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	_, ok := s.tree.Delete(v)

	return ok
}

// Has reports whether v is present.
func (s *Set[T]) Has(v T) bool { return s.tree.Has(v) }

// Len returns the number of elements.
func (s *Set[T]) Len() int { return s.tree.Len() }

// Min returns the smallest element without removing it.
func (s *Set[T]) Min() (T, bool) { return s.tree.Min() }

// PopMin removes and returns the smallest element.
func (s *Set[T]) PopMin() (T, bool) { return s.tree.DeleteMin() }

// Ascend calls fn for every element in order until fn returns false.
// fn must not modify the set.
func (s *Set[T]) Ascend(fn func(v T) bool) {
	s.tree.Ascend(func(v T) bool { return fn(v) })
}

// Items returns the elements in order.
func (s *Set[T]) Items() []T {
	out := make([]T, 0, s.tree.Len())
	s.tree.Ascend(func(v T) bool {
		out = append(out, v)
		return true
	})

	return out
}

// Clear removes every element.
func (s *Set[T]) Clear() { s.tree.Clear(true) }
