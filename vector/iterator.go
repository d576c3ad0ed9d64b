package vector

import "github.com/npillmayer/containers/iterator"

// Iterator is a random access position within a vector.
//
// An iterator stores an index, not a pointer: after Insert or Erase it keeps
// its index and may therefore denote a different element.
type Iterator[T any] struct {
	v   *Vector[T]
	pos int
}

var _ iterator.RandomAccess[Iterator[int], int] = Iterator[int]{}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v, pos: 0}
}

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, pos: v.Len()}
}

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T]) RBegin() iterator.ReverseRandom[Iterator[T], T] {
	return iterator.MakeReverseRandom[Iterator[T], T](v.End())
}

// REnd returns a reverse iterator one before the first element.
func (v *Vector[T]) REnd() iterator.ReverseRandom[Iterator[T], T] {
	return iterator.MakeReverseRandom[Iterator[T], T](v.Begin())
}

// Index returns the position of it within its vector.
func (it Iterator[T]) Index() int {
	return it.pos
}

// Value returns the denoted element.
func (it Iterator[T]) Value() T {
	return it.v.buf[it.pos]
}

// Ptr returns a pointer to the denoted element, valid until the next
// reallocation.
func (it Iterator[T]) Ptr() *T {
	return &it.v.buf[it.pos]
}

func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{v: it.v, pos: it.pos + 1}
}

func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{v: it.v, pos: it.pos - 1}
}

// Add returns an iterator n positions away.
func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{v: it.v, pos: it.pos + n}
}

// Diff returns it - other. Both iterators must belong to the same vector.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	assert(it.v == other.v, "vector iterators of different vectors")
	return it.pos - other.pos
}

// At returns the element n positions away from it.
func (it Iterator[T]) At(n int) T {
	return it.v.buf[it.pos+n]
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.pos == other.pos
}

func (it Iterator[T]) Less(other Iterator[T]) bool {
	assert(it.v == other.v, "vector iterators of different vectors")
	return it.pos < other.pos
}
