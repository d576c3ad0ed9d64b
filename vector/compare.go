package vector

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/containers/iterator"
)

// Equal reports whether a and b have the same length and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, comparing elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	return iterator.EqualFunc[Iterator[T], Iterator[T], T](a.Begin(), a.End(), b.Begin(), eq)
}

// Less reports whether a orders lexicographically before b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return iterator.LexicographicalLess[Iterator[T], Iterator[T], T](a.Begin(), a.End(), b.Begin(), b.End())
}

// LessFunc is like Less, ordering elements with less.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	return iterator.LexicographicalLessFunc[Iterator[T], Iterator[T], T](a.Begin(), a.End(), b.Begin(), b.End(), less)
}
