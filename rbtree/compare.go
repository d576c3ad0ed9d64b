package rbtree

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/containers/iterator"
)

// Equal reports whether a and b hold the same number of values and the values
// are pairwise equal in key order.
func Equal[K any, V comparable](a, b *Tree[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal, comparing values with eq.
func EqualFunc[K, V any](a, b *Tree[K, V], eq func(x, y V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	return iterator.EqualFunc[Iterator[V], Iterator[V], V](a.Begin(), a.End(), b.Begin(), eq)
}

// LessFunc reports whether the in-order sequence of a orders lexicographically
// before that of b, ordering values with less.
func LessFunc[K, V any](a, b *Tree[K, V], less func(x, y V) bool) bool {
	return iterator.LexicographicalLessFunc[Iterator[V], Iterator[V], V](a.Begin(), a.End(), b.Begin(), b.End(), less)
}

// KeyLess reports whether the key sequence of a orders lexicographically
// before that of b under a's key comparator.
func KeyLess[K, V any](a, b *Tree[K, V]) bool {
	less := a.KeyComp()
	keyOf := a.cfg.KeyOf
	return LessFunc(a, b, func(x, y V) bool {
		return less(keyOf.ExtractKey(x), keyOf.ExtractKey(y))
	})
}

// Less reports whether the in-order sequence of a orders lexicographically
// before that of b.
func Less[K any, V constraints.Ordered](a, b *Tree[K, V]) bool {
	return iterator.LexicographicalLess[Iterator[V], Iterator[V], V](a.Begin(), a.End(), b.Begin(), b.End())
}
