package rbtree

import "github.com/npillmayer/containers/iterator"

// Iterator is a bidirectional position within a tree.
//
// The zero Iterator denotes no position and must not be used except for
// comparison.
type Iterator[V any] struct {
	a  *arena[V]
	id nodeID
}

var _ iterator.Bidirectional[Iterator[int], int] = Iterator[int]{}

// Value returns the denoted value. Dereferencing End panics.
func (it Iterator[V]) Value() V {
	return *it.Ptr()
}

// Ptr returns a pointer to the denoted value. The pointer stays valid until the
// value is erased. Changes through the pointer must not alter the value's key.
func (it Iterator[V]) Ptr() *V {
	assert(it.a != nil, "rbtree: dereference of zero iterator")
	assert(it.id > headID, "rbtree: dereference of end iterator")
	return &it.a.node(it.id).value
}

// Next returns the iterator to the in-order successor. Incrementing the last
// value yields End.
func (it Iterator[V]) Next() Iterator[V] {
	return Iterator[V]{a: it.a, id: it.a.successor(it.id)}
}

// Prev returns the iterator to the in-order predecessor. Decrementing End
// yields the last value.
func (it Iterator[V]) Prev() Iterator[V] {
	return Iterator[V]{a: it.a, id: it.a.predecessor(it.id)}
}

func (it Iterator[V]) Equal(other Iterator[V]) bool {
	return it.a == other.a && it.id == other.id
}

// IsEnd reports whether it is a past-the-end iterator.
func (it Iterator[V]) IsEnd() bool {
	return it.id == headID
}
