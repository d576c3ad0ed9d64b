package containers

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/npillmayer/containers/iterator"
	"github.com/npillmayer/containers/rbtree"
)

// SetIterator is a bidirectional position within a set. Elements must not be
// modified through an iterator.
type SetIterator[K any] = rbtree.Iterator[K]

// Set is an ordered set of unique keys. Sets must be created with NewSet or
// NewSetFunc.
type Set[K any] struct {
	tree *rbtree.Tree[K, K]
}

// NewSet creates an empty set ordered by the natural ordering of K.
func NewSet[K constraints.Ordered]() *Set[K] {
	tree, err := rbtree.New(rbtree.SetConfig[K]())
	if err != nil {
		panic(err)
	}
	return &Set[K]{tree: tree}
}

// NewSetFunc creates an empty set ordered by less.
func NewSetFunc[K any](less func(a, b K) bool) (*Set[K], error) {
	if less == nil {
		return nil, fmt.Errorf("%w: set needs a key comparator", ErrIllegalArguments)
	}
	tree, err := rbtree.New(rbtree.Config[K, K]{Less: less, KeyOf: rbtree.Identity[K]{}})
	if err != nil {
		return nil, err
	}
	return &Set[K]{tree: tree}, nil
}

// CollectSet creates a set from the keys of seq.
func CollectSet[K constraints.Ordered](seq iter.Seq[K]) *Set[K] {
	s := NewSet[K]()
	s.InsertAll(seq)
	return s
}

func (s *Set[K]) Len() int {
	return s.tree.Len()
}

func (s *Set[K]) Empty() bool {
	return s.tree.IsEmpty()
}

func (s *Set[K]) MaxSize() int {
	return s.tree.MaxSize()
}

// KeyComp returns the key ordering.
func (s *Set[K]) KeyComp() func(a, b K) bool {
	return s.tree.KeyComp()
}

// ValueComp returns the key ordering, as set elements are keys.
func (s *Set[K]) ValueComp() func(a, b K) bool {
	return s.tree.KeyComp()
}

// Insert adds key unless an equivalent key is present. It returns the
// position of the element and whether an insertion took place.
func (s *Set[K]) Insert(key K) (SetIterator[K], bool) {
	return s.tree.Insert(key)
}

// InsertHint is like Insert. The hint is not used for positioning.
func (s *Set[K]) InsertHint(hint SetIterator[K], key K) SetIterator[K] {
	it, _ := s.tree.Insert(key)
	return it
}

// InsertAll inserts all keys of seq and returns the number of new elements.
func (s *Set[K]) InsertAll(seq iter.Seq[K]) int {
	n, seen := 0, 0
	for k := range seq {
		seen++
		if _, ok := s.tree.Insert(k); ok {
			n++
		}
	}
	T().Debugf("set: inserted %d of %d keys", n, seen)
	return n
}

// Erase removes key and returns the number of elements removed.
func (s *Set[K]) Erase(key K) int {
	return s.tree.Erase(key)
}

// EraseAt removes the element at pos and returns the position following it.
func (s *Set[K]) EraseAt(pos SetIterator[K]) SetIterator[K] {
	return s.tree.EraseAt(pos)
}

// EraseRange removes the elements in [first, last) and returns last.
func (s *Set[K]) EraseRange(first, last SetIterator[K]) SetIterator[K] {
	return s.tree.EraseRange(first, last)
}

func (s *Set[K]) Find(key K) SetIterator[K] {
	return s.tree.Find(key)
}

func (s *Set[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

func (s *Set[K]) Count(key K) int {
	return s.tree.Count(key)
}

func (s *Set[K]) LowerBound(key K) SetIterator[K] {
	return s.tree.LowerBound(key)
}

func (s *Set[K]) UpperBound(key K) SetIterator[K] {
	return s.tree.UpperBound(key)
}

func (s *Set[K]) EqualRange(key K) (SetIterator[K], SetIterator[K]) {
	return s.tree.EqualRange(key)
}

func (s *Set[K]) Clear() {
	s.tree.Clear()
}

// Swap exchanges the contents of s and other in O(1).
func (s *Set[K]) Swap(other *Set[K]) {
	s.tree.Swap(other.tree)
}

// Clone returns an independent copy of s.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{tree: s.tree.Clone()}
}

// Check validates the internal tree structure.
func (s *Set[K]) Check() error {
	return s.tree.Check()
}

func (s *Set[K]) Begin() SetIterator[K] {
	return s.tree.Begin()
}

func (s *Set[K]) End() SetIterator[K] {
	return s.tree.End()
}

func (s *Set[K]) RBegin() iterator.Reverse[SetIterator[K], K] {
	return s.tree.RBegin()
}

func (s *Set[K]) REnd() iterator.Reverse[SetIterator[K], K] {
	return s.tree.REnd()
}

// All iterates over the keys in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	return s.tree.All()
}

// Backward iterates over the keys in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return s.tree.Backward()
}

// SetEqual reports whether a and b hold equal keys.
func SetEqual[K comparable](a, b *Set[K]) bool {
	return rbtree.Equal(a.tree, b.tree)
}

// SetEqualFunc is like SetEqual, comparing keys with eq.
func SetEqualFunc[K any](a, b *Set[K], eq func(x, y K) bool) bool {
	return rbtree.EqualFunc(a.tree, b.tree, eq)
}

// SetLess reports whether the keys of a order lexicographically before those
// of b.
func SetLess[K constraints.Ordered](a, b *Set[K]) bool {
	return rbtree.Less(a.tree, b.tree)
}

// SetLessFunc is like SetLess, ordering keys with less.
func SetLessFunc[K any](a, b *Set[K], less func(x, y K) bool) bool {
	return rbtree.LessFunc(a.tree, b.tree, less)
}
