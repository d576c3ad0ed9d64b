package containers

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/npillmayer/containers/iterator"
	"github.com/npillmayer/containers/rbtree"
)

// Pair is the element type of maps.
type Pair[K, V any] = rbtree.Pair[K, V]

// MapIterator is a bidirectional position within a map.
type MapIterator[K, V any] = rbtree.Iterator[Pair[K, V]]

// Map is an ordered map with unique keys. Maps must be created with NewMap or
// NewMapFunc.
type Map[K, V any] struct {
	tree *rbtree.Tree[K, Pair[K, V]]
}

// NewMap creates an empty map ordered by the natural ordering of K.
func NewMap[K constraints.Ordered, V any]() *Map[K, V] {
	tree, err := rbtree.New(rbtree.MapConfig[K, V]())
	if err != nil {
		panic(err)
	}
	return &Map[K, V]{tree: tree}
}

// NewMapFunc creates an empty map ordered by less.
func NewMapFunc[K, V any](less func(a, b K) bool) (*Map[K, V], error) {
	if less == nil {
		return nil, fmt.Errorf("%w: map needs a key comparator", ErrIllegalArguments)
	}
	tree, err := rbtree.New(rbtree.Config[K, Pair[K, V]]{
		Less:  less,
		KeyOf: rbtree.SelectFirst[K, V]{},
	})
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// CollectMap creates a map from the key/value pairs of seq. For repeated
// keys, the first value wins.
func CollectMap[K constraints.Ordered, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	m.InsertAll(seq)
	return m
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Empty reports whether the map has no entries.
func (m *Map[K, V]) Empty() bool {
	return m.tree.IsEmpty()
}

// MaxSize returns the maximum number of entries a map can hold.
func (m *Map[K, V]) MaxSize() int {
	return m.tree.MaxSize()
}

// KeyComp returns the key ordering.
func (m *Map[K, V]) KeyComp() func(a, b K) bool {
	return m.tree.KeyComp()
}

// ValueComp returns the ordering of entries, which compares their keys.
func (m *Map[K, V]) ValueComp() func(a, b Pair[K, V]) bool {
	less := m.tree.KeyComp()
	return func(a, b Pair[K, V]) bool {
		return less(a.First, b.First)
	}
}

// Insert adds an entry for key unless key is present. It returns the position
// of the entry for key and whether an insertion took place.
func (m *Map[K, V]) Insert(key K, value V) (MapIterator[K, V], bool) {
	return m.tree.Insert(rbtree.MakePair(key, value))
}

// InsertHint is like Insert. The hint is accepted for compatibility and not
// used for positioning.
func (m *Map[K, V]) InsertHint(hint MapIterator[K, V], key K, value V) MapIterator[K, V] {
	it, _ := m.Insert(key, value)
	return it
}

// InsertAll inserts all key/value pairs of seq and returns the number of new
// entries.
func (m *Map[K, V]) InsertAll(seq iter.Seq2[K, V]) int {
	n, seen := 0, 0
	for k, v := range seq {
		seen++
		if _, ok := m.Insert(k, v); ok {
			n++
		}
	}
	T().Debugf("map: inserted %d of %d entries", n, seen)
	return n
}

// At returns the value for key, or ErrOutOfRange if key is absent.
func (m *Map[K, V]) At(key K) (V, error) {
	p, err := m.tree.At(key)
	return p.Second, err
}

// Index returns a pointer to the value for key, inserting an entry with a zero
// value if key is absent. The pointer stays valid until the entry is erased.
func (m *Map[K, V]) Index(key K) *V {
	var zero V
	it, _ := m.Insert(key, zero)
	return &it.Ptr().Second
}

// Erase removes the entry for key and returns the number of entries removed.
func (m *Map[K, V]) Erase(key K) int {
	return m.tree.Erase(key)
}

// EraseAt removes the entry at pos and returns the position following it.
func (m *Map[K, V]) EraseAt(pos MapIterator[K, V]) MapIterator[K, V] {
	return m.tree.EraseAt(pos)
}

// EraseRange removes the entries in [first, last) and returns last.
func (m *Map[K, V]) EraseRange(first, last MapIterator[K, V]) MapIterator[K, V] {
	return m.tree.EraseRange(first, last)
}

// Find returns the position of the entry for key, or End.
func (m *Map[K, V]) Find(key K) MapIterator[K, V] {
	return m.tree.Find(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.tree.Contains(key)
}

// Count returns the number of entries for key, which is 0 or 1.
func (m *Map[K, V]) Count(key K) int {
	return m.tree.Count(key)
}

// LowerBound returns the first entry whose key is not less than key.
func (m *Map[K, V]) LowerBound(key K) MapIterator[K, V] {
	return m.tree.LowerBound(key)
}

// UpperBound returns the first entry whose key is greater than key.
func (m *Map[K, V]) UpperBound(key K) MapIterator[K, V] {
	return m.tree.UpperBound(key)
}

// EqualRange returns [LowerBound(key), UpperBound(key)).
func (m *Map[K, V]) EqualRange(key K) (MapIterator[K, V], MapIterator[K, V]) {
	return m.tree.EqualRange(key)
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Swap exchanges the contents of m and other in O(1).
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tree.Swap(other.tree)
}

// Clone returns an independent copy of m. Values are copied by assignment.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// Check validates the internal tree structure.
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}

func (m *Map[K, V]) Begin() MapIterator[K, V] {
	return m.tree.Begin()
}

func (m *Map[K, V]) End() MapIterator[K, V] {
	return m.tree.End()
}

func (m *Map[K, V]) RBegin() iterator.Reverse[MapIterator[K, V], Pair[K, V]] {
	return m.tree.RBegin()
}

func (m *Map[K, V]) REnd() iterator.Reverse[MapIterator[K, V], Pair[K, V]] {
	return m.tree.REnd()
}

// All iterates over the entries in key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range m.tree.All() {
			if !yield(p.First, p.Second) {
				return
			}
		}
	}
}

// Keys iterates over the keys in order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := range m.tree.All() {
			if !yield(p.First) {
				return
			}
		}
	}
}

// Values iterates over the values in key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := range m.tree.All() {
			if !yield(p.Second) {
				return
			}
		}
	}
}

// --- Comparison ------------------------------------------------------------

// MapEqual reports whether a and b hold equal entries.
func MapEqual[K, V comparable](a, b *Map[K, V]) bool {
	return rbtree.Equal(a.tree, b.tree)
}

// MapEqualFunc is like MapEqual, comparing entries with eq.
func MapEqualFunc[K, V any](a, b *Map[K, V], eq func(x, y Pair[K, V]) bool) bool {
	return rbtree.EqualFunc(a.tree, b.tree, eq)
}

// MapLess reports whether the entries of a order lexicographically before
// those of b. Entries compare by key first, then by value.
func MapLess[K, V constraints.Ordered](a, b *Map[K, V]) bool {
	return MapLessFunc(a, b, func(x, y Pair[K, V]) bool {
		if x.First != y.First {
			return x.First < y.First
		}
		return x.Second < y.Second
	})
}

// MapLessFunc is like MapLess, ordering entries with less.
func MapLessFunc[K, V any](a, b *Map[K, V], less func(x, y Pair[K, V]) bool) bool {
	return rbtree.LessFunc(a.tree, b.tree, less)
}
