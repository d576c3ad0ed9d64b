package rbtree

import (
	"fmt"
	"iter"

	"github.com/npillmayer/containers/iterator"
)

// Tree is a red-black tree of values V with unique keys K.
//
// A Tree must be created with New. All operations run in O(log n) unless
// noted otherwise.
type Tree[K, V any] struct {
	cfg Config[K, V]
	a   *arena[V]
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg, a: newArena[V]()}, nil
}

// Config returns a copy of the tree configuration.
func (t *Tree[K, V]) Config() Config[K, V] {
	return t.cfg
}

// KeyComp returns the key comparator.
func (t *Tree[K, V]) KeyComp() func(a, b K) bool {
	return t.cfg.Less
}

// Len returns the number of values in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.a.size
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

// MaxSize returns the maximum number of values a tree can hold.
func (t *Tree[K, V]) MaxSize() int {
	return maxNodes
}

func (t *Tree[K, V]) key(id nodeID) K {
	return t.cfg.KeyOf.ExtractKey(t.a.node(id).value)
}

func (t *Tree[K, V]) iter(id nodeID) Iterator[V] {
	return Iterator[V]{a: t.a, id: id}
}

// --- Positions -------------------------------------------------------------

// Begin returns an iterator to the smallest value, or End for an empty tree.
func (t *Tree[K, V]) Begin() Iterator[V] {
	if t.a.head.leftmost == none {
		return t.End()
	}
	return t.iter(t.a.head.leftmost)
}

// End returns the past-the-end iterator.
func (t *Tree[K, V]) End() Iterator[V] {
	return t.iter(headID)
}

// RBegin returns a reverse iterator to the largest value.
func (t *Tree[K, V]) RBegin() iterator.Reverse[Iterator[V], V] {
	return iterator.MakeReverse[Iterator[V], V](t.End())
}

// REnd returns the past-the-end reverse iterator.
func (t *Tree[K, V]) REnd() iterator.Reverse[Iterator[V], V] {
	return iterator.MakeReverse[Iterator[V], V](t.Begin())
}

// Min returns the smallest value, if any.
func (t *Tree[K, V]) Min() (V, bool) {
	if t.IsEmpty() {
		var zero V
		return zero, false
	}
	return t.a.node(t.a.head.leftmost).value, true
}

// Max returns the largest value, if any.
func (t *Tree[K, V]) Max() (V, bool) {
	if t.IsEmpty() {
		var zero V
		return zero, false
	}
	return t.a.node(t.a.head.rightmost).value, true
}

// --- Lookup ----------------------------------------------------------------

// lowerBound returns the first node in the subtree x whose key is not less
// than key, or y if there is none.
func (t *Tree[K, V]) lowerBound(x, y nodeID, key K) nodeID {
	for x != none {
		if !t.cfg.Less(t.key(x), key) {
			y = x
			x = t.a.node(x).left
		} else {
			x = t.a.node(x).right
		}
	}
	return y
}

// upperBound returns the first node in the subtree x whose key is greater
// than key, or y if there is none.
func (t *Tree[K, V]) upperBound(x, y nodeID, key K) nodeID {
	for x != none {
		if t.cfg.Less(key, t.key(x)) {
			y = x
			x = t.a.node(x).left
		} else {
			x = t.a.node(x).right
		}
	}
	return y
}

// LowerBound returns an iterator to the first value whose key is not less
// than key.
func (t *Tree[K, V]) LowerBound(key K) Iterator[V] {
	return t.iter(t.lowerBound(t.a.head.root, headID, key))
}

// UpperBound returns an iterator to the first value whose key is greater
// than key.
func (t *Tree[K, V]) UpperBound(key K) Iterator[V] {
	return t.iter(t.upperBound(t.a.head.root, headID, key))
}

// EqualRange returns the range of values with a key equivalent to key. As keys
// are unique, the range holds at most one value.
func (t *Tree[K, V]) EqualRange(key K) (Iterator[V], Iterator[V]) {
	x, y := t.a.head.root, headID
	for x != none {
		n := t.a.node(x)
		k := t.key(x)
		switch {
		case t.cfg.Less(k, key):
			x = n.right
		case t.cfg.Less(key, k):
			y = x
			x = n.left
		default:
			return t.iter(t.lowerBound(n.left, x, key)), t.iter(t.upperBound(n.right, y, key))
		}
	}
	return t.iter(y), t.iter(y)
}

func (t *Tree[K, V]) find(key K) nodeID {
	id := t.lowerBound(t.a.head.root, headID, key)
	if id == headID || t.cfg.Less(key, t.key(id)) {
		return headID
	}
	return id
}

// Find returns an iterator to the value with key, or End.
func (t *Tree[K, V]) Find(key K) Iterator[V] {
	return t.iter(t.find(key))
}

// At returns the value with key, or ErrOutOfRange if key is absent.
func (t *Tree[K, V]) At(key K) (V, error) {
	id := t.find(key)
	if id == headID {
		var zero V
		return zero, fmt.Errorf("%w: key %v not in tree", ErrOutOfRange, key)
	}
	return t.a.node(id).value, nil
}

// Contains reports whether a value with key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != headID
}

// Count returns the number of values with key, which is 0 or 1.
func (t *Tree[K, V]) Count(key K) int {
	if t.Contains(key) {
		return 1
	}
	return 0
}

// --- Modifiers -------------------------------------------------------------

// Insert adds value unless a value with an equivalent key is present. It
// returns an iterator to the value with that key and whether an insertion took
// place.
func (t *Tree[K, V]) Insert(value V) (Iterator[V], bool) {
	key := t.cfg.KeyOf.ExtractKey(value)
	x, parent := t.a.head.root, headID
	left := true
	for x != none {
		parent = x
		k := t.key(x)
		switch {
		case t.cfg.Less(key, k):
			x, left = t.a.node(x).left, true
		case t.cfg.Less(k, key):
			x, left = t.a.node(x).right, false
		default:
			return t.iter(x), false
		}
	}
	if t.a.size >= maxNodes {
		panic(fmt.Errorf("%w: tree holds %d nodes", ErrLength, t.a.size))
	}
	z := t.a.alloc(value)
	t.a.link(z, parent, left)
	return t.iter(z), true
}

// Erase removes the value with key and returns the number of values removed.
func (t *Tree[K, V]) Erase(key K) int {
	id := t.find(key)
	if id == headID {
		return 0
	}
	t.a.unlink(id)
	return 1
}

// EraseAt removes the value at pos and returns an iterator to its successor.
// pos must be a dereferenceable iterator of t.
func (t *Tree[K, V]) EraseAt(pos Iterator[V]) Iterator[V] {
	assert(pos.a == t.a, "rbtree: iterator does not belong to tree")
	assert(pos.id > headID, "rbtree: erase at end iterator")
	next := t.a.successor(pos.id)
	t.a.unlink(pos.id)
	return t.iter(next)
}

// EraseRange removes the values in [first, last) and returns last.
func (t *Tree[K, V]) EraseRange(first, last Iterator[V]) Iterator[V] {
	if first.Equal(t.Begin()) && last.Equal(t.End()) {
		t.Clear()
		return t.End()
	}
	for !first.Equal(last) {
		first = t.EraseAt(first)
	}
	return last
}

// Clear removes all values. Every iterator into the tree is invalidated.
func (t *Tree[K, V]) Clear() {
	tracer().Debugf("rbtree: clear %d nodes", t.a.size)
	t.a.reset()
}

// Swap exchanges the contents of t and other in O(1). Iterators keep denoting
// their values, which now belong to the other tree.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	tracer().Debugf("rbtree: swap trees of size %d and %d", t.Len(), other.Len())
	t.a, other.a = other.a, t.a
	t.cfg, other.cfg = other.cfg, t.cfg
}

// Clone returns a deep copy of t with identical shape and colors. Values are
// copied by assignment. Clone takes O(n).
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	if t == nil {
		return nil
	}
	tracer().Debugf("rbtree: clone tree of size %d", t.a.size)
	c := &Tree[K, V]{cfg: t.cfg, a: newArena[V]()}
	src, dst := t.a, c.a
	if src.head.root == none {
		return c
	}
	type job struct {
		from, parent nodeID
		left         bool
	}
	stack := []job{{from: src.head.root, parent: headID}}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sn := src.node(j.from)
		id := dst.alloc(sn.value)
		n := dst.node(id)
		n.color = sn.color
		n.parent = j.parent
		switch {
		case j.parent == headID:
			dst.head.root = id
		case j.left:
			dst.node(j.parent).left = id
		default:
			dst.node(j.parent).right = id
		}
		if sn.right != none {
			stack = append(stack, job{from: sn.right, parent: id})
		}
		if sn.left != none {
			stack = append(stack, job{from: sn.left, parent: id, left: true})
		}
	}
	dst.head.leftmost = dst.minimum(dst.head.root)
	dst.head.rightmost = dst.maximum(dst.head.root)
	dst.size = src.size
	return c
}

// --- Iteration -------------------------------------------------------------

// All iterates over the values in ascending key order.
func (t *Tree[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := t.Begin(); !it.IsEnd(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward iterates over the values in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		if t.IsEmpty() {
			return
		}
		it := t.End()
		for {
			it = it.Prev()
			if !yield(it.Value()) || it.id == t.a.head.leftmost {
				return
			}
		}
	}
}
