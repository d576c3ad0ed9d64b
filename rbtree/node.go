package rbtree

import "math"

type color uint8

const (
	red color = iota
	black
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// nodeID addresses a node within an arena.
type nodeID uint32

const (
	none    nodeID = 0 // no node
	headID  nodeID = 1 // the header
	firstID nodeID = 2 // first id handed out for value nodes
)

const (
	blockShift = 8
	blockSize  = 1 << blockShift
	blockMask  = blockSize - 1
)

// maxNodes is the number of value nodes an arena can address.
const maxNodes = min(math.MaxUint32-1, math.MaxInt)

type node[V any] struct {
	parent, left, right nodeID
	color               color
	value               V
}

// header is the sentinel of a tree. It is the parent of the root and caches
// the leftmost and rightmost nodes. An empty tree has none in all fields.
type header struct {
	root, leftmost, rightmost nodeID
}

// arena owns all nodes of a tree. Nodes are allocated in fixed-size blocks,
// so node addresses stay stable while the arena grows.
type arena[V any] struct {
	head   header
	blocks [][]node[V]
	free   []nodeID
	next   nodeID // next never-used id
	size   int
}

func newArena[V any]() *arena[V] {
	return &arena[V]{next: firstID}
}

func (a *arena[V]) node(id nodeID) *node[V] {
	return &a.blocks[id>>blockShift][id&blockMask]
}

// alloc creates a detached red node holding value.
func (a *arena[V]) alloc(value V) nodeID {
	var id nodeID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		assert(a.next != none, "rbtree: node arena exhausted")
		id = a.next
		if int(id>>blockShift) == len(a.blocks) {
			a.blocks = append(a.blocks, make([]node[V], blockSize))
		}
		a.next++
	}
	*a.node(id) = node[V]{color: red, value: value}
	return id
}

// release returns a node to the free list, dropping its value.
func (a *arena[V]) release(id nodeID) {
	*a.node(id) = node[V]{}
	a.free = append(a.free, id)
}

// reset drops every node at once.
func (a *arena[V]) reset() {
	a.head = header{}
	a.blocks = nil
	a.free = nil
	a.next = firstID
	a.size = 0
}

func (a *arena[V]) isRed(id nodeID) bool {
	return id != none && a.node(id).color == red
}

func (a *arena[V]) minimum(id nodeID) nodeID {
	for l := a.node(id).left; l != none; l = a.node(id).left {
		id = l
	}
	return id
}

func (a *arena[V]) maximum(id nodeID) nodeID {
	for r := a.node(id).right; r != none; r = a.node(id).right {
		id = r
	}
	return id
}

// successor returns the in-order successor of id, or headID for the rightmost
// node.
func (a *arena[V]) successor(id nodeID) nodeID {
	assert(id != headID, "rbtree: increment of end iterator")
	n := a.node(id)
	if n.right != none {
		return a.minimum(n.right)
	}
	p := n.parent
	for p != headID && id == a.node(p).right {
		id = p
		p = a.node(p).parent
	}
	return p
}

// predecessor returns the in-order predecessor of id. The predecessor of
// headID is the rightmost node.
func (a *arena[V]) predecessor(id nodeID) nodeID {
	if id == headID {
		assert(a.head.rightmost != none, "rbtree: decrement of end iterator of empty tree")
		return a.head.rightmost
	}
	n := a.node(id)
	if n.left != none {
		return a.maximum(n.left)
	}
	p := n.parent
	for p != headID && id == a.node(p).left {
		id = p
		p = a.node(p).parent
	}
	assert(p != headID, "rbtree: decrement of begin iterator")
	return p
}
