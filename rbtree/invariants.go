package rbtree

import (
	"fmt"
	"math/bits"
)

// Check validates the structural and red-black invariants of the tree:
// consistent parent links and header caches, a black root, no red node with
// a red child, uniform black-height, strictly ascending keys and a matching
// element count.
//
// Check takes O(n) and is meant for tests and debugging.
func (t *Tree[K, V]) Check() error {
	if t == nil || t.a == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	err := t.check()
	if err != nil {
		tracer().Errorf("rbtree: %v", err)
	}
	return err
}

func (t *Tree[K, V]) check() error {
	a := t.a
	root := a.head.root
	if root == none {
		if a.size != 0 || a.head.leftmost != none || a.head.rightmost != none {
			return fmt.Errorf("%w: empty tree with size %d or stale header", ErrInvalidTree, a.size)
		}
		return nil
	}
	if a.node(root).parent != headID {
		return fmt.Errorf("%w: root %d not linked to header", ErrInvalidTree, root)
	}
	if a.node(root).color != black {
		return fmt.Errorf("%w: root is red", ErrInvalidTree)
	}
	// height <= 2*log2(n+1) for every red-black tree
	maxDepth := 2 * bits.Len(uint(a.size+1))
	count, _, err := t.checkNode(root, 1, maxDepth)
	if err != nil {
		return err
	}
	if count != a.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrInvalidTree, count, a.size)
	}
	if lo := a.minimum(root); a.head.leftmost != lo {
		return fmt.Errorf("%w: leftmost cache is %d, minimum is %d", ErrInvalidTree, a.head.leftmost, lo)
	}
	if hi := a.maximum(root); a.head.rightmost != hi {
		return fmt.Errorf("%w: rightmost cache is %d, maximum is %d", ErrInvalidTree, a.head.rightmost, hi)
	}
	steps, prev := 1, a.head.leftmost
	for id := a.successor(prev); id != headID; id = a.successor(id) {
		if !t.cfg.Less(t.key(prev), t.key(id)) {
			return fmt.Errorf("%w: keys not ascending at node %d", ErrInvalidTree, id)
		}
		if steps++; steps > a.size {
			return fmt.Errorf("%w: in-order walk exceeds size %d", ErrInvalidTree, a.size)
		}
		prev = id
	}
	if steps != a.size {
		return fmt.Errorf("%w: in-order walk visits %d of %d nodes", ErrInvalidTree, steps, a.size)
	}
	return nil
}

// checkNode validates the subtree at id and returns its node count and
// black-height.
func (t *Tree[K, V]) checkNode(id nodeID, depth, maxDepth int) (count int, blackHeight int, err error) {
	if id == none {
		return 0, 1, nil
	}
	if depth > maxDepth {
		return 0, 0, fmt.Errorf("%w: depth %d exceeds bound %d", ErrInvalidTree, depth, maxDepth)
	}
	n := t.a.node(id)
	for _, child := range [2]nodeID{n.left, n.right} {
		if child == none {
			continue
		}
		if t.a.node(child).parent != id {
			return 0, 0, fmt.Errorf("%w: child %d has parent %d, expected %d",
				ErrInvalidTree, child, t.a.node(child).parent, id)
		}
		if n.color == red && t.a.node(child).color == red {
			return 0, 0, fmt.Errorf("%w: red node %d has red child %d", ErrInvalidTree, id, child)
		}
	}
	if n.left != none && !t.cfg.Less(t.key(n.left), t.key(id)) {
		return 0, 0, fmt.Errorf("%w: left child %d not less than %d", ErrInvalidTree, n.left, id)
	}
	if n.right != none && !t.cfg.Less(t.key(id), t.key(n.right)) {
		return 0, 0, fmt.Errorf("%w: right child %d not greater than %d", ErrInvalidTree, n.right, id)
	}
	lc, lh, err := t.checkNode(n.left, depth+1, maxDepth)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(n.right, depth+1, maxDepth)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, fmt.Errorf("%w: black-height %d left and %d right of node %d",
			ErrInvalidTree, lh, rh, id)
	}
	if n.color == black {
		lh++
	}
	return lc + rc + 1, lh, nil
}
