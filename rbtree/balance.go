package rbtree

// replaceChild makes repl take the place of child below p.
func (a *arena[V]) replaceChild(p, child, repl nodeID) {
	if p == headID {
		a.head.root = repl
		return
	}
	pn := a.node(p)
	if pn.left == child {
		pn.left = repl
	} else {
		pn.right = repl
	}
}

// rotateLeft lifts the right child y of x into x's place:
//
//	  x              y
//	 / \            / \
//	a   y    =>    x   c
//	   / \        / \
//	  b   c      a   b
func (a *arena[V]) rotateLeft(x nodeID) {
	xn := a.node(x)
	y := xn.right
	yn := a.node(y)
	xn.right = yn.left
	if yn.left != none {
		a.node(yn.left).parent = x
	}
	yn.parent = xn.parent
	a.replaceChild(xn.parent, x, y)
	yn.left = x
	xn.parent = y
}

func (a *arena[V]) rotateRight(x nodeID) {
	xn := a.node(x)
	y := xn.left
	yn := a.node(y)
	xn.left = yn.right
	if yn.right != none {
		a.node(yn.right).parent = x
	}
	yn.parent = xn.parent
	a.replaceChild(xn.parent, x, y)
	yn.right = x
	xn.parent = y
}

// link attaches the detached node z as a child of parent and rebalances.
func (a *arena[V]) link(z, parent nodeID, left bool) {
	a.node(z).parent = parent
	switch {
	case parent == headID:
		a.head.root, a.head.leftmost, a.head.rightmost = z, z, z
	case left:
		a.node(parent).left = z
		if parent == a.head.leftmost {
			a.head.leftmost = z
		}
	default:
		a.node(parent).right = z
		if parent == a.head.rightmost {
			a.head.rightmost = z
		}
	}
	a.size++
	a.insertFixup(z)
}

// insertFixup restores the red-black properties after z has been linked
// as a red leaf.
func (a *arena[V]) insertFixup(z nodeID) {
	for z != a.head.root && a.isRed(a.node(z).parent) {
		p := a.node(z).parent
		g := a.node(p).parent // p is red, so it is not the root
		gn := a.node(g)
		if p == gn.left {
			if u := gn.right; a.isRed(u) {
				a.node(p).color = black
				a.node(u).color = black
				gn.color = red
				z = g
				continue
			}
			if z == a.node(p).right {
				z = p
				a.rotateLeft(z)
				p = a.node(z).parent
			}
			a.node(p).color = black
			gn.color = red
			a.rotateRight(g)
		} else {
			if u := gn.left; a.isRed(u) {
				a.node(p).color = black
				a.node(u).color = black
				gn.color = red
				z = g
				continue
			}
			if z == a.node(p).left {
				z = p
				a.rotateRight(z)
				p = a.node(z).parent
			}
			a.node(p).color = black
			gn.color = red
			a.rotateLeft(g)
		}
	}
	a.node(a.head.root).color = black
}

// transplant replaces the subtree rooted at u by the subtree rooted at v.
func (a *arena[V]) transplant(u, v nodeID) {
	p := a.node(u).parent
	a.replaceChild(p, u, v)
	if v != none {
		a.node(v).parent = p
	}
}

// unlink removes node z from the tree and releases it.
//
// A node with two children trades places with its in-order successor first,
// so the node actually detached has at most one child. Nodes are relinked,
// never copied, so ids of other nodes stay valid.
func (a *arena[V]) unlink(z nodeID) {
	if z == a.head.leftmost {
		a.head.leftmost = none
	}
	if z == a.head.rightmost {
		a.head.rightmost = none
	}
	zn := a.node(z)
	removed := zn.color
	var x, xp nodeID // x replaces the detached node, xp is its parent
	switch {
	case zn.left == none:
		x, xp = zn.right, zn.parent
		a.transplant(z, x)
	case zn.right == none:
		x, xp = zn.left, zn.parent
		a.transplant(z, x)
	default:
		y := a.minimum(zn.right)
		yn := a.node(y)
		removed = yn.color
		x = yn.right
		if yn.parent == z {
			xp = y
		} else {
			xp = yn.parent
			a.transplant(y, x)
			yn.right = zn.right
			a.node(yn.right).parent = y
		}
		a.transplant(z, y)
		yn.left = zn.left
		a.node(yn.left).parent = y
		yn.color = zn.color
	}
	if removed == black {
		a.eraseFixup(x, xp)
	}
	a.release(z)
	a.size--
	if root := a.head.root; root != none {
		if a.head.leftmost == none {
			a.head.leftmost = a.minimum(root)
		}
		if a.head.rightmost == none {
			a.head.rightmost = a.maximum(root)
		}
	}
}

// eraseFixup removes a surplus black from x, which may be none. p is the
// parent of x.
func (a *arena[V]) eraseFixup(x, p nodeID) {
	for x != a.head.root && !a.isRed(x) {
		pn := a.node(p)
		if x == pn.left {
			w := pn.right
			wn := a.node(w)
			if wn.color == red {
				wn.color = black
				pn.color = red
				a.rotateLeft(p)
				w = pn.right
				wn = a.node(w)
			}
			if !a.isRed(wn.left) && !a.isRed(wn.right) {
				wn.color = red
				x, p = p, pn.parent
				continue
			}
			if !a.isRed(wn.right) { // right-left
				a.node(wn.left).color = black
				wn.color = red
				a.rotateRight(w)
				w = pn.right
				wn = a.node(w)
			}
			// right-right
			wn.color = pn.color
			pn.color = black
			a.node(wn.right).color = black
			a.rotateLeft(p)
			x = a.head.root
		} else {
			w := pn.left
			wn := a.node(w)
			if wn.color == red {
				wn.color = black
				pn.color = red
				a.rotateRight(p)
				w = pn.left
				wn = a.node(w)
			}
			if !a.isRed(wn.left) && !a.isRed(wn.right) {
				wn.color = red
				x, p = p, pn.parent
				continue
			}
			if !a.isRed(wn.left) { // left-right
				a.node(wn.right).color = black
				wn.color = red
				a.rotateLeft(w)
				w = pn.left
				wn = a.node(w)
			}
			// left-left
			wn.color = pn.color
			pn.color = black
			a.node(wn.left).color = black
			a.rotateRight(p)
			x = a.head.root
		}
	}
	if x != none {
		a.node(x).color = black
	}
}
