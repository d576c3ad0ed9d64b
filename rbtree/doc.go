/*
Package rbtree provides a generic red-black tree with unique keys.

The tree stores values of type V and orders them by keys of type K. A key
extractor maps each stored value to its key, so the same engine serves
set-like use (Identity, V == K) and map-like use (SelectFirst, V is a
Pair[K, M]). Two keys are equivalent iff neither orders before the other.

Nodes live in an arena owned by the tree and are addressed by integer ids.
Parent links are id lookups, children are the only structural edges. A
dedicated header, distinct from every value node, is the parent of the root,
caches the leftmost and rightmost nodes, and is the position returned by End.

Iterators denote nodes, not values. They stay valid across inserts and across
erasure of other elements, and they follow their elements when two trees are
swapped. Erasing an element invalidates iterators pointing to it; Clear
invalidates all of them.

Current status:
  - insert with recolor/rotate fix-up,
  - erase with successor relinking and double-black fix-up,
  - find, lower and upper bounds, equal range,
  - deep clone without recursion, O(1) swap,
  - invariant checker (`Check`), Graphviz and console output for debugging.

Trees are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
