/*
Package vector provides a contiguous, growable sequence container.

A Vector owns a buffer described by its size and capacity. Elements in
[0, Len()) are live, the remaining capacity is reserved storage. Capacity
grows only on demand and never shrinks, except that Clear keeps it and a
fresh Vector starts without any.

Growth policy:
  - PushBack on a full vector doubles the capacity, starting at 1
    (1, 2, 4, 8, …).
  - Insert on a full vector reallocates to exactly Len()+n.
  - Reserve(n) reallocates to exactly n, if n exceeds the capacity.

Every reallocation invalidates all pointers obtained through Ptr, Front,
Back or Data. Erase and Insert without reallocation shift elements, so
iterators at or after the edit point denote different elements afterwards.

Vectors are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package vector

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
