/*
Package iterator defines the iterator contracts shared by the containers of
this module, together with reverse adaptors and a small set of range
algorithms.

Iterators are values. Stepping an iterator returns a new iterator and leaves
the receiver untouched:

	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		fmt.Println(it.Value())
	}

Two categories exist:
  - Bidirectional iterators step forward and backward (tree containers).
  - RandomAccess iterators additionally support offsets and distances
    (contiguous containers).

Reverse and ReverseRandom turn an iterator of either category into its
reverse-order counterpart. A reverse iterator stores the base position one
past the element it denotes, i.e. Reverse(End) denotes the last element.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package iterator
