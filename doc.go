/*
Package containers offers generic ordered containers and a stack on top of
the engines in the sub-packages.

# Containers

Map and Set keep their elements ordered by key, using the red-black tree of
package rbtree. Keys are unique: inserting a key which is already present
leaves the container unchanged. Map stores key/value pairs and adds keyed
access with At (fails for absent keys) and Index (inserts a zero value for
absent keys). Stack is a last-in, first-out adaptor over vector.Vector.

Natural ordering is available for every ordered key type:

	m := containers.NewMap[string, int]()
	*m.Index("x") = 1

Other key types need a comparator, which must be a strict weak ordering:

	s, err := containers.NewSetFunc(func(a, b Point) bool { return a.X < b.X })

Iterators of maps and sets are bidirectional. They stay valid until the
element they denote is erased. Whole containers compare with the package
level functions MapEqual, MapLess, SetEqual, SetLess, StackEqual and
StackLess, so containers may themselves serve as ordered elements.

Containers are not safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer.
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package containers

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
