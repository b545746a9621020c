/*
Package seq provides a persistent immutable sequence container.

A sequence, once constructed, never changes: every "modifying" operation
(append, prepend, concatenation, splitting) returns a new sequence value,
while all prior values stay fully valid and independently observable. Under
the hood, sequence values share the unmodified parts of a persistent 2-3
finger tree (package fingertree), so copies are cheap and "modifications"
allocate new nodes along the changed path only.

A sequence created by

	Seq[int]{}

is a valid object and behaves like the empty sequence.

Due to the underlying tree, sequences have performance characteristics
differing from Go slices:

	Operation     |   Seq                |  Slice
	--------------+----------------------+--------
	Copy          |   O(1)               |   O(n)
	Append        |   amortized O(1)     |   amortized O(1)
	Prepend       |   amortized O(1)     |   O(n)
	Concatenate   |   O(log min(n,m))    |   O(m)
	Split         |   O(log n)           |   O(1) (aliasing!)
	Index         |   O(log n)           |   O(1)
	Iterate       |   O(n)               |   O(n)

Indexed access better than O(log n) is deliberately not offered; the
structure trades it for constant-time end operations and logarithmic
concatenation. Sequences never alias mutable state, which makes them
inherently safe for concurrent access: any number of goroutines may
traverse, copy and query the same value without locking.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seq'.
func tracer() tracing.Trace {
	return tracing.Select("seq")
}
