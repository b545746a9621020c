/*
Package fingertree implements a persistent (immutable) 2-3 finger tree,
the structural backbone of package seq.

A finger tree keeps small inline buffers ("digits" of 1 to 4 items) at both
ends of a recursive spine whose interior items are groups of 2 or 3. This
shape gives amortized O(1) access and insertion at both ends, together with
O(log n) concatenation and splitting. The design follows the functional
pearl by Hinze & Paterson, "Finger trees: a simple general-purpose data
structure" (JFP 16, 2006).

Every node carries its aggregate element count, making size queries and the
size comparisons driving splits O(1) per node. Nodes are never modified
after construction; a "modifying" operation builds new nodes along the
changed path only and shares all untouched subtrees with prior versions.

Node creation is accounted against an opaque Allocator capability, and node
lifetime is governed by atomic reference counts driven through Handle
values, so that accounting allocators can reclaim their budget when the
last sequence referencing a subtree is discarded. Each node remembers the
capability that accounted it, so trees built on different allocators may
share structure and still settle against the right books. The Go collector
owns the memory itself either way.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fingertree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seq.fingertree'.
func tracer() tracing.Trace {
	return tracing.Select("seq.fingertree")
}
