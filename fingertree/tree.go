package fingertree

import (
	"fmt"
	"iter"
	"sync/atomic"
)

/*
Remarks:
--------

- A tree value is never edited in place. Every operation builds new nodes
  along the changed path only and shares all untouched subtrees by
  reference with prior versions.

- The nil *Tree is the empty tree. Single and deep trees are the two
  allocated variants; algorithms switch on the kind tag rather than
  dispatching virtually, so each site handles the closed variant set
  exhaustively.

- Reference discipline: every function returning a *Tree hands the caller
  one reference. Linking a node into a parent retains it. A caller done
  with a temporary releases its reference; the last release returns the
  node to the allocator.

- Every node remembers the capability that accounted it. Trees built on
  different allocators may share structure (concatenation seams); on
  release, each node settles against its own allocator's books, never
  against the allocator of the releasing path.
*/

type kind int8

const (
	singleTree kind = iota + 1
	deepTree
)

// item is one slot of a digit or group: either a leaf element or a
// reference to a group one level down.
type item[T any] struct {
	leaf T
	node *gnode[T] // nil ⇒ leaf element
}

func leafItem[T any](x T) item[T] {
	return item[T]{leaf: x}
}

func groupItem[T any](g *gnode[T]) item[T] {
	return item[T]{node: g}
}

func (it item[T]) size() uint64 {
	if it.node != nil {
		return it.node.size
	}
	return 1
}

func (it item[T]) String() string {
	if it.node != nil {
		return it.node.String()
	}
	return fmt.Sprintf("%v", it.leaf)
}

// Tree is a persistent 2-3 finger tree over elements of type T. The nil
// tree is the (only) empty tree. A deep tree holds a 1–4 item digit at
// each boundary and a middle tree whose items are groups one level up.
type Tree[T any] struct {
	ref    int32
	kind   kind
	size   uint64
	alloc  Allocator // the capability this node was accounted against
	single item[T]   // set for kind == singleTree
	left   digit[T]  // the rest is set for kind == deepTree
	mid    *Tree[T]
	right  digit[T]
}

// Size returns the cached element count. O(1), nil-safe.
func (t *Tree[T]) Size() uint64 {
	if t == nil {
		return 0
	}
	return t.size
}

// --- Node construction -----------------------------------------------------

func newSingle[T any](alloc Allocator, it item[T]) (*Tree[T], error) {
	alloc = ensureAlloc(alloc)
	if err := alloc.Grab(1); err != nil {
		return nil, err
	}
	retainItem(it)
	return &Tree[T]{ref: 1, kind: singleTree, size: it.size(), alloc: alloc, single: it}, nil
}

func newDeep[T any](alloc Allocator, left digit[T], mid *Tree[T], right digit[T]) (*Tree[T], error) {
	assertThat(left.count > 0 && right.count > 0, "boundary digits of a deep node must not be empty")
	alloc = ensureAlloc(alloc)
	if err := alloc.Grab(1); err != nil {
		return nil, err
	}
	retainDigit(left)
	retainTree(mid)
	retainDigit(right)
	return &Tree[T]{
		ref:   1,
		kind:  deepTree,
		size:  left.size() + mid.Size() + right.size(),
		alloc: alloc,
		left:  left,
		mid:   mid,
		right: right,
	}, nil
}

// --- Push ------------------------------------------------------------------

// PushBack appends an element, returning a new tree and leaving t valid and
// unchanged. Amortized O(1): a full boundary digit overflows into the
// middle tree only once per 4 pushes at that boundary, and the cascade
// reaches the next level only on every 4th overflow there.
func PushBack[T any](alloc Allocator, t *Tree[T], x T) (*Tree[T], error) {
	return pushBack(alloc, t, leafItem(x))
}

// PushFront prepends an element; the mirror image of PushBack.
func PushFront[T any](alloc Allocator, t *Tree[T], x T) (*Tree[T], error) {
	return pushFront(alloc, t, leafItem(x))
}

func pushBack[T any](alloc Allocator, t *Tree[T], it item[T]) (*Tree[T], error) {
	if t == nil {
		return newSingle(alloc, it)
	}
	switch t.kind {
	case singleTree:
		return newDeep(alloc, digitOf(t.single), nil, digitOf(it))
	case deepTree:
		if !t.right.full() {
			return newDeep(alloc, t.left, t.mid, t.right.withBack(it))
		}
		// boundary digit is full: 3 items overflow into the middle tree
		tracer().Debugf("push: right digit %v overflows into middle tree", t.right)
		g, err := newGroup(alloc, t.right.items[0], t.right.items[1], t.right.items[2])
		if err != nil {
			return nil, err
		}
		mid, err := pushBack(alloc, t.mid, groupItem(g))
		releaseGroup(g)
		if err != nil {
			return nil, err
		}
		nt, err := newDeep(alloc, t.left, mid, digitOf(t.right.items[3], it))
		releaseTree(mid)
		return nt, err
	}
	assertThat(false, "tree node has unknown kind %d", t.kind)
	return nil, nil
}

func pushFront[T any](alloc Allocator, t *Tree[T], it item[T]) (*Tree[T], error) {
	if t == nil {
		return newSingle(alloc, it)
	}
	switch t.kind {
	case singleTree:
		return newDeep(alloc, digitOf(it), nil, digitOf(t.single))
	case deepTree:
		if !t.left.full() {
			return newDeep(alloc, t.left.withFront(it), t.mid, t.right)
		}
		tracer().Debugf("push: left digit %v overflows into middle tree", t.left)
		g, err := newGroup(alloc, t.left.items[1], t.left.items[2], t.left.items[3])
		if err != nil {
			return nil, err
		}
		mid, err := pushFront(alloc, t.mid, groupItem(g))
		releaseGroup(g)
		if err != nil {
			return nil, err
		}
		nt, err := newDeep(alloc, digitOf(it, t.left.items[0]), mid, t.right)
		releaseTree(mid)
		return nt, err
	}
	assertThat(false, "tree node has unknown kind %d", t.kind)
	return nil, nil
}

// FromSlice builds a tree from a flat run of elements by repeated PushBack;
// O(k) for k elements under the push amortization.
func FromSlice[T any](alloc Allocator, xs []T) (*Tree[T], error) {
	var t *Tree[T]
	for _, x := range xs {
		nt, err := PushBack(alloc, t, x)
		if err != nil {
			releaseTree(t)
			return nil, err
		}
		releaseTree(t) // drop the superseded intermediate version
		t = nt
	}
	return t, nil
}

// PushAll appends all elements produced by xs, iterating exactly once.
// O(1) amortized per element. t is not consumed; the result carries one
// reference owned by the caller.
func PushAll[T any](alloc Allocator, t *Tree[T], xs iter.Seq[T]) (*Tree[T], error) {
	acc := t
	var err error
	xs(func(x T) bool {
		var nt *Tree[T]
		nt, err = pushBack(alloc, acc, leafItem(x))
		if acc != t {
			releaseTree(acc)
		}
		if err != nil {
			return false
		}
		acc = nt
		return true
	})
	if err != nil {
		return nil, err
	}
	if acc == t {
		retainTree(t)
	}
	return acc, nil
}

// Release drops the caller's reference to a tree returned by one of the
// package operations; each node returns to the allocator that accounted
// it. Roots that have been wrapped into a Handle are released through
// Discard instead.
func Release[T any](t *Tree[T]) {
	releaseTree(t)
}

// treeOfItems builds a tree from at most a digit's worth of items.
func treeOfItems[T any](alloc Allocator, items []item[T]) (*Tree[T], error) {
	assertThat(len(items) <= digitMax, "item run too long for a digit: %d", len(items))
	var t *Tree[T]
	for _, it := range items {
		nt, err := pushBack(alloc, t, it)
		if err != nil {
			releaseTree(t)
			return nil, err
		}
		releaseTree(t)
		t = nt
	}
	return t, nil
}

// --- Element access --------------------------------------------------------

// First returns the first element in sequence order, if any.
func First[T any](t *Tree[T]) (T, bool) {
	if t == nil {
		var none T
		return none, false
	}
	if t.kind == singleTree {
		return frontOfItem(t.single), true
	}
	return frontOfItem(t.left.first()), true
}

// Last returns the last element in sequence order, if any.
func Last[T any](t *Tree[T]) (T, bool) {
	if t == nil {
		var none T
		return none, false
	}
	if t.kind == singleTree {
		return backOfItem(t.single), true
	}
	return backOfItem(t.right.last()), true
}

func frontOfItem[T any](it item[T]) T {
	for it.node != nil {
		it = it.node.items[0]
	}
	return it.leaf
}

func backOfItem[T any](it item[T]) T {
	for it.node != nil {
		it = it.node.items[it.node.arity-1]
	}
	return it.leaf
}

// At returns the element at position i, descending by cached sizes.
// O(log n); this structure trades constant-time indexed access for
// constant-time end operations.
func At[T any](t *Tree[T], i uint64) (T, error) {
	if i >= t.Size() {
		var none T
		return none, ErrIndexOutOfBounds
	}
	for {
		if t.kind == singleTree {
			return itemAt(t.single, i), nil
		}
		ls := t.left.size()
		if i < ls {
			return itemsAt(t.left.slice(), i), nil
		}
		i -= ls
		if ms := t.mid.Size(); i < ms {
			t = t.mid
			continue
		} else {
			i -= ms
		}
		return itemsAt(t.right.slice(), i), nil
	}
}

func itemsAt[T any](items []item[T], i uint64) T {
	for _, it := range items {
		if s := it.size(); i < s {
			return itemAt(it, i)
		} else {
			i -= s
		}
	}
	assertThat(false, "position %d outside of item run", i)
	var none T
	return none
}

func itemAt[T any](it item[T], i uint64) T {
	for it.node != nil {
		for _, child := range it.node.children() {
			if s := child.size(); i < s {
				it = child
				break
			} else {
				i -= s
			}
		}
	}
	assertThat(i == 0, "leaf reached with %d positions left", i)
	return it.leaf
}

// Each visits all elements in sequence order. The visitor returns false to
// stop early; Each reports whether the walk ran to completion.
func Each[T any](t *Tree[T], f func(x T) bool) bool {
	if t == nil {
		return true
	}
	if t.kind == singleTree {
		return eachOfItem(t.single, f)
	}
	for i := 0; i < t.left.count; i++ {
		if !eachOfItem(t.left.items[i], f) {
			return false
		}
	}
	if !Each(t.mid, f) {
		return false
	}
	for i := 0; i < t.right.count; i++ {
		if !eachOfItem(t.right.items[i], f) {
			return false
		}
	}
	return true
}

func eachOfItem[T any](it item[T], f func(x T) bool) bool {
	if it.node == nil {
		return f(it.leaf)
	}
	for _, child := range it.node.children() {
		if !eachOfItem(child, f) {
			return false
		}
	}
	return true
}

// --- Reference counting ----------------------------------------------------

func retainTree[T any](t *Tree[T]) {
	if t != nil {
		atomic.AddInt32(&t.ref, 1)
	}
}

func retainItem[T any](it item[T]) {
	if it.node != nil {
		retainGroup(it.node)
	}
}

func retainDigit[T any](d digit[T]) {
	for i := 0; i < d.count; i++ {
		retainItem(d.items[i])
	}
}

func releaseItem[T any](it item[T]) {
	if it.node != nil {
		releaseGroup(it.node)
	}
}

func releaseDigit[T any](d digit[T]) {
	for i := 0; i < d.count; i++ {
		releaseItem(d.items[i])
	}
}

// releaseTree drops one reference to t. The last reference recursively
// releases children and returns the node to the allocator that accounted
// it. Children shared with live versions keep their remaining references
// and survive.
func releaseTree[T any](t *Tree[T]) {
	if t == nil {
		return
	}
	if atomic.AddInt32(&t.ref, -1) > 0 {
		return
	}
	switch t.kind {
	case singleTree:
		releaseItem(t.single)
	case deepTree:
		releaseDigit(t.left)
		releaseTree(t.mid)
		releaseDigit(t.right)
	}
	t.alloc.Drop(1)
}
