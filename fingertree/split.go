package fingertree

// SplitAt splits t right before position i: the left result holds elements
// 0...i-1, the right result the rest. O(log n). The input tree is never
// altered; both results share all untouched subtrees with it.
//
// Positions outside [0, size] yield ErrIndexOutOfBounds.
func SplitAt[T any](alloc Allocator, t *Tree[T], i uint64) (*Tree[T], *Tree[T], error) {
	if i > t.Size() {
		return nil, nil, ErrIndexOutOfBounds
	}
	if i == 0 {
		retainTree(t)
		return nil, t, nil
	}
	if i == t.Size() {
		retainTree(t)
		return t, nil, nil
	}
	tracer().Debugf("split: size=%d at %d", t.Size(), i)
	left, x, r, err := splitTree(alloc, t, i)
	if err != nil {
		return nil, nil, err
	}
	right, err := pushFront(alloc, r, x)
	releaseTree(r)
	if err != nil {
		releaseTree(left)
		return nil, nil, err
	}
	return left, right, nil
}

// splitTree locates the item containing position i (0 ≤ i < size) and
// returns the trees before and after it, plus the item itself. The item is
// at t's own granularity: a leaf at the outermost level, a group when
// called on a middle tree.
func splitTree[T any](alloc Allocator, t *Tree[T], i uint64) (*Tree[T], item[T], *Tree[T], error) {
	assertThat(t != nil && i < t.size, "split position %d outside of tree", i)
	var void item[T]
	if t.kind == singleTree {
		return nil, t.single, nil, nil
	}
	ls := t.left.size()
	if i < ls {
		before, x, after := splitItems(t.left.slice(), i)
		left, err := treeOfItems(alloc, before)
		if err != nil {
			return nil, void, nil, err
		}
		right, err := deepLeft(alloc, after, t.mid, t.right)
		if err != nil {
			releaseTree(left)
			return nil, void, nil, err
		}
		return left, x, right, nil
	}
	i -= ls
	if ms := t.mid.Size(); i < ms {
		ml, xs, mr, err := splitTree(alloc, t.mid, i)
		if err != nil {
			return nil, void, nil, err
		}
		// the boundary group re-expands into individual items at this level
		assertThat(xs.node != nil, "middle tree items must be groups")
		before, x, after := splitItems(xs.node.children(), i-ml.Size())
		left, err := deepRight(alloc, t.left, ml, before)
		releaseTree(ml)
		if err != nil {
			releaseTree(mr)
			return nil, void, nil, err
		}
		right, err := deepLeft(alloc, after, mr, t.right)
		releaseTree(mr)
		if err != nil {
			releaseTree(left)
			return nil, void, nil, err
		}
		return left, x, right, nil
	} else {
		i -= ms
	}
	before, x, after := splitItems(t.right.slice(), i)
	left, err := deepRight(alloc, t.left, t.mid, before)
	if err != nil {
		return nil, void, nil, err
	}
	right, err := treeOfItems(alloc, after)
	if err != nil {
		releaseTree(left)
		return nil, void, nil, err
	}
	return left, x, right, nil
}

// splitItems slices an item run around position i: items strictly before
// the one containing i, that item, and the items strictly after it.
func splitItems[T any](items []item[T], i uint64) ([]item[T], item[T], []item[T]) {
	var acc uint64
	for j, it := range items {
		if i < acc+it.size() {
			return items[:j], it, items[j+1:]
		}
		acc += it.size()
	}
	assertThat(false, "split position %d outside of item run", i)
	var void item[T]
	return nil, void, nil
}

// deepLeft rebuilds a tree from a possibly-empty run of left-boundary
// items, a middle tree and a right digit. An empty run borrows the
// leftmost group from the middle tree and re-expands it into a digit;
// an empty middle tree collapses into the right digit.
func deepLeft[T any](alloc Allocator, items []item[T], mid *Tree[T], right digit[T]) (*Tree[T], error) {
	assertThat(len(items) <= digitMax, "item run too long for a digit: %d", len(items))
	if len(items) > 0 {
		return newDeep(alloc, digitOf(items...), mid, right)
	}
	if mid == nil {
		return treeOfItems(alloc, right.slice())
	}
	head, rest, err := viewLeft(alloc, mid)
	if err != nil {
		return nil, err
	}
	assertThat(head.node != nil, "middle tree items must be groups")
	nt, err := newDeep(alloc, digitOf(head.node.children()...), rest, right)
	releaseTree(rest)
	return nt, err
}

// deepRight is the mirror image of deepLeft.
func deepRight[T any](alloc Allocator, left digit[T], mid *Tree[T], items []item[T]) (*Tree[T], error) {
	assertThat(len(items) <= digitMax, "item run too long for a digit: %d", len(items))
	if len(items) > 0 {
		return newDeep(alloc, left, mid, digitOf(items...))
	}
	if mid == nil {
		return treeOfItems(alloc, left.slice())
	}
	rest, tail, err := viewRight(alloc, mid)
	if err != nil {
		return nil, err
	}
	assertThat(tail.node != nil, "middle tree items must be groups")
	nt, err := newDeep(alloc, left, rest, digitOf(tail.node.children()...))
	releaseTree(rest)
	return nt, err
}

// viewLeft pops the first item off a non-empty tree, returning the item and
// the tree of the remaining items. The item stays owned by t; the returned
// tree carries one reference owned by the caller.
func viewLeft[T any](alloc Allocator, t *Tree[T]) (item[T], *Tree[T], error) {
	assertThat(t != nil, "attempt to view into an empty tree")
	if t.kind == singleTree {
		return t.single, nil, nil
	}
	head := t.left.first()
	if t.left.count > 1 {
		_, ld := t.left.popFront()
		rest, err := newDeep(alloc, ld, t.mid, t.right)
		return head, rest, err
	}
	rest, err := deepLeft(alloc, nil, t.mid, t.right)
	return head, rest, err
}

// viewRight pops the last item off a non-empty tree; the mirror image of
// viewLeft.
func viewRight[T any](alloc Allocator, t *Tree[T]) (*Tree[T], item[T], error) {
	assertThat(t != nil, "attempt to view into an empty tree")
	if t.kind == singleTree {
		return nil, t.single, nil
	}
	tail := t.right.last()
	if t.right.count > 1 {
		_, rd := t.right.popBack()
		rest, err := newDeep(alloc, t.left, t.mid, rd)
		return rest, tail, err
	}
	rest, err := deepRight(alloc, t.left, t.mid, nil)
	return rest, tail, err
}
