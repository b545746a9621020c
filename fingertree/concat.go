package fingertree

// Concat concatenates two trees into a new one, leaving both inputs valid
// and unchanged. O(log min(|a|,|b|)): the merge descends both middle
// spines in lock-step and stops at the depth of the shallower tree.
func Concat[T any](alloc Allocator, a, b *Tree[T]) (*Tree[T], error) {
	if a == nil {
		retainTree(b)
		return b, nil
	}
	if b == nil {
		retainTree(a)
		return a, nil
	}
	tracer().Debugf("concat: %d + %d elements", a.Size(), b.Size())
	return merge3(alloc, a, nil, b)
}

// merge3 concatenates a, a short glue run of items, and b. The glue never
// exceeds a digit's worth of groups after the first descent, keeping every
// recursion step O(1).
func merge3[T any](alloc Allocator, a *Tree[T], glue []item[T], b *Tree[T]) (*Tree[T], error) {
	if a == nil {
		return prependItems(alloc, glue, b)
	}
	if b == nil {
		return appendItems(alloc, a, glue)
	}
	if a.kind == singleTree {
		t, err := merge3(alloc, nil, glue, b)
		if err != nil {
			return nil, err
		}
		nt, err := pushFront(alloc, t, a.single)
		releaseTree(t)
		return nt, err
	}
	if b.kind == singleTree {
		t, err := appendItems(alloc, a, glue)
		if err != nil {
			return nil, err
		}
		nt, err := pushBack(alloc, t, b.single)
		releaseTree(t)
		return nt, err
	}
	// both deep: regroup a's right digit, the glue and b's left digit into
	// groups of 2–3 and merge them one level down
	run := make([]item[T], 0, 2*digitMax+len(glue))
	run = append(run, a.right.slice()...)
	run = append(run, glue...)
	run = append(run, b.left.slice()...)
	groups, err := groupItems(alloc, run)
	if err != nil {
		return nil, err
	}
	mid, err := merge3(alloc, a.mid, groups, b.mid)
	for _, g := range groups {
		releaseItem(g)
	}
	if err != nil {
		return nil, err
	}
	nt, err := newDeep(alloc, a.left, mid, b.right)
	releaseTree(mid)
	return nt, err
}

// prependItems pushes items onto the front of t, last item first, so that
// the run keeps its order. t is not consumed; the result carries one
// reference owned by the caller.
func prependItems[T any](alloc Allocator, items []item[T], t *Tree[T]) (*Tree[T], error) {
	acc := t
	for j := len(items) - 1; j >= 0; j-- {
		nt, err := pushFront(alloc, acc, items[j])
		if acc != t {
			releaseTree(acc)
		}
		if err != nil {
			return nil, err
		}
		acc = nt
	}
	if acc == t {
		retainTree(t)
	}
	return acc, nil
}

// appendItems pushes items onto the back of t in order; the mirror image
// of prependItems.
func appendItems[T any](alloc Allocator, t *Tree[T], items []item[T]) (*Tree[T], error) {
	acc := t
	for _, it := range items {
		nt, err := pushBack(alloc, acc, it)
		if acc != t {
			releaseTree(acc)
		}
		if err != nil {
			return nil, err
		}
		acc = nt
	}
	if acc == t {
		retainTree(t)
	}
	return acc, nil
}
