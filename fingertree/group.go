package fingertree

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// gnode is the 2-3 grouping unit of the recursive middle spine. A group
// holds exactly 2 or 3 items of the level below and caches their aggregate
// element count.
type gnode[T any] struct {
	ref   int32
	arity int
	size  uint64
	alloc Allocator // the capability this node was accounted against
	items [3]item[T]
}

func (g *gnode[T]) children() []item[T] {
	return g.items[:g.arity]
}

func (g *gnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for i := 0; i < g.arity; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", g.items[i]))
	}
	b.WriteByte(')')
	return b.String()
}

// newGroup builds a group of 2 or 3 items, accounted against alloc. The
// returned group carries one reference owned by the caller.
func newGroup[T any](alloc Allocator, items ...item[T]) (*gnode[T], error) {
	assertThat(len(items) == 2 || len(items) == 3,
		"group arity must be 2 or 3, is %d", len(items))
	alloc = ensureAlloc(alloc)
	if err := alloc.Grab(1); err != nil {
		return nil, err
	}
	g := &gnode[T]{ref: 1, arity: len(items), alloc: alloc}
	for i, it := range items {
		retainItem(it)
		g.items[i] = it
		g.size += it.size()
	}
	return g, nil
}

// groupItems partitions a flat run of 2...3k items into groups of 2 or 3,
// preferring 3s. A remainder of 1 is never allowed to become a 1-group:
// the final two groups are rebalanced to 2+2 instead.
//
// Each returned group item carries one reference owned by the caller.
func groupItems[T any](alloc Allocator, items []item[T]) ([]item[T], error) {
	assertThat(len(items) >= 2, "cannot group fewer than 2 items: %d", len(items))
	groups := make([]item[T], 0, (len(items)+1)/2)
	for n := len(items); n > 0; n = len(items) {
		k := 3
		if n == 2 || n == 4 {
			k = 2
		}
		g, err := newGroup(alloc, items[:k]...)
		if err != nil {
			for _, built := range groups {
				releaseItem(built)
			}
			return nil, err
		}
		groups = append(groups, groupItem(g))
		items = items[k:]
	}
	return groups, nil
}

// --- Reference counting ----------------------------------------------------

func retainGroup[T any](g *gnode[T]) {
	atomic.AddInt32(&g.ref, 1)
}

// releaseGroup drops one reference. The last reference releases the group's
// children and returns the node to the allocator that accounted it.
func releaseGroup[T any](g *gnode[T]) {
	if atomic.AddInt32(&g.ref, -1) > 0 {
		return
	}
	for i := 0; i < g.arity; i++ {
		releaseItem(g.items[i])
	}
	g.alloc.Drop(1)
}
