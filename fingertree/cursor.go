package fingertree

import (
	"fmt"
	"strings"
)

// Cursor is a forward-only, read-only walker over a tree in sequence
// order. It keeps an explicit stack of (node, position) frames and never
// modifies the tree; since no reachable node is ever mutated, a cursor
// observes a stable snapshot for its whole lifetime, and any number of
// cursors may walk the same tree concurrently.
//
// Advancing is amortized O(1) by the usual stack argument: every frame is
// pushed and popped at most once per subtree visited.
type Cursor[T any] struct {
	stack frameStack[T]
	cur   T
	valid bool
}

// tree frame regions, visited in order.
const (
	regionLeft = iota
	regionMid
	regionRight
)

// frame captures the walk position within one tree node or group.
type frame[T any] struct {
	tree   *Tree[T]  // exactly one of tree…
	group  *gnode[T] // …and group is set
	region int
	index  int
}

func (f frame[T]) String() string {
	if f.group != nil {
		return fmt.Sprintf("%d@%s", f.index, f.group)
	}
	return fmt.Sprintf("%d.%d@tree(%d)", f.region, f.index, f.tree.Size())
}

type frameStack[T any] []frame[T]

func (fs frameStack[T]) String() string {
	var sb strings.Builder
	sb.WriteRune('[')
	for _, f := range fs {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", f))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (fs *frameStack[T]) push(f frame[T]) {
	*fs = append(*fs, f)
}

func (fs *frameStack[T]) pop() {
	*fs = (*fs)[:len(*fs)-1]
}

func (fs frameStack[T]) top() *frame[T] {
	return &fs[len(fs)-1]
}

// NewCursor creates a cursor positioned before the first element of t.
// Creating a cursor is O(1); it is always legal to create a fresh cursor
// from the same tree to restart the walk.
func NewCursor[T any](t *Tree[T]) *Cursor[T] {
	c := &Cursor[T]{}
	if t != nil {
		c.stack.push(frame[T]{tree: t})
	}
	return c
}

// Next advances the cursor and returns the element it lands on.
// ok is false when the walk is exhausted.
func (c *Cursor[T]) Next() (x T, ok bool) {
	for len(c.stack) > 0 {
		f := c.stack.top()
		if f.group != nil {
			if f.index < f.group.arity {
				it := f.group.items[f.index]
				f.index++
				if c.descend(it) {
					return c.cur, true
				}
				continue
			}
			c.stack.pop()
			continue
		}
		t := f.tree
		if t.kind == singleTree {
			if f.index == 0 {
				f.index++
				if c.descend(t.single) {
					return c.cur, true
				}
				continue
			}
			c.stack.pop()
			continue
		}
		switch f.region {
		case regionLeft:
			if f.index < t.left.count {
				it := t.left.items[f.index]
				f.index++
				if c.descend(it) {
					return c.cur, true
				}
				continue
			}
			f.region, f.index = regionMid, 0
		case regionMid:
			f.region, f.index = regionRight, 0
			if t.mid != nil {
				c.stack.push(frame[T]{tree: t.mid})
			}
		case regionRight:
			if f.index < t.right.count {
				it := t.right.items[f.index]
				f.index++
				if c.descend(it) {
					return c.cur, true
				}
				continue
			}
			c.stack.pop()
		}
	}
	c.valid = false
	var none T
	return none, false
}

// descend walks into an item. A leaf becomes the current element; a group
// is pushed as a new frame for the main loop to unwind.
func (c *Cursor[T]) descend(it item[T]) bool {
	if it.node == nil {
		c.cur = it.leaf
		c.valid = true
		return true
	}
	c.stack.push(frame[T]{group: it.node})
	return false
}

// Current returns the element the cursor rests on, i.e. the one the last
// call to Next yielded. ok is false before the first Next and after
// exhaustion.
func (c *Cursor[T]) Current() (x T, ok bool) {
	if !c.valid {
		var none T
		return none, false
	}
	return c.cur, true
}
