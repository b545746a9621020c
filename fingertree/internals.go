package fingertree

import (
	"fmt"
)

func (t *Tree[T]) String() string {
	if t == nil {
		return "∅"
	}
	switch t.kind {
	case singleTree:
		return fmt.Sprintf("{%v}", t.single)
	case deepTree:
		return fmt.Sprintf("{%v %s %v}", t.left, t.mid, t.right)
	}
	return "?"
}

// Sketch is a plain description of a tree's shape, meant for debugging and
// rendering; see package seqdbg.
type Sketch struct {
	Label    string
	Children []Sketch
}

// Sketch describes the tree's node structure. Labels carry the node kind
// and cached size; leaf labels carry the element's value.
func (t *Tree[T]) Sketch() Sketch {
	if t == nil {
		return Sketch{Label: "empty"}
	}
	switch t.kind {
	case singleTree:
		return Sketch{
			Label:    fmt.Sprintf("single #%d", t.size),
			Children: []Sketch{sketchItem(t.single)},
		}
	case deepTree:
		return Sketch{
			Label: fmt.Sprintf("deep #%d", t.size),
			Children: []Sketch{
				sketchDigit("left", t.left),
				t.mid.Sketch(),
				sketchDigit("right", t.right),
			},
		}
	}
	return Sketch{Label: "?"}
}

func sketchDigit[T any](side string, d digit[T]) Sketch {
	sk := Sketch{Label: fmt.Sprintf("%s digit #%d", side, d.size())}
	for i := 0; i < d.count; i++ {
		sk.Children = append(sk.Children, sketchItem(d.items[i]))
	}
	return sk
}

func sketchItem[T any](it item[T]) Sketch {
	if it.node == nil {
		return Sketch{Label: fmt.Sprintf("%v", it.leaf)}
	}
	sk := Sketch{Label: fmt.Sprintf("group #%d", it.node.size)}
	for _, child := range it.node.children() {
		sk.Children = append(sk.Children, sketchItem(child))
	}
	return sk
}

// checkSizes verifies the cached-size invariant below t; test support.
func checkSizes[T any](t *Tree[T]) bool {
	if t == nil {
		return true
	}
	switch t.kind {
	case singleTree:
		return t.size == t.single.size() && checkItemSizes(t.single)
	case deepTree:
		want := t.left.size() + t.mid.Size() + t.right.size()
		if t.size != want || !checkSizes(t.mid) {
			return false
		}
		for _, it := range t.left.slice() {
			if !checkItemSizes(it) {
				return false
			}
		}
		for _, it := range t.right.slice() {
			if !checkItemSizes(it) {
				return false
			}
		}
		return true
	}
	return false
}

func checkItemSizes[T any](it item[T]) bool {
	if it.node == nil {
		return true
	}
	var sum uint64
	for _, child := range it.node.children() {
		if !checkItemSizes(child) {
			return false
		}
		sum += child.size()
	}
	return it.node.size == sum
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("fingertree: "+msg, msgargs...)
		panic(msg)
	}
}

// elements collects all elements into a slice; test support.
func elements[T any](t *Tree[T]) []T {
	var xs []T
	Each(t, func(x T) bool {
		xs = append(xs, x)
		return true
	})
	return xs
}
