package fingertree

import (
	"fmt"
	"strings"
)

// digitMax is the maximum number of items held inline at a tree boundary.
const digitMax = 4

// digit is the small ordered fringe buffer at the boundary of a deep node,
// holding between 1 and 4 items. Digits are plain values; "modifying" a
// digit produces a fresh value, never an in-place edit.
type digit[T any] struct {
	count int
	items [digitMax]item[T]
}

func digitOf[T any](items ...item[T]) digit[T] {
	assertThat(len(items) >= 1 && len(items) <= digitMax,
		"digit arity out of range: %d", len(items))
	var d digit[T]
	d.count = copy(d.items[:], items)
	return d
}

// size sums the sizes of all items; the arity bound of 4 keeps this O(1).
func (d digit[T]) size() uint64 {
	var s uint64
	for i := 0; i < d.count; i++ {
		s += d.items[i].size()
	}
	return s
}

func (d digit[T]) full() bool {
	return d.count == digitMax
}

func (d digit[T]) first() item[T] {
	assertThat(d.count > 0, "attempt to read first item of an empty digit")
	return d.items[0]
}

func (d digit[T]) last() item[T] {
	assertThat(d.count > 0, "attempt to read last item of an empty digit")
	return d.items[d.count-1]
}

// slice returns the digit's items as a slice backed by the receiver copy.
func (d digit[T]) slice() []item[T] {
	return d.items[:d.count]
}

func (d digit[T]) withFront(it item[T]) digit[T] {
	assertThat(d.count < digitMax, "attempt to over-fill digit at the front")
	var n digit[T]
	n.items[0] = it
	copy(n.items[1:], d.items[:d.count])
	n.count = d.count + 1
	return n
}

func (d digit[T]) withBack(it item[T]) digit[T] {
	assertThat(d.count < digitMax, "attempt to over-fill digit at the back")
	n := d
	n.items[n.count] = it
	n.count++
	return n
}

// popFront cuts the first item off the digit. The tree algorithms never pop
// the only item of a boundary digit; they borrow from the middle tree
// instead. A pop on a 1-item digit is an underflow and trips the assertion.
func (d digit[T]) popFront() (item[T], digit[T]) {
	assertThat(d.count > 1, "digit underflow: attempt to pop the only item")
	var n digit[T]
	n.count = copy(n.items[:], d.items[1:d.count])
	return d.items[0], n
}

func (d digit[T]) popBack() (item[T], digit[T]) {
	assertThat(d.count > 1, "digit underflow: attempt to pop the only item")
	n := d
	n.count--
	var void item[T]
	n.items[n.count] = void
	return d.items[n.count], n
}

func (d digit[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('<')
	for i := 0; i < d.count; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", d.items[i]))
	}
	b.WriteByte('>')
	return b.String()
}
