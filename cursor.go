package seq

import "github.com/npillmayer/seq/fingertree"

// Cursor navigates a sequence in forward direction.
//
// A cursor is bound to one sequence snapshot; it never observes a change,
// because no tree node it can reach is ever mutated. Cursors are
// restartable: a fresh cursor may always be obtained from the sequence.
type Cursor[T any] struct {
	inner *fingertree.Cursor[T]
}

// Next advances the cursor and returns the element it lands on.
//
// If the cursor is at the end of the sequence, ok is false.
func (c *Cursor[T]) Next() (x T, ok bool) {
	if c == nil || c.inner == nil {
		var none T
		return none, false
	}
	return c.inner.Next()
}

// Current returns the element the last call to Next yielded, without
// advancing. ok is false before the first Next and after exhaustion.
func (c *Cursor[T]) Current() (x T, ok bool) {
	if c == nil || c.inner == nil {
		var none T
		return none, false
	}
	return c.inner.Current()
}
