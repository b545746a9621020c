package fingertree

import "sync/atomic"

// Handle shares ownership of a tree root between sequence values. Cloning
// a handle is a single atomic increment; discarding one decrements, and
// the last reference recursively releases all nodes no other version still
// shares, returning their accounting to the Allocator.
//
// Handles exist for the benefit of accounting allocators. The Go collector
// reclaims node memory regardless of whether a handle is ever discarded.
type Handle[T any] struct {
	root     *Tree[T]
	alloc    Allocator
	released int32
}

// NewHandle wraps a tree root, adopting the caller's reference to it.
// A nil root designates the empty sequence.
func NewHandle[T any](alloc Allocator, root *Tree[T]) *Handle[T] {
	return &Handle[T]{root: root, alloc: ensureAlloc(alloc)}
}

// Clone creates an independent handle to the same tree. O(1).
func (h *Handle[T]) Clone() *Handle[T] {
	if h == nil {
		return nil
	}
	retainTree(h.root)
	return &Handle[T]{root: h.root, alloc: h.alloc}
}

// Discard releases the handle's reference to its root. Safe to call more
// than once; only the first call releases. Using the handle's tree after
// Discard is legal as long as other handles still share it.
func (h *Handle[T]) Discard() {
	if h == nil {
		return
	}
	if !atomic.CompareAndSwapInt32(&h.released, 0, 1) {
		return
	}
	releaseTree(h.root)
}

// Root returns the wrapped tree; nil for the empty sequence.
func (h *Handle[T]) Root() *Tree[T] {
	if h == nil {
		return nil
	}
	return h.root
}

// Alloc returns the allocation capability the handle's nodes are accounted
// against.
func (h *Handle[T]) Alloc() Allocator {
	if h == nil {
		return defaultAllocator
	}
	return h.alloc
}

// Size returns the element count of the wrapped tree. O(1).
func (h *Handle[T]) Size() uint64 {
	return h.Root().Size()
}
