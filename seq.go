package seq

import (
	"iter"

	"github.com/npillmayer/fp/maybe"
	"github.com/npillmayer/seq/fingertree"
)

// Seq is a persistent immutable sequence of elements of type T. Seq is a
// value type: assigning it copies a handle to shared immutable tree nodes,
// never the elements. The zero value is the empty sequence.
//
// There is no "move" of a sequence and no moved-from state; handing a Seq
// to another goroutine is an O(1) handle copy like any other.
type Seq[T any] struct {
	props
	h *fingertree.Handle[T]
}

type props struct {
	alloc fingertree.Allocator
}

// Option is a type to help initializing sequences at creation time.
type Option struct {
	config func(props) props
}

// WithAllocator is an option to account the sequence's tree nodes against
// an allocation capability, e.g. a fingertree.Budget or fingertree.Meter.
//
// Use it like this:
//
//	s := seq.Immutable[int](seq.WithAllocator(fingertree.NewBudget(1024)))
//
// Sequences derived from s account against the same capability.
func WithAllocator(a fingertree.Allocator) Option {
	return Option{config: func(p props) props {
		p.alloc = a
		return p
	}}
}

// Immutable constructs an empty sequence with options, if you need any.
func Immutable[T any](opts ...Option) Seq[T] {
	s := Seq[T]{}
	for _, option := range opts {
		s.props = option.config(s.props)
	}
	return s
}

// From constructs a sequence holding the given elements in order; linear
// in the number of elements. From builds on the default heap allocator
// and cannot fail; bulk construction against an accounting allocator goes
// through
//
//	seq.Immutable[T](seq.WithAllocator(b)).AppendAll(xs)
//
// which reports allocation failure instead.
func From[T any](xs ...T) Seq[T] {
	root, err := fingertree.FromSlice(fingertree.HeapAllocator(), xs)
	assertThat(err == nil, "heap allocation cannot fail")
	return Seq[T]{h: fingertree.NewHandle(fingertree.HeapAllocator(), root)}
}

// FromRange constructs a sequence from a range, iterating it exactly once
// and appending each element; linear in the range length. Like From it
// builds on the default heap allocator; see From for the budgeted path.
func FromRange[T any](xs iter.Seq[T]) Seq[T] {
	root, err := fingertree.PushAll[T](fingertree.HeapAllocator(), nil, xs)
	assertThat(err == nil, "heap allocation cannot fail")
	return Seq[T]{h: fingertree.NewHandle(fingertree.HeapAllocator(), root)}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements. O(1), read from the cached root
// size. The core keeps sizes as uint64; a sequence longer than the int
// range cannot be reported here and panics instead of wrapping.
func (s Seq[T]) Len() int {
	return intLen(s.root().Size())
}

// IsVoid reports whether the sequence has no elements.
func (s Seq[T]) IsVoid() bool {
	return s.root() == nil
}

// Append derives a new sequence with x as its last element. Amortized
// O(1); s remains valid and unchanged.
func (s Seq[T]) Append(x T) (Seq[T], error) {
	root, err := fingertree.PushBack(s.alloc(), s.root(), x)
	if err != nil {
		return Seq[T]{}, err
	}
	return s.derive(root), nil
}

// Prepend derives a new sequence with x as its first element. Amortized
// O(1); s remains valid and unchanged.
func (s Seq[T]) Prepend(x T) (Seq[T], error) {
	root, err := fingertree.PushFront(s.alloc(), s.root(), x)
	if err != nil {
		return Seq[T]{}, err
	}
	return s.derive(root), nil
}

// AppendAll derives a new sequence with all elements of xs appended,
// iterating xs exactly once. O(1) amortized per appended element.
func (s Seq[T]) AppendAll(xs iter.Seq[T]) (Seq[T], error) {
	root, err := fingertree.PushAll(s.alloc(), s.root(), xs)
	if err != nil {
		return Seq[T]{}, err
	}
	return s.derive(root), nil
}

// First returns the first element, if any. O(1) for the lookup into the
// boundary digit.
func (s Seq[T]) First() maybe.Maybe[T] {
	if x, ok := fingertree.First(s.root()); ok {
		return maybe.Just(x)
	}
	return maybe.Nothing[T]()
}

// Last returns the last element, if any.
func (s Seq[T]) Last() maybe.Maybe[T] {
	if x, ok := fingertree.Last(s.root()); ok {
		return maybe.Just(x)
	}
	return maybe.Nothing[T]()
}

// At returns the element at position i. O(log i); sequences trade constant
// indexed access for constant end operations.
func (s Seq[T]) At(i int) (T, error) {
	if i < 0 {
		var none T
		return none, ErrIndexOutOfBounds
	}
	x, err := fingertree.At(s.root(), uint64(i))
	if err != nil {
		var none T
		return none, ErrIndexOutOfBounds
	}
	return x, nil
}

// Clone returns an independent sequence value sharing all elements with s.
// O(1), a handle clone; no element is copied.
func (s Seq[T]) Clone() Seq[T] {
	c := s
	c.h = s.h.Clone()
	return c
}

// Discard releases the sequence's reference to its tree, returning node
// accounting to the sequence's allocator. Only meaningful together with
// WithAllocator; sequences on the default heap allocator may simply be
// dropped for the collector.
func (s Seq[T]) Discard() {
	s.h.Discard()
}

// Each visits all elements in sequence order, with their positions.
// Iteration stops at the first callback error and returns that error.
func (s Seq[T]) Each(f func(x T, i int) error) error {
	if f == nil {
		return ErrIllegalArguments
	}
	var err error
	i := 0
	fingertree.Each(s.root(), func(x T) bool {
		if err = f(x, i); err != nil {
			return false
		}
		i++
		return true
	})
	return err
}

// Range returns an iterator over all elements in sequence order.
func (s Seq[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		fingertree.Each(s.root(), yield)
	}
}

// Cursor returns a forward cursor positioned before the first element.
// O(1) to obtain; multiple cursors may walk the same sequence concurrently.
func (s Seq[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{inner: fingertree.NewCursor(s.root())}
}

// Sketch describes the sequence's tree shape, for debugging; see package
// seqdbg for renderers.
func (s Seq[T]) Sketch() fingertree.Sketch {
	return s.root().Sketch()
}

// --- Internals -------------------------------------------------------------

func (s Seq[T]) root() *fingertree.Tree[T] {
	return s.h.Root()
}

func (s Seq[T]) alloc() fingertree.Allocator {
	if s.h != nil {
		return s.h.Alloc()
	}
	if s.props.alloc != nil {
		return s.props.alloc
	}
	return fingertree.HeapAllocator()
}

// derive wraps a fresh tree root into a sequence sharing s's allocator.
func (s Seq[T]) derive(root *fingertree.Tree[T]) Seq[T] {
	n := s
	n.h = fingertree.NewHandle(s.alloc(), root)
	return n
}
