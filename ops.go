package seq

import "github.com/npillmayer/seq/fingertree"

// Concat splices sequences and returns a new sequence; s and all others
// remain valid and unchanged. Each splice costs O(log min) of the two
// spliced lengths; splicing with an empty sequence is the identity.
func Concat[T any](s Seq[T], others ...Seq[T]) (Seq[T], error) {
	alloc := s.alloc()
	acc := s.root()
	owned := false
	for _, o := range others {
		tracer().Debugf("concat: |acc|=%d |rhs|=%d", acc.Size(), o.root().Size())
		nt, err := fingertree.Concat(alloc, acc, o.root())
		if owned {
			fingertree.Release(acc)
		}
		if err != nil {
			return Seq[T]{}, err
		}
		acc = nt
		owned = true
	}
	if !owned {
		return s.Clone(), nil
	}
	return s.derive(acc), nil
}

// Split splits a sequence right before position i: the left result holds
// elements 0...i-1, the right one the rest. Split(S,i) => S1=x0,...,xi-1 and
// S2=xi,...,xn. O(log n); s remains valid and unchanged, all untouched
// subtrees are shared.
//
// Positions outside [0, Len()] yield ErrIndexOutOfBounds.
func Split[T any](s Seq[T], i int) (Seq[T], Seq[T], error) {
	if i < 0 || i > s.Len() {
		return Seq[T]{}, Seq[T]{}, ErrIndexOutOfBounds
	}
	tracer().Debugf("split: |s|=%d at %d", s.Len(), i)
	left, right, err := fingertree.SplitAt(s.alloc(), s.root(), uint64(i))
	if err != nil {
		return Seq[T]{}, Seq[T]{}, err
	}
	return s.derive(left), s.derive(right), nil
}
