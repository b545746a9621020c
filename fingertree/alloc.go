package fingertree

import "sync/atomic"

// Allocator is an opaque allocation capability which node creation is
// accounted against. The tree never assumes a specific allocation strategy;
// it only asks for permission before building nodes and hands the
// permission back when the last reference to a node disappears.
//
// Implementations must be safe for concurrent use.
type Allocator interface {
	// Grab requests accounting for n new nodes. A non-nil error denies the
	// request; no node will be built in that case.
	Grab(n int) error
	// Drop returns accounting for n released nodes.
	Drop(n int)
}

// heap is the default allocation capability: the Go heap, which never
// refuses storage at this level.
type heap struct{}

func (heap) Grab(int) error { return nil }
func (heap) Drop(int)       {}

var defaultAllocator Allocator = heap{}

func ensureAlloc(a Allocator) Allocator {
	if a == nil {
		return defaultAllocator
	}
	return a
}

// HeapAllocator returns the default allocation capability, backed by the
// Go heap. Its Grab never fails and its Drop is a no-op.
func HeapAllocator() Allocator {
	return defaultAllocator
}

// --- Budget ----------------------------------------------------------------

// Budget is an Allocator with a fixed node budget. Grab fails with
// ErrAllocationFailed as soon as the budget is exhausted; discarding
// sequences (see Handle) returns budget.
type Budget struct {
	avail int64
	limit int64
}

// NewBudget creates an allocation budget for at most n nodes.
func NewBudget(n int64) *Budget {
	return &Budget{avail: n, limit: n}
}

func (b *Budget) Grab(n int) error {
	for {
		avail := atomic.LoadInt64(&b.avail)
		if avail < int64(n) {
			return ErrAllocationFailed
		}
		if atomic.CompareAndSwapInt64(&b.avail, avail, avail-int64(n)) {
			return nil
		}
	}
}

func (b *Budget) Drop(n int) {
	a := atomic.AddInt64(&b.avail, int64(n))
	assertThat(a <= b.limit, "budget overflow: more nodes dropped than grabbed")
}

// Avail returns the number of nodes the budget will still provide.
func (b *Budget) Avail() int64 {
	return atomic.LoadInt64(&b.avail)
}

// --- Meter -----------------------------------------------------------------

// Meter is an Allocator that never fails but counts allocations. It backs
// deterministic complexity tests: amortized bounds are asserted via node
// counts instead of wall-clock timing.
type Meter struct {
	total int64
	live  int64
}

// NewMeter creates a counting allocator.
func NewMeter() *Meter {
	return &Meter{}
}

func (m *Meter) Grab(n int) error {
	atomic.AddInt64(&m.total, int64(n))
	atomic.AddInt64(&m.live, int64(n))
	return nil
}

func (m *Meter) Drop(n int) {
	atomic.AddInt64(&m.live, -int64(n))
}

// Total returns the number of nodes allocated over the meter's lifetime.
func (m *Meter) Total() int64 {
	return atomic.LoadInt64(&m.total)
}

// Live returns the number of nodes currently accounted for.
func (m *Meter) Live() int64 {
	return atomic.LoadInt64(&m.live)
}
