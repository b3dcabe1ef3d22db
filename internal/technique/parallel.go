package technique

import (
	"fmt"
	"math/big"
	"runtime"
	"sync"

	apperrors "github.com/speedyfib/fibbench/internal/errors"
	"github.com/speedyfib/fibbench/internal/parallel"
)

// parallelWindow is the number of values computed per refill, split across
// the workers as contiguous chunks.
const parallelWindow = 128

// Parallel computes the sequence in windows split across a fixed pool of
// workers. Each worker seeds its chunk with one fast doubling descent and
// then iterates, so chunks are fully independent: the classic batch shape
// for an inherently sequential recurrence.
//
// All concurrency lives inside Step's refill: workers are spawned, joined at
// a barrier, and their first error collected before any value is served. The
// runner sees only the single-threaded step contract. Worker panics are
// contained here as well, since a panic on a technique-spawned goroutine
// would escape the runner's own recovery.
type Parallel struct {
	indexState
	workers int
	// window holds values for indices [base, base+filled).
	window []*big.Int
	base   uint64
	filled int
}

// NewParallel creates a worker-pool technique. workers <= 0 selects
// runtime.NumCPU().
func NewParallel(workers int) *Parallel {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > parallelWindow {
		workers = parallelWindow
	}
	return &Parallel{
		workers: workers,
		window:  make([]*big.Int, parallelWindow),
	}
}

// Describe returns the static metadata for the technique.
func (t *Parallel) Describe() Descriptor {
	return Descriptor{
		Name:            "parallel",
		Summary:         "Worker-pool batches, concurrency internal to the technique",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(w)",
	}
}

// Reset discards the window and rewinds to F(0). The worker count survives.
func (t *Parallel) Reset() {
	t.window = make([]*big.Int, parallelWindow)
	t.base = 0
	t.filled = 0
	t.resetIndex()
}

// Step serves the next value from the window, running a parallel refill when
// the window is exhausted.
func (t *Parallel) Step() (StepResult, error) {
	n := t.nextIndex()
	if n >= t.base+uint64(t.filled) {
		if err := t.refill(n); err != nil {
			return StepResult{}, apperrors.NewComputationError(n, err)
		}
	}
	v := t.window[n-t.base]
	t.commit(n)
	return StepResult{Index: n, Value: clone(v)}, nil
}

// refill fills the window for indices [from, from+parallelWindow) across the
// worker pool and joins before returning.
func (t *Parallel) refill(from uint64) error {
	t.base = from
	t.filled = parallelWindow

	chunk := parallelWindow / t.workers
	if parallelWindow%t.workers != 0 {
		chunk++
	}

	var wg sync.WaitGroup
	var ec parallel.ErrorCollector
	for w := 0; w < t.workers; w++ {
		lo := w * chunk
		if lo >= parallelWindow {
			break
		}
		hi := lo + chunk
		if hi > parallelWindow {
			hi = parallelWindow
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					ec.SetError(fmt.Errorf("worker panic: %v", r))
				}
			}()
			ec.SetError(t.fillChunk(lo, hi))
		}(lo, hi)
	}
	wg.Wait()
	return ec.Err()
}

// fillChunk computes window slots [lo, hi) for the worker that owns them.
func (t *Parallel) fillChunk(lo, hi int) error {
	a, b := fastDoublingPair(t.base + uint64(lo))
	for i := lo; i < hi; i++ {
		t.window[i] = clone(a)
		a.Add(a, b)
		a, b = b, a
	}
	return nil
}

var _ Technique = (*Parallel)(nil)
