package technique

import "math/big"

// batchWindow is the number of values computed per refill. Large enough to
// amortize the per-window bookkeeping, small enough that a refill stays well
// under a millisecond at moderate indices.
const batchWindow = 256

// Batch computes the sequence in bulk windows and serves them one step at a
// time. A refill runs a tight pair loop that fills the whole window before
// any value is handed out, amortizing loop overhead across batchWindow
// steps, the scalar analog of a vectorized bulk computation.
type Batch struct {
	indexState
	// window holds values for indices [base, base+filled).
	window []*big.Int
	base   uint64
	filled int
	// a, b are (F(k), F(k+1)) where k = base+filled, the next unfilled index.
	a, b *big.Int
}

// NewBatch creates a windowed batch technique positioned before F(0).
func NewBatch() *Batch {
	return &Batch{
		window: make([]*big.Int, batchWindow),
		a:      big.NewInt(0),
		b:      big.NewInt(1),
	}
}

// Describe returns the static metadata for the technique.
func (t *Batch) Describe() Descriptor {
	return Descriptor{
		Name:            "batch",
		Summary:         "Windowed bulk computation served step-by-step",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(1)",
	}
}

// Reset discards the window and rewinds to F(0).
func (t *Batch) Reset() {
	t.window = make([]*big.Int, batchWindow)
	t.base = 0
	t.filled = 0
	t.a = big.NewInt(0)
	t.b = big.NewInt(1)
	t.resetIndex()
}

// Step serves the next value from the window, refilling it when exhausted.
func (t *Batch) Step() (StepResult, error) {
	n := t.nextIndex()
	if n >= t.base+uint64(t.filled) {
		t.refill()
	}
	v := t.window[n-t.base]
	t.commit(n)
	return StepResult{Index: n, Value: clone(v)}, nil
}

// refill computes the next batchWindow values in one tight loop.
func (t *Batch) refill() {
	t.base += uint64(t.filled)
	for i := 0; i < batchWindow; i++ {
		t.window[i] = clone(t.a)
		t.a, t.b = t.b, new(big.Int).Add(t.a, t.b)
	}
	t.filled = batchWindow
}

var _ Technique = (*Batch)(nil)
