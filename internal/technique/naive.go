package technique

import "math/big"

// Naive computes each value by plain tree recursion, recomputing every
// subproblem from scratch. It exists as the exponential baseline of the
// comparison: within a one-second budget it rarely clears n=40.
type Naive struct {
	indexState
}

// NewNaive creates a naive recursion technique.
func NewNaive() *Naive {
	return &Naive{}
}

// Describe returns the static metadata for the technique.
func (t *Naive) Describe() Descriptor {
	return Descriptor{
		Name:            "naive",
		Summary:         "Plain tree recursion, recomputing every subproblem",
		TimeComplexity:  "O(2^n)",
		SpaceComplexity: "O(n)",
	}
}

// Reset rewinds the technique; the next Step produces F(0).
func (t *Naive) Reset() {
	t.resetIndex()
}

// Step computes the next value by full recursive descent.
func (t *Naive) Step() (StepResult, error) {
	n := t.nextIndex()
	v := naiveFib(n)
	t.commit(n)
	return StepResult{Index: n, Value: v}, nil
}

func naiveFib(n uint64) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	return new(big.Int).Add(naiveFib(n-1), naiveFib(n-2))
}

var _ Technique = (*Naive)(nil)
