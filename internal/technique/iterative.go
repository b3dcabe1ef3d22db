package technique

import "math/big"

// Iterative is the space-optimized pair loop run from scratch on every step:
// producing F(n) walks the whole sequence from (0, 1) again, carrying only
// two values. Against Generator, the same loop kept warm between steps, it
// isolates what incremental state is worth: identical arithmetic, O(n) vs
// O(1) work per step.
type Iterative struct {
	indexState
}

// NewIterative creates a from-scratch iterative technique.
func NewIterative() *Iterative {
	return &Iterative{}
}

// Describe returns the static metadata for the technique.
func (t *Iterative) Describe() Descriptor {
	return Descriptor{
		Name:            "iterative",
		Summary:         "Space-optimized iteration, from scratch each step",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(1)",
	}
}

// Reset rewinds the technique; the next Step produces F(0).
func (t *Iterative) Reset() {
	t.resetIndex()
}

// Step recomputes the next value with a fresh pair loop.
func (t *Iterative) Step() (StepResult, error) {
	n := t.nextIndex()
	v := iterativeFib(n)
	t.commit(n)
	return StepResult{Index: n, Value: v}, nil
}

// iterativeFib returns F(n) by iterating the pair recurrence from the base.
func iterativeFib(n uint64) *big.Int {
	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := uint64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}

var _ Technique = (*Iterative)(nil)
