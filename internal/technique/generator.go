package technique

import "math/big"

// Generator streams the sequence from explicit pair state: after producing
// F(k) it holds (F(k), F(k+1)), so each step is a single big.Int addition.
// This is the pull-based, restartable rendition of a lazy generator: an
// internal state struct advanced by one call to Step, not a coroutine.
//
// It is the benchmark's incremental baseline: the cheapest possible step,
// against which the from-scratch solvers are contrasted.
type Generator struct {
	indexState
	curr *big.Int // F(index) once started
	next *big.Int // F(index+1)
}

// NewGenerator creates a streaming generator positioned before F(0).
func NewGenerator() *Generator {
	return &Generator{curr: big.NewInt(0), next: big.NewInt(1)}
}

// Describe returns the static metadata for the technique.
func (t *Generator) Describe() Descriptor {
	return Descriptor{
		Name:            "generator",
		Summary:         "Streaming pair state, one addition per step",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(1)",
	}
}

// Reset rewinds the pair to (F(0), F(1)).
func (t *Generator) Reset() {
	t.curr = big.NewInt(0)
	t.next = big.NewInt(1)
	t.resetIndex()
}

// Step advances the pair by one position and returns the new current value.
func (t *Generator) Step() (StepResult, error) {
	n := t.nextIndex()
	if n > 0 {
		// (F(k), F(k+1)) -> (F(k+1), F(k)+F(k+1))
		t.curr, t.next = t.next, new(big.Int).Add(t.curr, t.next)
	}
	t.commit(n)
	return StepResult{Index: n, Value: clone(t.curr)}, nil
}

var _ Technique = (*Generator)(nil)
