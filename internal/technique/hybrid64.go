package technique

import (
	"math"
	"math/big"
)

// MaxFibUint64 is the largest index whose Fibonacci number fits in a uint64:
// F(93) = 12200160415121876738 < 2^64 <= F(94).
const MaxFibUint64 = 93

// Hybrid64 streams the sequence on machine words while the values fit, then
// transparently falls back to big.Int pair state and keeps going. The switch
// happens mid-run without the caller noticing: this is the documented
// fallback policy for fixed-width overflow (the alternative, stopping with a
// ComputationError, is Fixed64).
//
// The uint64 fast path makes the constant-factor point of the comparison:
// identical O(n) algorithm, an order of magnitude cheaper per step than
// arbitrary precision, until index 93.
type Hybrid64 struct {
	indexState
	// word-sized pair (F(k), F(k+1)), valid while !promoted
	a, b uint64
	// big pair, valid once promoted
	bigA, bigB *big.Int
	promoted   bool
}

// NewHybrid64 creates a hybrid fixed/arbitrary width technique.
func NewHybrid64() *Hybrid64 {
	return &Hybrid64{a: 0, b: 1}
}

// Describe returns the static metadata for the technique.
func (t *Hybrid64) Describe() Descriptor {
	return Descriptor{
		Name:            "hybrid64",
		Summary:         "uint64 fast path with transparent big.Int fallback",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(1)",
	}
}

// Reset rewinds to the word-sized pair (F(0), F(1)).
func (t *Hybrid64) Reset() {
	t.a, t.b = 0, 1
	t.bigA, t.bigB = nil, nil
	t.promoted = false
	t.resetIndex()
}

// Step advances the pair by one position, promoting the state to big.Int the
// first time the next pair member would overflow.
func (t *Hybrid64) Step() (StepResult, error) {
	n := t.nextIndex()
	if t.promoted {
		if n > 0 {
			t.bigA, t.bigB = t.bigB, new(big.Int).Add(t.bigA, t.bigB)
		}
		t.commit(n)
		return StepResult{Index: n, Value: clone(t.bigA)}, nil
	}

	if n > 0 {
		if t.a > math.MaxUint64-t.b {
			// F(k)+F(k+1) no longer fits: promote the pair and rotate in
			// arbitrary precision. The caller sees nothing but the value.
			t.bigA = new(big.Int).SetUint64(t.b)
			t.bigB = new(big.Int).Add(new(big.Int).SetUint64(t.a), t.bigA)
			t.promoted = true
			t.commit(n)
			return StepResult{Index: n, Value: clone(t.bigA)}, nil
		}
		t.a, t.b = t.b, t.a+t.b
	}
	t.commit(n)
	return StepResult{Index: n, Value: new(big.Int).SetUint64(t.a)}, nil
}

var _ Technique = (*Hybrid64)(nil)
