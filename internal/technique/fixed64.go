package technique

import (
	"math"
	"math/big"

	apperrors "github.com/speedyfib/fibbench/internal/errors"
)

// Fixed64 streams the sequence on uint64 arithmetic and refuses to continue
// past its numeric domain: it produces correct values through F(93) and then
// fails every further Step with a ComputationError wrapping ErrOverflow.
// It never silently wraps around; surfacing the overflow is the point.
//
// This is the stop-on-overflow policy counterpart to Hybrid64. It is not in
// the default registry; it exists for callers that want a deliberately
// bounded technique and for exercising the runner's Errored path with real
// arithmetic rather than a stub.
type Fixed64 struct {
	indexState
	a, b      uint64 // (F(k), F(k+1)) after producing k
	exhausted bool
}

// NewFixed64 creates a strict fixed-width technique.
func NewFixed64() *Fixed64 {
	return &Fixed64{a: 0, b: 1}
}

// Describe returns the static metadata for the technique.
func (t *Fixed64) Describe() Descriptor {
	return Descriptor{
		Name:            "fixed64",
		Summary:         "uint64-only iteration, errors past F(93)",
		TimeComplexity:  "O(1)",
		SpaceComplexity: "O(1)",
	}
}

// Reset rewinds to the pair (F(0), F(1)) and clears the exhausted flag.
func (t *Fixed64) Reset() {
	t.a, t.b = 0, 1
	t.exhausted = false
	t.resetIndex()
}

// Step advances by one position, or fails once the next value no longer
// fits in a uint64.
func (t *Fixed64) Step() (StepResult, error) {
	n := t.nextIndex()
	if t.exhausted {
		return StepResult{}, apperrors.NewComputationError(n, apperrors.ErrOverflow)
	}
	if n > 0 {
		if t.a > math.MaxUint64-t.b {
			// The pair can still yield F(k+1) = b, but not the successor.
			value := t.b
			t.exhausted = true
			t.commit(n)
			return StepResult{Index: n, Value: new(big.Int).SetUint64(value)}, nil
		}
		t.a, t.b = t.b, t.a+t.b
	}
	t.commit(n)
	return StepResult{Index: n, Value: new(big.Int).SetUint64(t.a)}, nil
}

var _ Technique = (*Fixed64)(nil)
