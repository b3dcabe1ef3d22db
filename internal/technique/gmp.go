//go:build gmp

// This file provides a GMP-backed technique, conditionally compiled with the
// "gmp" build tag. The build tag architecture ensures that:
//   - The harness builds without GMP by default (math/big everywhere)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// System requirements:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp

package technique

import (
	"math/big"

	"github.com/ncw/gmp"
)

// GMP streams the sequence on gmp.Int pair state, leveraging GMP's
// assembly-optimized arithmetic through cgo. Algorithmically identical to
// Generator; the comparison isolates the library's constant factor against
// math/big (minus the per-step cost of converting the result back to
// *big.Int at the contract boundary).
type GMP struct {
	indexState
	curr *gmp.Int
	next *gmp.Int
}

// newGMP creates the GMP-backed technique. With the gmp tag present the
// construction always succeeds.
func newGMP() (Technique, error) {
	return &GMP{curr: gmp.NewInt(0), next: gmp.NewInt(1)}, nil
}

// Describe returns the static metadata for the technique.
func (t *GMP) Describe() Descriptor {
	return Descriptor{
		Name:            "gmp",
		Summary:         "GMP-backed streaming via cgo (requires -tags=gmp)",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(1)",
	}
}

// Reset rewinds the pair to (F(0), F(1)).
func (t *GMP) Reset() {
	t.curr = gmp.NewInt(0)
	t.next = gmp.NewInt(1)
	t.resetIndex()
}

// Step advances the pair by one position and returns the new current value
// converted to math/big at the contract boundary.
func (t *GMP) Step() (StepResult, error) {
	n := t.nextIndex()
	if n > 0 {
		sum := new(gmp.Int).Add(t.curr, t.next)
		t.curr, t.next = t.next, sum
	}
	t.commit(n)
	// Fibonacci values are non-negative, so the magnitude bytes round-trip.
	return StepResult{Index: n, Value: new(big.Int).SetBytes(t.curr.Bytes())}, nil
}

var _ Technique = (*GMP)(nil)
