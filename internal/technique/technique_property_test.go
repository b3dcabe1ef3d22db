package technique

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCassinisIdentity_PropertyBased verifies Cassini's Identity for the
// from-scratch solvers. For any n > 0:
//
//	F(n-1) * F(n+1) - F(n)^2 = (-1)^n
//
// The identity couples three consecutive values, so it catches both wrong
// values and off-by-one index bookkeeping.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("fast doubling satisfies Cassini's Identity", prop.ForAll(
		func(n uint64) bool {
			n = n%2000 + 1

			fnMinus1, fn := fastDoublingPair(n - 1)
			fn2, fnPlus1 := fastDoublingPair(n)
			if fn.Cmp(fn2) != 0 {
				return false // pair seams disagree
			}

			left := new(big.Int).Mul(fnMinus1, fnPlus1)
			left.Sub(left, new(big.Int).Mul(fn, fn))

			want := big.NewInt(1)
			if n%2 == 1 {
				want.Neg(want)
			}
			return left.Cmp(want) == 0
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestSolversAgree_PropertyBased drives every from-scratch solver to a random
// index and checks they all produce the identical value.
func TestSolversAgree_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("matrix, binet, iterative and fast doubling agree", prop.ForAll(
		func(n uint64) bool {
			n = n % 500

			want := matrixFib(n)
			if fd, _ := fastDoublingPair(n); fd.Cmp(want) != 0 {
				return false
			}
			if bn, err := binetFib(n); err != nil || bn.Cmp(want) != 0 {
				return false
			}
			return iterativeFib(n).Cmp(want) == 0
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
