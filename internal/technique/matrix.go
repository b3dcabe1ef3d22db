package technique

import (
	"math/big"
	"math/bits"
)

// Matrix computes F(n) from scratch on every step by raising the Fibonacci
// matrix [[1,1],[1,0]] to the n-th power with exponentiation by squaring.
// Its identity:
//
//	[ 1 1 ]^n = [ F(n+1) F(n)   ]
//	[ 1 0 ]     [ F(n)   F(n-1) ]
//
// This is the "solve F(n) outright" cost model: O(log n) big multiplications
// per step, with no state carried between steps beyond the index.
type Matrix struct {
	indexState
}

// NewMatrix creates a matrix exponentiation technique.
func NewMatrix() *Matrix {
	return &Matrix{}
}

// Describe returns the static metadata for the technique.
func (t *Matrix) Describe() Descriptor {
	return Descriptor{
		Name:            "matrix",
		Summary:         "2x2 matrix exponentiation, from scratch each step",
		TimeComplexity:  "O(log n)",
		SpaceComplexity: "O(1)",
	}
}

// Reset rewinds the technique; the next Step produces F(0).
func (t *Matrix) Reset() {
	t.resetIndex()
}

// Step computes the next value by a fresh matrix power.
func (t *Matrix) Step() (StepResult, error) {
	n := t.nextIndex()
	v := matrixFib(n)
	t.commit(n)
	return StepResult{Index: n, Value: v}, nil
}

// mat2 is a 2x2 matrix of big integers:
//
//	[ a b ]
//	[ c d ]
type mat2 struct {
	a, b, c, d *big.Int
}

func identityMat2() mat2 {
	return mat2{a: big.NewInt(1), b: big.NewInt(0), c: big.NewInt(0), d: big.NewInt(1)}
}

func fibMat2() mat2 {
	return mat2{a: big.NewInt(1), b: big.NewInt(1), c: big.NewInt(1), d: big.NewInt(0)}
}

// mul returns m*o as a freshly allocated matrix.
func (m mat2) mul(o mat2) mat2 {
	t1 := new(big.Int)
	t2 := new(big.Int)
	return mat2{
		a: new(big.Int).Add(t1.Mul(m.a, o.a), new(big.Int).Mul(m.b, o.c)),
		b: new(big.Int).Add(t2.Mul(m.a, o.b), new(big.Int).Mul(m.b, o.d)),
		c: new(big.Int).Add(new(big.Int).Mul(m.c, o.a), new(big.Int).Mul(m.d, o.c)),
		d: new(big.Int).Add(new(big.Int).Mul(m.c, o.b), new(big.Int).Mul(m.d, o.d)),
	}
}

// matrixFib returns F(n) via matrix exponentiation.
func matrixFib(n uint64) *big.Int {
	if n == 0 {
		return big.NewInt(0)
	}
	result := identityMat2()
	base := fibMat2()
	for i := 0; i < bits.Len64(n); i++ {
		if (n>>i)&1 == 1 {
			result = result.mul(base)
		}
		base = base.mul(base)
	}
	return result.b
}

var _ Technique = (*Matrix)(nil)
