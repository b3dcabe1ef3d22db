package technique

import "math/big"

// Memoized is recursion backed by an explicit memo table owned exclusively
// by the instance. Because the runner advances one index at a time, every
// recursive call after the first two hits the cache, making the effective
// per-step cost a single big.Int addition.
//
// The cache is deliberately a plain map in instance state rather than any
// shared or global structure: two concurrent runs of this technique must not
// observe each other's entries.
type Memoized struct {
	indexState
	cache map[uint64]*big.Int
}

// NewMemoized creates a memoized recursion technique with an empty cache.
func NewMemoized() *Memoized {
	return &Memoized{cache: make(map[uint64]*big.Int)}
}

// Describe returns the static metadata for the technique.
func (t *Memoized) Describe() Descriptor {
	return Descriptor{
		Name:            "memoized",
		Summary:         "Recursion with an instance-owned memo table",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(n)",
	}
}

// Reset discards the memo table and rewinds to F(0).
func (t *Memoized) Reset() {
	t.cache = make(map[uint64]*big.Int)
	t.resetIndex()
}

// Step computes the next value through the memoized recursion.
func (t *Memoized) Step() (StepResult, error) {
	n := t.nextIndex()
	v := t.fib(n)
	t.commit(n)
	return StepResult{Index: n, Value: clone(v)}, nil
}

// fib returns the cached value for n, computing and caching it on a miss.
// The returned pointer is cache-owned; Step clones before handing it out.
func (t *Memoized) fib(n uint64) *big.Int {
	if v, ok := t.cache[n]; ok {
		return v
	}
	var v *big.Int
	if n < 2 {
		v = big.NewInt(int64(n))
	} else {
		v = new(big.Int).Add(t.fib(n-1), t.fib(n-2))
	}
	t.cache[n] = v
	return v
}

var _ Technique = (*Memoized)(nil)
