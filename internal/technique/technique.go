// Package technique provides the pluggable Fibonacci computation strategies
// driven by the benchmark runner. It exposes a `Technique` interface that
// abstracts the underlying algorithm, allowing strategies with wildly
// different cost models (tree recursion, streaming iteration, fast doubling,
// worker-pool batches) to be measured through one uniform, resumable
// single-step contract.
package technique

import "math/big"

// StepResult is the output of asking a technique for the next Fibonacci
// value: the index it corresponds to and the computed value. The Value is a
// copy owned by the caller; techniques never hand out their internal state.
type StepResult struct {
	// Index is the Fibonacci index of Value (0-based, F(0)=0).
	Index uint64
	// Value is the computed Fibonacci number. Arbitrary precision: values
	// can have thousands of digits.
	Value *big.Int
}

// Technique is the minimal capability every Fibonacci strategy must expose
// so the runner can drive it without knowing its internals.
//
// The contract is intentionally a single-step advance rather than
// "compute F(n) directly": the benchmark's unit of measurement is how many
// values a strategy produces in a fixed time, which requires incremental,
// resumable computation. Strategies wrapping a solve-F(n)-outright primitive
// (matrix exponentiation, Binet's formula, fast doubling) adapt it by
// tracking and incrementing their index internally.
//
// Implementations are NOT safe for concurrent use; each run gets a fresh
// instance from the registry.
type Technique interface {
	// Reset returns the technique to its initial state: the next Step will
	// produce F(0). It must be idempotent and clears any internal cache or
	// generator state.
	Reset()

	// Step advances by exactly one Fibonacci index and returns the result
	// for the new current index. It must be safe to call in a tight loop;
	// a technique may lazily initialize on the first call but must not pay
	// setup costs on every call.
	//
	// Returns:
	//   - StepResult: The index and value produced.
	//   - error: An apperrors.ComputationError when the technique's numeric
	//     domain is exceeded. After an error the current index is unchanged.
	Step() (StepResult, error)

	// CurrentIndex returns the last index successfully computed. The second
	// return value is false if no step has completed since the last Reset.
	CurrentIndex() (uint64, bool)

	// Describe returns the technique's static metadata. It performs no
	// computation and is valid even for techniques that cannot be
	// instantiated in this build.
	Describe() Descriptor
}

// Descriptor identifies a strategy: a unique name, a one-line summary, and
// textual complexity labels used for reporting only (never enforced).
// Immutable once registered.
type Descriptor struct {
	// Name is the unique registry key (e.g., "fastdoubling").
	Name string `json:"name"`
	// Summary is a one-line description of the algorithm.
	Summary string `json:"summary"`
	// TimeComplexity is the Big-O time class per step (e.g., "O(2^n)").
	TimeComplexity string `json:"time_complexity"`
	// SpaceComplexity is the Big-O space class (e.g., "O(1)").
	SpaceComplexity string `json:"space_complexity"`
}

// indexState tracks a technique's position in the sequence. Techniques embed
// it to share the next/commit bookkeeping: nextIndex proposes the index for
// the step in progress, commit records it only once the value was produced,
// so a failing step leaves CurrentIndex at the last good position.
type indexState struct {
	index   uint64
	started bool
}

// nextIndex returns the index the next Step must produce.
func (s *indexState) nextIndex() uint64 {
	if !s.started {
		return 0
	}
	return s.index + 1
}

// commit records n as the last successfully computed index.
func (s *indexState) commit(n uint64) {
	s.index = n
	s.started = true
}

// resetIndex rewinds to the initial "nothing computed yet" state.
func (s *indexState) resetIndex() {
	s.index = 0
	s.started = false
}

// CurrentIndex returns the last index successfully computed, or false if no
// step has completed yet.
func (s *indexState) CurrentIndex() (uint64, bool) {
	return s.index, s.started
}

// clone returns a defensive copy of v.
func clone(v *big.Int) *big.Int {
	return new(big.Int).Set(v)
}
