package bench

import (
	"math/big"
	"sync"
)

// Verdict is the outcome of checking a computed value against the reference
// sequence.
type Verdict int

const (
	// Unknown means no reference is available for the index; it never halts
	// a run.
	Unknown Verdict = iota
	// Valid means the value matched the reference exactly.
	Valid
	// Invalid means the value mismatched a known reference; the run is
	// halted for that technique.
	Invalid
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// DefaultDeriveLimit is the highest index for which the validator derives
// reference values beyond the seed set. Above it, Check returns Unknown.
// Derivation is O(1) amortized for the runner's sequential access pattern,
// so the limit exists to bound memory of the trusted tail, not time.
const DefaultDeriveLimit = 200_000

// maxSmallSeed is the top of the dense seed range: every F(n) that fits in
// a uint64.
const maxSmallSeed = 93

// smallSeeds holds F(0)..F(93), built once at startup from uint64 iteration.
// Immutable after init: build-once, read-many.
var smallSeeds [maxSmallSeed + 1]*big.Int

// largeSeeds holds sparse precomputed references beyond the uint64 range
// (OEIS A000045). Immutable after init.
var largeSeeds map[uint64]*big.Int

func init() {
	a, b := uint64(0), uint64(1)
	for n := uint64(0); n <= maxSmallSeed; n++ {
		smallSeeds[n] = new(big.Int).SetUint64(a)
		a, b = b, a+b
	}

	largeSeeds = make(map[uint64]*big.Int)
	for n, s := range map[uint64]string{
		100: "354224848179261915075",
		150: "9969216677189303386214405760200",
		200: "280571172992510140037611932413038677189525",
		300: "222232244629420445529739893461909967206666939096499764990979600",
		500: "139423224561697880139724382870407283950070256587697307264108962948325571622863290691557658876222521294125",
	} {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			panic("bench: malformed seed reference for F(" + new(big.Int).SetUint64(n).String() + ")")
		}
		largeSeeds[n] = v
	}
}

// Validator checks computed values against known-correct Fibonacci numbers
// using exact arbitrary-precision comparison, never floating-point
// tolerance, even for techniques that use floats internally, because it
// compares final integer outputs.
//
// Policy (documented and consistent): indices covered by the seed set are
// always checked; indices up to the derive limit are checked against a
// trusted iterative recompute maintained as an incremental tail; indices
// beyond the limit return Unknown. Unknown never halts a run, Invalid does.
type Validator struct {
	deriveLimit uint64

	// The trusted tail is (F(idx), F(idx+1)) advanced on demand. The runner
	// is single-threaded, but the preflight checks techniques concurrently,
	// so access is serialized.
	mu      sync.Mutex
	tailIdx uint64
	tailA   *big.Int
	tailB   *big.Int
}

// NewValidator creates a Validator with the default derivation limit.
func NewValidator() *Validator {
	return NewValidatorWithLimit(DefaultDeriveLimit)
}

// NewValidatorWithLimit creates a Validator deriving references up to the
// given index. A limit below the seed range disables derivation entirely.
func NewValidatorWithLimit(limit uint64) *Validator {
	return &Validator{
		deriveLimit: limit,
		tailIdx:     0,
		tailA:       big.NewInt(0),
		tailB:       big.NewInt(1),
	}
}

// Check compares value against the reference for index.
//
// Returns:
//   - Valid: exact match with a seeded or derived reference.
//   - Invalid: mismatch with a seeded or derived reference.
//   - Unknown: no reference available (index above the derive limit).
func (v *Validator) Check(index uint64, value *big.Int) Verdict {
	if value == nil {
		return Invalid
	}
	ref, ok := v.Reference(index)
	if !ok {
		return Unknown
	}
	if value.Cmp(ref) == 0 {
		return Valid
	}
	return Invalid
}

// Reference returns the trusted value for index, deriving it if necessary.
// The second return value is false when the index is beyond the validator's
// coverage. The returned value must not be modified.
func (v *Validator) Reference(index uint64) (*big.Int, bool) {
	if index <= maxSmallSeed {
		return smallSeeds[index], true
	}
	if ref, ok := largeSeeds[index]; ok {
		return ref, true
	}
	if index > v.deriveLimit {
		return nil, false
	}
	return v.derive(index), true
}

// derive advances the trusted tail to index and returns F(index). Sequential
// access (the runner's pattern) costs one addition per call; a rewind
// rebuilds from the base, which only happens when a new technique restarts
// at low indices already covered by the seed tables.
func (v *Validator) derive(index uint64) *big.Int {
	v.mu.Lock()
	defer v.mu.Unlock()

	if index < v.tailIdx {
		v.tailIdx = 0
		v.tailA = big.NewInt(0)
		v.tailB = big.NewInt(1)
	}
	for v.tailIdx < index {
		v.tailA.Add(v.tailA, v.tailB)
		v.tailA, v.tailB = v.tailB, v.tailA
		v.tailIdx++
	}
	return new(big.Int).Set(v.tailA)
}
