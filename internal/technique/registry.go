package technique

import (
	"sync"

	apperrors "github.com/speedyfib/fibbench/internal/errors"
)

// Constructor creates a fresh, reset instance of a technique. It returns an
// error when the backing implementation is unavailable in this build (e.g.,
// the gmp technique when compiled without the gmp tag).
type Constructor func() (Technique, error)

// Registry enumerates the available techniques and provides fresh, isolated
// instances. Instances never share mutable state: two runs of the same
// technique cannot corrupt each other's cache.
//
// Listing order is the insertion order of registration, stable across calls;
// the runner and report rely on it for deterministic output.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]registryEntry
}

type registryEntry struct {
	desc Descriptor
	ctor Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registryEntry)}
}

// NewDefaultRegistry creates a registry with the twelve standard techniques
// pre-registered. The order is the canonical pedagogical ordering: each entry
// illustrates a different complexity class or constant-factor effect on the
// same problem.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	_ = r.Register(Descriptor{
		Name:            "naive",
		Summary:         "Plain tree recursion, recomputing every subproblem",
		TimeComplexity:  "O(2^n)",
		SpaceComplexity: "O(n)",
	}, func() (Technique, error) { return NewNaive(), nil })

	_ = r.Register(Descriptor{
		Name:            "memoized",
		Summary:         "Recursion with an instance-owned memo table",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(n)",
	}, func() (Technique, error) { return NewMemoized(), nil })

	_ = r.Register(Descriptor{
		Name:            "dynamic",
		Summary:         "Bottom-up dynamic programming over a full table",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(n)",
	}, func() (Technique, error) { return NewDynamic(), nil })

	_ = r.Register(Descriptor{
		Name:            "matrix",
		Summary:         "2x2 matrix exponentiation, from scratch each step",
		TimeComplexity:  "O(log n)",
		SpaceComplexity: "O(1)",
	}, func() (Technique, error) { return NewMatrix(), nil })

	_ = r.Register(Descriptor{
		Name:            "binet",
		Summary:         "Binet's closed form with n-scaled float precision",
		TimeComplexity:  "O(log n)",
		SpaceComplexity: "O(1)",
	}, func() (Technique, error) { return NewBinet(), nil })

	_ = r.Register(Descriptor{
		Name:            "generator",
		Summary:         "Streaming pair state, one addition per step",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(1)",
	}, func() (Technique, error) { return NewGenerator(), nil })

	_ = r.Register(Descriptor{
		Name:            "batch",
		Summary:         "Windowed bulk computation served step-by-step",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(1)",
	}, func() (Technique, error) { return NewBatch(), nil })

	_ = r.Register(Descriptor{
		Name:            "hybrid64",
		Summary:         "uint64 fast path with transparent big.Int fallback",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(1)",
	}, func() (Technique, error) { return NewHybrid64(), nil })

	_ = r.Register(Descriptor{
		Name:            "gmp",
		Summary:         "GMP-backed streaming via cgo (requires -tags=gmp)",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(1)",
	}, newGMP)

	_ = r.Register(Descriptor{
		Name:            "iterative",
		Summary:         "Space-optimized iteration, from scratch each step",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(1)",
	}, func() (Technique, error) { return NewIterative(), nil })

	_ = r.Register(Descriptor{
		Name:            "fastdoubling",
		Summary:         "Fast doubling identities, from scratch each step",
		TimeComplexity:  "O(log n)",
		SpaceComplexity: "O(1)",
	}, func() (Technique, error) { return NewFastDoubling(), nil })

	_ = r.Register(Descriptor{
		Name:            "parallel",
		Summary:         "Worker-pool batches, concurrency internal to the technique",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(w)",
	}, func() (Technique, error) { return NewParallel(0), nil })

	return r
}

// Register adds a technique to the registry. The descriptor's name is the
// registry key. Registering a name twice is a programming error and is
// rejected so the canonical ordering cannot be silently disturbed.
func (r *Registry) Register(desc Descriptor, ctor Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[desc.Name]; exists {
		return apperrors.NewConfigError("technique %q already registered", desc.Name)
	}
	r.entries[desc.Name] = registryEntry{desc: desc, ctor: ctor}
	r.order = append(r.order, desc.Name)
	return nil
}

// ListAvailable returns the descriptors of all registered techniques in
// registration order. The slice is a copy; callers may not mutate registry
// state through it.
func (r *Registry) ListAvailable() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		descriptors = append(descriptors, r.entries[name].desc)
	}
	return descriptors
}

// Names returns the registered technique names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Has checks whether a technique with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.entries[name]
	return exists
}

// Instantiate returns a new, reset instance of the named technique.
//
// Returns:
//   - Technique: A fresh instance sharing no state with any other.
//   - error: An apperrors.RegistrationError if the name is unknown or the
//     backing implementation is unavailable in this build.
func (r *Registry) Instantiate(name string) (Technique, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, apperrors.NewRegistrationError(name, nil)
	}
	t, err := entry.ctor()
	if err != nil {
		return nil, apperrors.NewRegistrationError(name, err)
	}
	t.Reset()
	return t, nil
}

// Describe returns the descriptor for the named technique without
// instantiating it, so unavailable techniques still appear in reports.
func (r *Registry) Describe(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	return entry.desc, ok
}
