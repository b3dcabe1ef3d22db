package technique

import (
	"math/big"
	"testing"
)

// refFib computes F(n) with the plain pair recurrence, serving as the
// trusted oracle for every technique under test.
func refFib(n uint64) *big.Int {
	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := uint64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}

// constructible returns one fresh instance of every technique that can be
// built in this test binary (gmp is exercised separately, tag-dependent).
func constructible() []Technique {
	return []Technique{
		NewNaive(),
		NewMemoized(),
		NewDynamic(),
		NewMatrix(),
		NewBinet(),
		NewGenerator(),
		NewBatch(),
		NewHybrid64(),
		NewFixed64(),
		NewIterative(),
		NewFastDoubling(),
		NewParallel(4),
	}
}

func TestStep_FirstValues(t *testing.T) {
	t.Parallel()

	for _, tech := range constructible() {
		tech := tech
		t.Run(tech.Describe().Name, func(t *testing.T) {
			t.Parallel()
			tech.Reset()
			// Naive recursion is exponential; keep the checked range small
			// enough that even it finishes instantly.
			for n := uint64(0); n <= 25; n++ {
				res, err := tech.Step()
				if err != nil {
					t.Fatalf("Step() at n=%d: %v", n, err)
				}
				if res.Index != n {
					t.Fatalf("Step() index = %d, want %d", res.Index, n)
				}
				if want := refFib(n); res.Value.Cmp(want) != 0 {
					t.Fatalf("F(%d) = %s, want %s", n, res.Value, want)
				}
			}
		})
	}
}

func TestStep_IndexMonotonic(t *testing.T) {
	t.Parallel()

	for _, tech := range constructible() {
		tech := tech
		t.Run(tech.Describe().Name, func(t *testing.T) {
			t.Parallel()
			tech.Reset()

			if _, ok := tech.CurrentIndex(); ok {
				t.Fatal("CurrentIndex() should report no position before the first step")
			}
			var prev uint64
			for i := 0; i < 30; i++ {
				res, err := tech.Step()
				if err != nil {
					t.Fatalf("Step() %d: %v", i, err)
				}
				if i > 0 && res.Index != prev+1 {
					t.Fatalf("index advanced from %d to %d, want +1", prev, res.Index)
				}
				prev = res.Index
				idx, ok := tech.CurrentIndex()
				if !ok || idx != res.Index {
					t.Fatalf("CurrentIndex() = (%d,%v), want (%d,true)", idx, ok, res.Index)
				}
			}
		})
	}
}

func TestReset_Idempotent(t *testing.T) {
	t.Parallel()

	for _, tech := range constructible() {
		tech := tech
		t.Run(tech.Describe().Name, func(t *testing.T) {
			t.Parallel()

			// Advance, then reset any number of times: the first step after
			// reset must always yield index 0, value 0.
			for round := 0; round < 3; round++ {
				tech.Reset()
				tech.Reset()
				res, err := tech.Step()
				if err != nil {
					t.Fatalf("Step() after reset: %v", err)
				}
				if res.Index != 0 || res.Value.Sign() != 0 {
					t.Fatalf("first step after reset = (n=%d, v=%s), want (0, 0)", res.Index, res.Value)
				}
				for i := 0; i < 10; i++ {
					if _, err := tech.Step(); err != nil {
						t.Fatalf("Step(): %v", err)
					}
				}
			}
		})
	}
}

func TestStep_ValueIsCallerOwned(t *testing.T) {
	t.Parallel()

	// Mutating a returned value must not corrupt the technique's state.
	for _, tech := range []Technique{NewGenerator(), NewMemoized(), NewDynamic(), NewBatch()} {
		tech := tech
		t.Run(tech.Describe().Name, func(t *testing.T) {
			t.Parallel()
			tech.Reset()
			for n := uint64(0); n < 10; n++ {
				res, err := tech.Step()
				if err != nil {
					t.Fatalf("Step(): %v", err)
				}
				res.Value.SetInt64(-1)
			}
			res, err := tech.Step()
			if err != nil {
				t.Fatalf("Step(): %v", err)
			}
			if want := refFib(10); res.Value.Cmp(want) != 0 {
				t.Errorf("F(10) = %s after caller mutation, want %s", res.Value, want)
			}
		})
	}
}

func TestInstancesAreIsolated(t *testing.T) {
	t.Parallel()

	// Two instances of a caching technique must not share state: advancing
	// one far ahead cannot change what the other produces.
	a := NewMemoized()
	b := NewMemoized()
	a.Reset()
	b.Reset()

	for i := 0; i < 50; i++ {
		if _, err := a.Step(); err != nil {
			t.Fatalf("Step(): %v", err)
		}
	}
	res, err := b.Step()
	if err != nil {
		t.Fatalf("Step(): %v", err)
	}
	if res.Index != 0 || res.Value.Sign() != 0 {
		t.Errorf("fresh instance produced (n=%d, v=%s), want (0, 0)", res.Index, res.Value)
	}
}

func TestKnownLargeValue(t *testing.T) {
	t.Parallel()

	// F(100) from OEIS A000045, checked against every sub-quadratic solver.
	want, ok := new(big.Int).SetString("354224848179261915075", 10)
	if !ok {
		t.Fatal("failed to parse reference value")
	}

	for _, tech := range []Technique{NewMatrix(), NewFastDoubling(), NewBinet(), NewIterative(), NewGenerator(), NewHybrid64(), NewBatch(), NewParallel(4)} {
		tech := tech
		t.Run(tech.Describe().Name, func(t *testing.T) {
			t.Parallel()
			tech.Reset()
			var res StepResult
			var err error
			for n := uint64(0); n <= 100; n++ {
				res, err = tech.Step()
				if err != nil {
					t.Fatalf("Step() at n=%d: %v", n, err)
				}
			}
			if res.Value.Cmp(want) != 0 {
				t.Errorf("F(100) = %s, want %s", res.Value, want)
			}
		})
	}
}
