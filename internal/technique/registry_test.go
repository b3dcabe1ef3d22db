package technique

import (
	"errors"
	"testing"

	apperrors "github.com/speedyfib/fibbench/internal/errors"
)

// canonicalOrder is the expected registration order of the default registry.
var canonicalOrder = []string{
	"naive", "memoized", "dynamic", "matrix", "binet", "generator",
	"batch", "hybrid64", "gmp", "iterative", "fastdoubling", "parallel",
}

func TestDefaultRegistry_Order(t *testing.T) {
	t.Parallel()
	reg := NewDefaultRegistry()

	names := reg.Names()
	if len(names) != len(canonicalOrder) {
		t.Fatalf("registered %d techniques, want %d", len(names), len(canonicalOrder))
	}
	for i, name := range canonicalOrder {
		if names[i] != name {
			t.Errorf("position %d: got %q, want %q", i, names[i], name)
		}
	}

	// Listing twice must give the same order.
	again := reg.Names()
	for i := range names {
		if names[i] != again[i] {
			t.Fatalf("listing order not stable at position %d", i)
		}
	}

	descs := reg.ListAvailable()
	for i, d := range descs {
		if d.Name != canonicalOrder[i] {
			t.Errorf("descriptor %d: got %q, want %q", i, d.Name, canonicalOrder[i])
		}
		if d.Summary == "" || d.TimeComplexity == "" {
			t.Errorf("descriptor %q missing metadata", d.Name)
		}
	}
}

func TestRegistry_InstantiateUnknown(t *testing.T) {
	t.Parallel()
	reg := NewDefaultRegistry()

	_, err := reg.Instantiate("bogus")
	if err == nil {
		t.Fatal("Instantiate of unknown name should fail")
	}
	var regErr apperrors.RegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("want RegistrationError, got %T", err)
	}
	if regErr.Technique != "bogus" {
		t.Errorf("Technique = %q, want %q", regErr.Technique, "bogus")
	}
}

func TestRegistry_FreshInstances(t *testing.T) {
	t.Parallel()
	reg := NewDefaultRegistry()

	a, err := reg.Instantiate("memoized")
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	b, err := reg.Instantiate("memoized")
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if a == b {
		t.Fatal("Instantiate should return distinct instances")
	}

	for i := 0; i < 40; i++ {
		if _, err := a.Step(); err != nil {
			t.Fatalf("Step(): %v", err)
		}
	}
	res, err := b.Step()
	if err != nil {
		t.Fatalf("Step(): %v", err)
	}
	if res.Index != 0 {
		t.Errorf("second instance started at index %d, want 0", res.Index)
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	desc := Descriptor{Name: "dup"}
	ctor := func() (Technique, error) { return NewGenerator(), nil }
	if err := reg.Register(desc, ctor); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := reg.Register(desc, ctor); err == nil {
		t.Error("second Register with same name should fail")
	}
}

func TestRegistry_Describe(t *testing.T) {
	t.Parallel()
	reg := NewDefaultRegistry()

	// Descriptors must be available even for techniques that cannot be
	// instantiated in this build, so reports can show "unavailable".
	desc, ok := reg.Describe("gmp")
	if !ok {
		t.Fatal("Describe(gmp) should succeed regardless of build tags")
	}
	if desc.Name != "gmp" {
		t.Errorf("Name = %q, want %q", desc.Name, "gmp")
	}
	if _, ok := reg.Describe("bogus"); ok {
		t.Error("Describe of unknown name should report false")
	}
}
