package bench

import (
	"context"
	"strings"
	"testing"

	"github.com/speedyfib/fibbench/internal/technique"
)

func TestPreflight_AllDefaultsPass(t *testing.T) {
	t.Parallel()

	reg := technique.NewDefaultRegistry()
	names := reg.Names()
	// The gmp entry needs the optional backend; it is exercised separately.
	checked := names[:0:0]
	for _, n := range names {
		if n != "gmp" {
			checked = append(checked, n)
		}
	}

	failures, err := Preflight(context.Background(), reg, NewValidator(), checked)
	if err != nil {
		t.Fatalf("Preflight() error: %v", err)
	}
	for name, ferr := range failures {
		t.Errorf("technique %q failed preflight: %v", name, ferr)
	}
}

func TestPreflight_ReportsBrokenTechnique(t *testing.T) {
	t.Parallel()

	reg := technique.NewRegistry()
	registerStub(t, reg, "good", newStub)
	registerStub(t, reg, "wrong", func() *stubTechnique {
		s := newStub()
		s.wrongAt = 7
		return s
	})
	registerStub(t, reg, "failing", func() *stubTechnique {
		s := newStub()
		s.errAt = 2
		return s
	})

	failures, err := Preflight(context.Background(), reg, NewValidator(),
		[]string{"good", "wrong", "failing"})
	if err != nil {
		t.Fatalf("Preflight() error: %v", err)
	}
	if len(failures) != 2 {
		t.Fatalf("got %d failures, want 2: %v", len(failures), failures)
	}
	if ferr, ok := failures["wrong"]; !ok || !strings.Contains(ferr.Error(), "F(7)") {
		t.Errorf("wrong: %v, want mismatch at F(7)", ferr)
	}
	if ferr, ok := failures["failing"]; !ok || !strings.Contains(ferr.Error(), "scripted failure") {
		t.Errorf("failing: %v, want scripted failure", ferr)
	}
	if _, ok := failures["good"]; ok {
		t.Error("good technique should not appear in failures")
	}
}

func TestPreflight_UnknownTechnique(t *testing.T) {
	t.Parallel()

	reg := technique.NewRegistry()
	failures, err := Preflight(context.Background(), reg, NewValidator(), []string{"missing"})
	if err != nil {
		t.Fatalf("Preflight() error: %v", err)
	}
	if _, ok := failures["missing"]; !ok {
		t.Fatal("unknown technique should be reported as a failure")
	}
}

func TestPreflight_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reg := technique.NewDefaultRegistry()
	if _, err := Preflight(ctx, reg, NewValidator(), []string{"iterative"}); err == nil {
		t.Fatal("Preflight() on canceled context should return an error")
	}
}
