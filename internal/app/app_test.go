package app

import (
	"bytes"
	"context"
	"encoding/json"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/speedyfib/fibbench/internal/config"
	apperrors "github.com/speedyfib/fibbench/internal/errors"
	"github.com/speedyfib/fibbench/internal/technique"
	"github.com/speedyfib/fibbench/internal/ui"
)

func TestNew_Defaults(t *testing.T) {
	var buf bytes.Buffer
	a, err := New([]string{"fibbench"}, &buf)
	if err != nil {
		t.Fatalf("New() error: %v\n%s", err, buf.String())
	}
	if a.Config.Budget != config.DefaultBudget {
		t.Errorf("Budget = %v, want %v", a.Config.Budget, config.DefaultBudget)
	}
	if a.Registry == nil || len(a.Registry.Names()) == 0 {
		t.Fatal("Registry should carry the default techniques")
	}
}

func TestNew_InvalidTechnique(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New([]string{"fibbench", "-techniques", "bogus"}, &buf); err == nil {
		t.Fatal("New() accepted an unregistered technique")
	}
}

func TestNew_HelpFlag(t *testing.T) {
	var buf bytes.Buffer
	_, err := New([]string{"fibbench", "-h"}, &buf)
	if err == nil {
		t.Fatal("New() with -h should return flag.ErrHelp")
	}
	if !IsHelpError(err) {
		t.Fatalf("IsHelpError(%v) = false, want true", err)
	}
}

func newTestApp(t *testing.T, cfg config.AppConfig) (*Application, *bytes.Buffer) {
	t.Helper()
	errBuf := &bytes.Buffer{}
	return &Application{
		Config:    cfg,
		Registry:  technique.NewDefaultRegistry(),
		ErrWriter: errBuf,
	}, errBuf
}

func TestRun_List(t *testing.T) {
	a, errBuf := newTestApp(t, config.AppConfig{
		Budget:  time.Second,
		List:    true,
		NoColor: true,
	})
	defer ui.SetCurrentTheme(ui.DefaultTheme)

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want %d\n%s", code, apperrors.ExitSuccess, errBuf.String())
	}
	for _, name := range a.Registry.Names() {
		if !strings.Contains(out.String(), name) {
			t.Errorf("technique list missing %q:\n%s", name, out.String())
		}
	}
}

type reportJSON struct {
	Records []struct {
		Technique string `json:"technique"`
		Status    string `json:"status"`
		Steps     uint64 `json:"steps"`
		MaxIndex  uint64 `json:"maxIndex"`
	} `json:"records"`
}

func runJSONSweep(t *testing.T, cfg config.AppConfig) (reportJSON, int, string) {
	t.Helper()
	defer ui.SetCurrentTheme(ui.DefaultTheme)

	a, errBuf := newTestApp(t, cfg)
	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	var report reportJSON
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s\n%s", err, out.String(), errBuf.String())
	}
	return report, code, errBuf.String()
}

func TestRun_SweepJSON(t *testing.T) {
	report, code, stderr := runJSONSweep(t, config.AppConfig{
		Budget:     30 * time.Millisecond,
		Techniques: "iterative,fastdoubling",
		Validate:   true,
		Preflight:  true,
		JSONOutput: true,
		Quiet:      true,
		NoColor:    true,
	})
	if code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want success\n%s", code, stderr)
	}
	if len(report.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(report.Records))
	}
	for _, rec := range report.Records {
		if rec.Status != "budget_expired" {
			t.Errorf("%s: status %q, want budget_expired", rec.Technique, rec.Status)
		}
		if rec.Steps == 0 {
			t.Errorf("%s: no steps within budget", rec.Technique)
		}
	}
}

// A constant-time producer must reach indices orders of magnitude beyond an
// exponential one under the same budget.
func TestRun_GeneratorOutpacesNaive(t *testing.T) {
	report, code, stderr := runJSONSweep(t, config.AppConfig{
		Budget:     50 * time.Millisecond,
		Techniques: "generator,naive",
		Validate:   true,
		JSONOutput: true,
		Quiet:      true,
		NoColor:    true,
	})
	if code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want success\n%s", code, stderr)
	}

	maxIndex := make(map[string]uint64)
	for _, rec := range report.Records {
		maxIndex[rec.Technique] = rec.MaxIndex
	}
	if maxIndex["generator"] < 100*maxIndex["naive"] {
		t.Errorf("generator reached F(%d), naive F(%d); expected a gap of orders of magnitude",
			maxIndex["generator"], maxIndex["naive"])
	}
	if report.Records[0].Technique != "generator" {
		t.Errorf("top-ranked technique = %q, want generator", report.Records[0].Technique)
	}
}

// dishonest always produces F(n)+1 from index 3 on.
type dishonest struct {
	inner technique.Technique
}

func (d *dishonest) Reset() { d.inner.Reset() }

func (d *dishonest) Step() (technique.StepResult, error) {
	res, err := d.inner.Step()
	if err != nil {
		return res, err
	}
	if res.Index >= 3 {
		res.Value = new(big.Int).Add(res.Value, big.NewInt(1))
	}
	return res, nil
}

func (d *dishonest) CurrentIndex() (uint64, bool) { return d.inner.CurrentIndex() }

func (d *dishonest) Describe() technique.Descriptor {
	return technique.Descriptor{Name: "dishonest", Summary: "produces wrong values"}
}

func TestRun_ValidationFailureExitCode(t *testing.T) {
	defer ui.SetCurrentTheme(ui.DefaultTheme)

	a, errBuf := newTestApp(t, config.AppConfig{
		Budget:     time.Second,
		Techniques: "dishonest",
		Validate:   true,
		JSONOutput: true,
		Quiet:      true,
		NoColor:    true,
	})
	err := a.Registry.Register(
		technique.Descriptor{Name: "dishonest", Summary: "produces wrong values"},
		func() (technique.Technique, error) {
			return &dishonest{inner: technique.NewIterative()}, nil
		})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitErrorMismatch {
		t.Fatalf("Run() = %d, want %d\n%s", code, apperrors.ExitErrorMismatch, errBuf.String())
	}
}

func TestRun_PreflightWarns(t *testing.T) {
	defer ui.SetCurrentTheme(ui.DefaultTheme)

	a, errBuf := newTestApp(t, config.AppConfig{
		Budget:     50 * time.Millisecond,
		Techniques: "dishonest,iterative",
		Preflight:  true,
		JSONOutput: true,
		Quiet:      true,
		NoColor:    true,
	})
	err := a.Registry.Register(
		technique.Descriptor{Name: "dishonest", Summary: "produces wrong values"},
		func() (technique.Technique, error) {
			return &dishonest{inner: technique.NewIterative()}, nil
		})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	var out bytes.Buffer
	a.Run(context.Background(), &out)
	if !strings.Contains(errBuf.String(), "dishonest failed preflight") {
		t.Errorf("expected a preflight warning for dishonest, got:\n%s", errBuf.String())
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"-budget", "1s", "-version"}, true},
		{[]string{"-V"}, true},
		{[]string{"-v"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	out := buf.String()
	if !strings.Contains(out, "fibbench") || !strings.Contains(out, "Go version") {
		t.Errorf("version output incomplete:\n%s", out)
	}
}
