//go:build !gmp

package app

import (
	"testing"
	"time"

	"github.com/speedyfib/fibbench/internal/config"
	apperrors "github.com/speedyfib/fibbench/internal/errors"
)

// A technique whose backend is missing in this build must still appear in
// the report as errored, never be dropped from the sweep.
func TestRun_UnavailableTechniqueReported(t *testing.T) {
	report, code, _ := runJSONSweep(t, config.AppConfig{
		Budget:     5 * time.Millisecond,
		Techniques: "all",
		Validate:   true,
		JSONOutput: true,
		Quiet:      true,
		NoColor:    true,
	})

	var gmpStatus string
	for _, rec := range report.Records {
		if rec.Technique == "gmp" {
			gmpStatus = rec.Status
		}
	}
	if gmpStatus == "" {
		t.Fatal("report omits the unavailable gmp technique")
	}
	if gmpStatus != "errored" {
		t.Errorf("gmp status = %q, want errored", gmpStatus)
	}
	if code != apperrors.ExitErrorRunFailed {
		t.Errorf("Run() = %d, want %d for a sweep with an unavailable technique",
			code, apperrors.ExitErrorRunFailed)
	}
}
