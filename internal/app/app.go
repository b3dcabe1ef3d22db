package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/speedyfib/fibbench/internal/bench"
	"github.com/speedyfib/fibbench/internal/cli"
	"github.com/speedyfib/fibbench/internal/config"
	apperrors "github.com/speedyfib/fibbench/internal/errors"
	"github.com/speedyfib/fibbench/internal/logging"
	"github.com/speedyfib/fibbench/internal/technique"
	"github.com/speedyfib/fibbench/internal/ui"
)

// sweepGrace is the extra wall-clock allowance granted to the whole sweep on
// top of the per-technique budgets, covering instantiation and reporting.
const sweepGrace = 30 * time.Second

// Application represents the fibbench application instance.
// It encapsulates the configuration and the technique registry, and provides
// the method to run a benchmark sweep.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Registry provides access to the registered computation techniques.
	Registry *technique.Registry
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or
// validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	registry := technique.NewDefaultRegistry()
	availableNames := registry.Names()

	// args[0] is program name, args[1:] are the actual arguments
	programName := "fibbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableNames)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Registry:  registry,
		ErrWriter: errWriter,
	}, nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with success
// after displaying help text.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Run executes the benchmark sweep and renders the ranked report.
// It returns an exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Initialize CLI theme (respects --no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	if a.Config.List {
		if err := cli.RenderTechniqueList(out, a.Registry.ListAvailable()); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error listing techniques: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	names := a.Config.SelectedTechniques(a.Registry.Names())

	// The whole sweep gets the sum of the per-technique budgets plus a
	// grace period, so a wedged technique cannot hang the process.
	total := a.Config.Budget*time.Duration(len(names)) + sweepGrace
	ctx, stop := SetupLifecycle(ctx, total)
	defer stop()

	var logger logging.Logger = logging.NopLogger{}
	if a.Config.Verbose {
		logger = logging.NewLogger(a.ErrWriter, "fibbench")
	}

	validator := bench.NewValidator()

	if a.Config.Preflight {
		a.runPreflight(ctx, validator, names)
	}

	var observer bench.Observer
	var spin *cli.SpinnerObserver
	if !a.Config.Quiet && !a.Config.JSONOutput {
		spin = cli.NewSpinnerObserver(out)
		spin.Start()
		observer = spin
	}

	runner := bench.NewRunner(a.Registry, validator, bench.Options{
		Budget:   a.Config.Budget,
		MaxIndex: a.Config.MaxN,
		Validate: a.Config.Validate,
		Logger:   logger,
		Observer: observer,
	})
	report, err := runner.Run(ctx, names)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "\n%sBenchmark interrupted: %v%s\n",
			ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorCanceled
	}

	if a.Config.JSONOutput {
		if err := cli.RenderJSON(out, report); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error rendering report: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	} else {
		if err := cli.RenderReport(out, report); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error rendering report: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}

	return exitCodeFor(report)
}

// runPreflight sanity-checks the selected techniques and prints a warning
// for each failure. Preflight failures never abort the sweep; the failing
// technique will simply surface the same fault in its timed run.
func (a *Application) runPreflight(ctx context.Context, validator *bench.Validator, names []string) {
	failures, err := bench.Preflight(ctx, a.Registry, validator, names)
	if err != nil {
		return
	}
	for _, name := range names {
		if ferr, ok := failures[name]; ok {
			fmt.Fprintf(a.ErrWriter, "%sWarning:%s technique %s failed preflight: %v\n",
				ui.ColorYellow(), ui.ColorReset(), name, ferr)
		}
	}
}

// exitCodeFor maps the report outcome to a process exit code. A validation
// failure outranks a run failure.
func exitCodeFor(report *bench.Report) int {
	if report.HasStatus(bench.StatusValidationFailed) {
		return apperrors.ExitErrorMismatch
	}
	if report.HasStatus(bench.StatusErrored) {
		return apperrors.ExitErrorRunFailed
	}
	return apperrors.ExitSuccess
}
