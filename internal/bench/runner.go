package bench

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/speedyfib/fibbench/internal/errors"
	"github.com/speedyfib/fibbench/internal/logging"
	"github.com/speedyfib/fibbench/internal/technique"
)

// Status is the terminal (or current) state of a benchmark run.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusCompleted
	StatusBudgetExpired
	StatusErrored
	StatusValidationFailed
)

// String returns the lower-case wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusBudgetExpired:
		return "budget_expired"
	case StatusErrored:
		return "errored"
	case StatusValidationFailed:
		return "validation_failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler so statuses serialize as
// their string names in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RunRecord is the immutable outcome of one technique run.
type RunRecord struct {
	Technique  string               `json:"technique"`
	Descriptor technique.Descriptor `json:"descriptor"`
	Steps      uint64               `json:"steps"`
	MaxIndex   uint64               `json:"maxIndex"`
	Elapsed    time.Duration        `json:"elapsedNs"`
	Status     Status               `json:"status"`
	Err        string               `json:"error,omitempty"`

	// position is the registration order of the technique, used as the
	// final ranking tie-breaker.
	position int
}

// Failed reports whether the run ended in a failure state rather than
// exhausting its budget or completing its target.
func (r RunRecord) Failed() bool {
	return r.Status == StatusErrored || r.Status == StatusValidationFailed
}

// Rate returns the throughput of the run in steps per second.
func (r RunRecord) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Steps) / r.Elapsed.Seconds()
}

// Observer receives lifecycle notifications during a sweep. Implementations
// must be fast; callbacks run on the sweep goroutine.
type Observer interface {
	RunStarted(position, total int, name string)
	RunFinished(rec RunRecord)
}

type nopObserver struct{}

func (nopObserver) RunStarted(int, int, string) {}
func (nopObserver) RunFinished(RunRecord)       {}

// Options configures a Runner.
type Options struct {
	// Budget is the wall-clock allowance per technique. Zero means the
	// default of one second.
	Budget time.Duration
	// MaxIndex, when non-zero, stops a run once the technique has produced
	// F(MaxIndex), marking it Completed instead of BudgetExpired.
	MaxIndex uint64
	// Validate enables per-step verification of produced values.
	Validate bool
	Logger   logging.Logger
	Observer Observer
}

// DefaultBudget is the per-technique wall-clock allowance when none is set.
const DefaultBudget = time.Second

// Runner drives techniques through timed benchmark runs.
type Runner struct {
	reg       *technique.Registry
	validator *Validator
	opts      Options
}

// NewRunner builds a Runner. A nil validator disables validation regardless
// of Options.Validate.
func NewRunner(reg *technique.Registry, validator *Validator, opts Options) *Runner {
	if opts.Budget <= 0 {
		opts.Budget = DefaultBudget
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger{}
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	if validator == nil {
		opts.Validate = false
	}
	return &Runner{reg: reg, validator: validator, opts: opts}
}

// Run sweeps the named techniques sequentially, each against a fresh
// instance and the full budget. A failure in one technique never aborts the
// others. The only error return is context cancellation, in which case the
// records gathered so far are still returned.
func (r *Runner) Run(ctx context.Context, names []string) (*Report, error) {
	report := &Report{
		Budget:    r.opts.Budget,
		StartedAt: time.Now(),
		Records:   make([]RunRecord, 0, len(names)),
	}
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			report.TotalElapsed = time.Since(report.StartedAt)
			return report, err
		}
		r.opts.Observer.RunStarted(i, len(names), name)
		rec := r.runOne(ctx, i, name)
		report.Records = append(report.Records, rec)
		observeRun(rec)
		r.opts.Observer.RunFinished(rec)
	}
	report.TotalElapsed = time.Since(report.StartedAt)
	report.rank()
	return report, ctx.Err()
}

func (r *Runner) runOne(ctx context.Context, position int, name string) RunRecord {
	tracer := otel.Tracer("fibbench/bench")
	ctx, span := tracer.Start(ctx, "bench.run",
		trace.WithAttributes(attribute.String("technique", name)))
	defer span.End()

	rec := RunRecord{Technique: name, Status: StatusPending, position: position}

	t, err := r.reg.Instantiate(name)
	if err != nil {
		rec.Status = StatusErrored
		rec.Err = err.Error()
		r.opts.Logger.Error("technique instantiation failed", err,
			logging.String("technique", name))
		return rec
	}
	rec.Descriptor = t.Describe()
	rec.Status = StatusRunning

	var timer Timer
	timer.Start()
	for {
		res, stepErr := safeStep(t)
		if stepErr != nil {
			rec.Elapsed = timer.Elapsed()
			rec.Status = StatusErrored
			rec.Err = stepErr.Error()
			break
		}
		if r.opts.Validate {
			if r.validator.Check(res.Index, res.Value) == Invalid {
				got := "<nil>"
				if res.Value != nil {
					got = res.Value.String()
				}
				want := "unknown"
				if ref, ok := r.validator.Reference(res.Index); ok {
					want = ref.String()
				}
				vErr := apperrors.NewInvalidResultError(res.Index, got, want)
				rec.Elapsed = timer.Elapsed()
				rec.Status = StatusValidationFailed
				rec.Err = vErr.Error()
				break
			}
		}
		// The invalid step above is never scored: the step counter and the
		// high-water mark only cover values that survived validation.
		rec.Steps++
		rec.MaxIndex = res.Index

		if r.opts.MaxIndex > 0 && res.Index >= r.opts.MaxIndex {
			rec.Elapsed = timer.Elapsed()
			rec.Status = StatusCompleted
			break
		}
		if timer.Remaining(r.opts.Budget) == 0 {
			rec.Elapsed = timer.Elapsed()
			rec.Status = StatusBudgetExpired
			break
		}
		if err := ctx.Err(); err != nil {
			rec.Elapsed = timer.Elapsed()
			rec.Status = StatusBudgetExpired
			break
		}
	}

	span.SetAttributes(
		attribute.Int64("steps", int64(rec.Steps)),
		attribute.String("status", rec.Status.String()),
	)
	r.opts.Logger.Debug("run finished",
		logging.String("technique", name),
		logging.String("status", rec.Status.String()),
		logging.Uint64("steps", rec.Steps),
		logging.Uint64("maxIndex", rec.MaxIndex),
		logging.Dur("elapsed", rec.Elapsed))
	return rec
}

// safeStep invokes a single step, converting panics in technique code into
// computation errors so one faulty implementation cannot abort the sweep.
func safeStep(t technique.Technique) (res technique.StepResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			idx, _ := t.CurrentIndex()
			err = apperrors.NewComputationError(idx, fmt.Errorf("panic: %v", rec))
		}
	}()
	return t.Step()
}
