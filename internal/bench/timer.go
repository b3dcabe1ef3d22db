// Package bench is the benchmark execution and measurement engine. Given
// techniques exposed through the uniform step contract, it drives each one
// for a bounded wall-clock budget, enforces correctness through the
// validator, and produces a ranked report. It is the only part of the
// repository with timing-sensitive control flow; everything it measures is
// deliberately sequential and uncontended.
package bench

import "time"

// Timer measures elapsed wall-clock time with enough resolution to bound
// loops whose iterations complete in microseconds. Go's time.Now carries a
// monotonic clock reading, so Elapsed never decreases within a run and is
// immune to wall-clock adjustments.
//
// Each benchmark run owns its own Timer value; there is no shared or global
// timer state.
type Timer struct {
	start   time.Time
	started bool
}

// Start begins measurement. Calling Start again rebases the timer.
func (t *Timer) Start() {
	t.start = time.Now()
	t.started = true
}

// Elapsed returns the duration since Start. It is side-effect free and may
// be called repeatedly. Before Start it returns zero.
func (t *Timer) Elapsed() time.Duration {
	if !t.started {
		return 0
	}
	return time.Since(t.start)
}

// Remaining returns budget minus the elapsed time, clamped to zero. It is
// the runner's loop condition: a zero remainder means the budget is spent.
func (t *Timer) Remaining(budget time.Duration) time.Duration {
	rem := budget - t.Elapsed()
	if rem < 0 {
		return 0
	}
	return rem
}
