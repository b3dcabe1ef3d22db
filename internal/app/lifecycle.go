package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// SetupLifecycle derives the context that governs a whole benchmark sweep.
// The context is canceled when the ceiling elapses or when the process
// receives SIGINT or SIGTERM, whichever comes first. On cancellation the
// runner finalizes the technique in flight and the records gathered so far
// are still reported.
//
// The ceiling is a hang guard, not the per-technique budget: callers size it
// as the sum of all budgets plus a grace allowance, so a wedged technique
// cannot keep the process alive indefinitely.
func SetupLifecycle(ctx context.Context, ceiling time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancelCeiling := context.WithTimeout(ctx, ceiling)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)

	return ctx, func() {
		stopSignals()
		cancelCeiling()
	}
}
