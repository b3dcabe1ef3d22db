package bench

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/speedyfib/fibbench/internal/technique"
)

// preflightSteps is how many initial values each technique produces during
// the preflight check. It covers the zero and one base cases and enough of
// the sequence to catch recurrence mistakes.
const preflightSteps = 20

// preflightConcurrency bounds how many techniques are checked at once.
const preflightConcurrency = 4

// Preflight instantiates each named technique and verifies its first values
// against the reference sequence before any timed run. It returns a map from
// technique name to the failure encountered, empty when everything checks
// out. Techniques run concurrently; each gets its own instance so the
// benchmark sweep later starts from fresh state regardless.
func Preflight(ctx context.Context, reg *technique.Registry, validator *Validator, names []string) (map[string]error, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preflightConcurrency)

	var mu sync.Mutex
	failures := make(map[string]error)
	record := func(name string, err error) {
		mu.Lock()
		failures[name] = err
		mu.Unlock()
	}

	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := reg.Instantiate(name)
			if err != nil {
				record(name, err)
				return nil
			}
			for i := 0; i < preflightSteps; i++ {
				res, err := safeStep(t)
				if err != nil {
					record(name, err)
					return nil
				}
				if validator.Check(res.Index, res.Value) == Invalid {
					want, _ := validator.Reference(res.Index)
					record(name, fmt.Errorf("F(%d): got %s, want %s", res.Index, res.Value, want))
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return failures, err
	}
	return failures, nil
}
