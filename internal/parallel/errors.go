// Package parallel provides utilities for concurrent operations inside
// techniques. The benchmark runner itself is strictly sequential; only a
// technique's internal batch computation may fan out to goroutines.
package parallel

import "sync"

// ErrorCollector collects the first error from parallel goroutines.
// It is safe for concurrent use.
//
// Usage:
//
//	var ec parallel.ErrorCollector
//	var wg sync.WaitGroup
//	for _, job := range jobs {
//	    wg.Add(1)
//	    go func() {
//	        defer wg.Done()
//	        ec.SetError(job())
//	    }()
//	}
//	wg.Wait()
//	if err := ec.Err(); err != nil {
//	    return err
//	}
type ErrorCollector struct {
	once sync.Once
	err  error
}

// SetError records an error if one hasn't been recorded yet.
// Nil errors are ignored.
func (c *ErrorCollector) SetError(err error) {
	if err != nil {
		c.once.Do(func() {
			c.err = err
		})
	}
}

// Err returns the first recorded error, or nil if no error was recorded.
// It should be called after all goroutines have completed.
func (c *ErrorCollector) Err() error {
	return c.err
}
