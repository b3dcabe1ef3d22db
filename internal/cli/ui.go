// The cli package provides functions for building the command-line interface
// of the benchmark harness. It handles the live progress display during a
// sweep and formats the ranked report for a clear and readable presentation.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/speedyfib/fibbench/internal/bench"
)

// SpinnerRefreshRate defines the refresh frequency of the progress spinner.
const SpinnerRefreshRate = 200 * time.Millisecond

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise. This approach provides a more human-readable output for short
// durations.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the progress observer to be decoupled from a specific spinner
// implementation, facilitating easier testing. It defines the essential
// controls: starting, stopping, and updating the status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerObserver renders sweep progress on a terminal spinner. It implements
// bench.Observer and must be started before the sweep and stopped after.
type SpinnerObserver struct {
	spinner Spinner
}

// NewSpinnerObserver creates an observer rendering to the given writer.
func NewSpinnerObserver(out io.Writer) *SpinnerObserver {
	return &SpinnerObserver{spinner: newSpinner(spinner.WithWriter(out))}
}

// Start begins the spinner animation.
func (o *SpinnerObserver) Start() { o.spinner.Start() }

// Stop halts the spinner animation and frees the line.
func (o *SpinnerObserver) Stop() { o.spinner.Stop() }

// RunStarted updates the spinner with the technique entering its run.
func (o *SpinnerObserver) RunStarted(position, total int, name string) {
	o.spinner.UpdateSuffix(fmt.Sprintf(" [%d/%d] benchmarking %s", position+1, total, name))
}

// RunFinished updates the spinner with the outcome of the finished run.
func (o *SpinnerObserver) RunFinished(rec bench.RunRecord) {
	o.spinner.UpdateSuffix(fmt.Sprintf(" %s: %s steps in %s",
		rec.Technique, formatNumberString(fmt.Sprintf("%d", rec.Steps)),
		FormatExecutionDuration(rec.Elapsed)))
}

var _ bench.Observer = (*SpinnerObserver)(nil)

// formatNumberString inserts thousand separators into a numeric string.
func formatNumberString(s string) string {
	if len(s) == 0 {
		return ""
	}
	prefix := ""
	if s[0] == '-' {
		prefix = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}

	numSeparators := (n - 1) / 3
	var builder strings.Builder
	builder.Grow(len(prefix) + n + numSeparators)
	builder.WriteString(prefix)

	firstGroupLen := n % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}
	builder.WriteString(s[:firstGroupLen])

	for i := firstGroupLen; i < n; i += 3 {
		builder.WriteByte(',')
		builder.WriteString(s[i : i+3])
	}
	return builder.String()
}
