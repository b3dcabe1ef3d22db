// Package cli provides output utilities for rendering benchmark reports.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/speedyfib/fibbench/internal/bench"
	"github.com/speedyfib/fibbench/internal/technique"
	"github.com/speedyfib/fibbench/internal/ui"
)

// statusColor picks the theme color for a run status.
func statusColor(s bench.Status) string {
	switch s {
	case bench.StatusCompleted:
		return ui.ColorGreen()
	case bench.StatusBudgetExpired:
		return ui.ColorCyan()
	default:
		return ui.ColorRed()
	}
}

// RenderReport writes the ranked benchmark report as an aligned table.
// Records are printed in rank order with a human-readable summary line.
func RenderReport(out io.Writer, report *bench.Report) error {
	fmt.Fprintf(out, "\n%sBenchmark results%s (budget %s per technique)\n\n",
		ui.ColorBold(), ui.ColorReset(), FormatExecutionDuration(report.Budget))

	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "Rank\tTechnique\tStatus\tSteps\tMax index\tSteps/s\tElapsed\n")

	for i, rec := range report.Records {
		elapsed := FormatExecutionDuration(rec.Elapsed)
		if rec.Elapsed == 0 {
			elapsed = "< 1µs"
		}
		fmt.Fprintf(tw, "%d\t%s%s%s\t%s%s%s\t%s\t%s\t%s\t%s%s%s\n",
			i+1,
			ui.ColorBlue(), rec.Technique, ui.ColorReset(),
			statusColor(rec.Status), rec.Status, ui.ColorReset(),
			formatNumberString(fmt.Sprintf("%d", rec.Steps)),
			formatNumberString(fmt.Sprintf("%d", rec.MaxIndex)),
			formatNumberString(fmt.Sprintf("%.0f", rec.Rate())),
			ui.ColorYellow(), elapsed, ui.ColorReset())
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush report table: %w", err)
	}

	for _, rec := range report.Records {
		if rec.Err != "" {
			fmt.Fprintf(out, "\n%s%s%s: %s%s%s\n",
				ui.ColorBlue(), rec.Technique, ui.ColorReset(),
				ui.ColorRed(), rec.Err, ui.ColorReset())
		}
	}

	if winner, ok := report.Winner(); ok {
		fmt.Fprintf(out, "\n%sWinner:%s %s%s%s reached F(%s) in %s\n",
			ui.ColorBold(), ui.ColorReset(),
			ui.ColorGreen(), winner.Technique, ui.ColorReset(),
			formatNumberString(fmt.Sprintf("%d", winner.MaxIndex)),
			FormatExecutionDuration(winner.Elapsed))
	}
	return nil
}

// RenderJSON writes the report as indented JSON for machine consumption.
func RenderJSON(out io.Writer, report *bench.Report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// RenderTechniqueList writes the registered techniques as an aligned table.
func RenderTechniqueList(out io.Writer, descriptors []technique.Descriptor) error {
	fmt.Fprintf(out, "\n%sRegistered techniques%s\n\n", ui.ColorBold(), ui.ColorReset())

	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "Name\tTime\tSpace\tSummary\n")
	for _, d := range descriptors {
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\n",
			ui.ColorBlue(), d.Name, ui.ColorReset(),
			d.TimeComplexity, d.SpaceComplexity, d.Summary)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush technique table: %w", err)
	}
	return nil
}
