// Package config provides the configuration management for the fibbench
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/speedyfib/fibbench/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by fibbench.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "FIBBENCH_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultBudget is the default wall-clock allowance per technique.
	DefaultBudget = time.Second
	// DefaultTechniques selects every registered technique.
	DefaultTechniques = "all"
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control a
// benchmark sweep, from the per-technique budget to the output format.
type AppConfig struct {
	// Budget is the wall-clock allowance granted to each technique.
	Budget time.Duration
	// Techniques selects which techniques to benchmark: "all" or a
	// comma-separated list of registered names.
	Techniques string
	// MaxN, when non-zero, stops each run once F(MaxN) has been produced
	// instead of waiting for the budget to expire.
	MaxN uint64
	// Validate enables per-step verification of produced values against the
	// reference sequence.
	Validate bool
	// Preflight enables the pre-benchmark sanity check of every selected
	// technique.
	Preflight bool
	// JSONOutput, if true, outputs the ranked report in JSON format.
	JSONOutput bool
	// Quiet mode suppresses the spinner and informational messages,
	// leaving only the final report.
	Quiet bool
	// NoColor disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// Verbose enables debug logging of individual run lifecycles.
	Verbose bool
	// List, if true, prints the registered techniques and exits.
	List bool
}

// SelectedTechniques resolves the Techniques field against the registered
// names. "all" expands to every available name in registration order.
func (c AppConfig) SelectedTechniques(availableNames []string) []string {
	if strings.EqualFold(c.Techniques, DefaultTechniques) {
		return append([]string(nil), availableNames...)
	}
	var out []string
	for _, name := range strings.Split(c.Techniques, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// CheckValid checks the semantic consistency of the configuration
// parameters. It ensures the budget is positive and that every selected
// technique is registered.
func (c AppConfig) CheckValid(availableNames []string) error {
	if c.Budget <= 0 {
		return apperrors.NewConfigError("budget must be strictly positive")
	}
	if strings.EqualFold(c.Techniques, DefaultTechniques) {
		return nil
	}
	available := make(map[string]bool, len(availableNames))
	for _, name := range availableNames {
		available[name] = true
	}
	selected := c.SelectedTechniques(availableNames)
	if len(selected) == 0 {
		return apperrors.NewConfigError("technique selection is empty")
	}
	for _, name := range selected {
		if !available[name] {
			return apperrors.NewConfigError("unrecognized technique: '%s'. Valid techniques are: 'all' or [%s]", name, strings.Join(availableNames, ", "))
		}
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// and handles the parsing process. After parsing, it performs validation on
// the resulting configuration.
//
// The function is designed to be testable by allowing the input arguments
// and output writer to be specified.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableNames []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	techniqueHelp := fmt.Sprintf("Techniques to benchmark: 'all' (default) or a comma-separated list of [%s].", strings.Join(availableNames, ", "))

	config := AppConfig{}
	fs.DurationVar(&config.Budget, "budget", DefaultBudget, "Wall-clock budget granted to each technique.")
	fs.StringVar(&config.Techniques, "techniques", DefaultTechniques, techniqueHelp)
	fs.Uint64Var(&config.MaxN, "max-n", 0, "Stop each run once F(max-n) is reached (0 means budget-bound).")
	fs.BoolVar(&config.Validate, "validate", true, "Verify each produced value against the reference sequence.")
	fs.BoolVar(&config.Preflight, "preflight", true, "Sanity-check every technique before the timed sweep.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output the ranked report in JSON format.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging of run lifecycles.")
	fs.BoolVar(&config.List, "list", false, "List the registered techniques and exit.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.Techniques = strings.ToLower(config.Techniques)
	if err := config.CheckValid(availableNames); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
