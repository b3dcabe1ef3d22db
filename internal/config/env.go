package config

// Environment variable overrides. Every setting can also be supplied as
// FIBBENCH_<NAME>; an explicit command-line flag always wins over the
// environment.

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envValue looks up key under the FIBBENCH_ prefix. Empty values are treated
// as unset.
func envValue(key string) (string, bool) {
	val := os.Getenv(EnvPrefix + key)
	return val, val != ""
}

func envString(key, fallback string) string {
	if val, ok := envValue(key); ok {
		return val
	}
	return fallback
}

// envUint64 parses the variable as an unsigned decimal. Malformed values are
// ignored rather than fatal; the flag layer already validates user input and
// a broken environment should not take the benchmark down.
func envUint64(key string, fallback uint64) uint64 {
	val, ok := envValue(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

// envBool accepts true/1/yes and false/0/no, case-insensitive.
func envBool(key string, fallback bool) bool {
	val, ok := envValue(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return fallback
}

// envDuration parses the variable with time.ParseDuration ("500ms", "2s").
func envDuration(key string, fallback time.Duration) time.Duration {
	val, ok := envValue(key)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}

// isFlagSet reports whether the named flag appeared on the command line,
// which suppresses the environment override for that setting.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides fills settings from the environment for every flag the
// user did not pass explicitly, giving the priority order
// CLI flags > environment > defaults.
//
// Recognized variables:
//   - FIBBENCH_BUDGET: per-technique wall-clock budget ("500ms", "2s")
//   - FIBBENCH_TECHNIQUES: "all" or a comma-separated selection
//   - FIBBENCH_MAX_N: target index ending each run early (uint64)
//   - FIBBENCH_VALIDATE: verify produced values (bool)
//   - FIBBENCH_PREFLIGHT: run the pre-benchmark sanity check (bool)
//   - FIBBENCH_JSON: machine-readable report output (bool)
//   - FIBBENCH_QUIET: suppress the progress spinner and notices (bool)
//   - FIBBENCH_NO_COLOR: disable colored output (bool)
//   - FIBBENCH_VERBOSE: debug logging (bool)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "budget") {
		config.Budget = envDuration("BUDGET", config.Budget)
	}
	if !isFlagSet(fs, "techniques") {
		config.Techniques = envString("TECHNIQUES", config.Techniques)
	}
	if !isFlagSet(fs, "max-n") {
		config.MaxN = envUint64("MAX_N", config.MaxN)
	}
	if !isFlagSet(fs, "validate") {
		config.Validate = envBool("VALIDATE", config.Validate)
	}
	if !isFlagSet(fs, "preflight") {
		config.Preflight = envBool("PREFLIGHT", config.Preflight)
	}
	if !isFlagSet(fs, "json") {
		config.JSONOutput = envBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = envBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = envBool("NO_COLOR", config.NoColor)
	}
	if !isFlagSet(fs, "v") {
		config.Verbose = envBool("VERBOSE", config.Verbose)
	}
}
