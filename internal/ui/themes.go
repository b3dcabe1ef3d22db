// Package ui provides theme and color support for the application's user
// interface. It defines color schemes and provides ANSI escape code
// functions for consistent styling across the CLI presentation layer.
package ui

import (
	"os"
	"sync"
)

// Theme is a named set of ANSI escape codes, one per output category used by
// the report and progress renderers.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary highlights technique names.
	Primary string
	// Secondary marks the budget-expired status, the normal outcome for a
	// fast technique.
	Secondary string
	// Success marks completed runs and the winner line.
	Success string
	// Warning marks preflight warnings and degraded elapsed times.
	Warning string
	// Error marks errored and validation-failed runs.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DefaultTheme uses bright colors suited to dark terminal backgrounds.
	DefaultTheme = Theme{
		Name:      "default",
		Primary:   "\033[38;5;75m",  // Sky blue
		Secondary: "\033[38;5;246m", // Grey
		Success:   "\033[38;5;76m",  // Green
		Warning:   "\033[38;5;214m", // Orange
		Error:     "\033[38;5;203m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DefaultTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used by tests to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility. If noColor is true or NO_COLOR is set, colors are disabled.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	// Any non-empty NO_COLOR value disables colors (per no-color.org spec).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DefaultTheme
}
