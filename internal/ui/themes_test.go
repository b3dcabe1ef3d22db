package ui

import (
	"os"
	"testing"
)

func TestInitTheme(t *testing.T) {
	defer SetCurrentTheme(DefaultTheme)

	t.Run("noColor flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if got := GetCurrentTheme(); got.Name != "none" || got.Success != "" {
			t.Errorf("InitTheme(true) activated theme %q, want none", got.Name)
		}
	})

	t.Run("NO_COLOR env disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if got := GetCurrentTheme(); got.Name != "none" {
			t.Errorf("InitTheme(false) with NO_COLOR activated theme %q, want none", got.Name)
		}
	})

	t.Run("default theme has colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "x") // registers the restore
		os.Unsetenv("NO_COLOR")
		InitTheme(false)
		got := GetCurrentTheme()
		if got.Name != "default" || got.Success == "" || got.Reset == "" {
			t.Errorf("InitTheme(false) activated theme %q, want default with escape codes", got.Name)
		}
	})
}
