// Package testutil provides shared testing utilities used across the project.
package testutil

import "regexp"

// ansiRegex matches CSI sequences: ESC [ followed by parameters and a final
// letter. This covers every code the ui themes emit.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes ANSI escape codes from a string so tests can assert
// on rendered CLI output regardless of the active theme.
func StripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
