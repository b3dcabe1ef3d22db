package ui

// Escape-code accessors for the active theme. Each call reads the theme at
// that moment, so output rendered after InitTheme picks up the NO_COLOR
// decision without callers holding a theme reference.

func ColorReset() string  { return GetCurrentTheme().Reset }
func ColorRed() string    { return GetCurrentTheme().Error }
func ColorGreen() string  { return GetCurrentTheme().Success }
func ColorYellow() string { return GetCurrentTheme().Warning }
func ColorBlue() string   { return GetCurrentTheme().Primary }
func ColorCyan() string   { return GetCurrentTheme().Secondary }
func ColorBold() string   { return GetCurrentTheme().Bold }
