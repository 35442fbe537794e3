// Package theme resolves, persists and toggles the display mode of the portfolio.
//
// The mode is resolved once at startup from, in order, the stored preference, the ambient
// preference reported by the environment, and the fixed default. Every later change goes through a
// Controller, which writes the new value to the preference store, updates the visual-mode marker
// and notifies subscribers.
package theme

import (
	"fmt"
	"strings"
)

// Mode is the active palette: dark or light.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// DefaultMode is used when neither a stored nor an ambient preference selects a mode.
const DefaultMode = Dark

// StorageKey is the preference key the mode is persisted under.
const StorageKey = "theme"

// Parse converts a stored or user-supplied value into a Mode.
func Parse(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q (want %q or %q)", value, Dark, Light)
	}
}

// Valid reports whether m is one of the two supported modes.
func (m Mode) Valid() bool {
	return m == Dark || m == Light
}

// IsDark reports whether m selects the dark palette.
func (m Mode) IsDark() bool {
	return m == Dark
}

// Opposite returns the other mode. Invalid modes map to the default.
func (m Mode) Opposite() Mode {
	switch m {
	case Dark:
		return Light
	case Light:
		return Dark
	default:
		return DefaultMode
	}
}

func (m Mode) String() string {
	return string(m)
}

// Label is the human-readable name shown on the toggle control.
func (m Mode) Label() string {
	if m == Light {
		return "Light"
	}
	return "Dark"
}

// Icon is the glyph shown on the toggle control.
func (m Mode) Icon() string {
	if m == Light {
		return "☀️"
	}
	return "🌙"
}
