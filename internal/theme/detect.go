package theme

import (
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Detector reports the environment's ambient appearance preference.
// ok is false when the detector has no signal to offer.
type Detector interface {
	Name() string
	Detect() (prefersDark bool, ok bool)
}

// Chain queries detectors in order; the first one with a signal wins.
type Chain []Detector

func (c Chain) Name() string {
	names := make([]string, 0, len(c))
	for _, d := range c {
		if d != nil {
			names = append(names, d.Name())
		}
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

func (c Chain) Detect() (bool, bool) {
	prefersDark, ok, _ := c.DetectWithSource()
	return prefersDark, ok
}

// DetectWithSource is Detect plus the name of the detector that answered.
func (c Chain) DetectWithSource() (prefersDark bool, ok bool, source string) {
	for _, d := range c {
		if d == nil {
			continue
		}
		if prefersDark, ok := d.Detect(); ok {
			return prefersDark, true, d.Name()
		}
	}
	return false, false, ""
}

// EnvVar lets users state a preference without touching the terminal.
const EnvVar = "FOLIO_COLOR_SCHEME"

// EnvDetector reads FOLIO_COLOR_SCHEME, then the COLORFGBG hint set by some terminals.
type EnvDetector struct {
	Lookup func(string) (string, bool)
}

// NewEnvDetector returns an EnvDetector backed by the process environment.
func NewEnvDetector() EnvDetector {
	return EnvDetector{Lookup: os.LookupEnv}
}

func (EnvDetector) Name() string { return "env" }

func (d EnvDetector) Detect() (bool, bool) {
	lookup := d.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if raw, ok := lookup(EnvVar); ok {
		if mode, err := Parse(raw); err == nil {
			return mode.IsDark(), true
		}
	}

	if raw, ok := lookup("COLORFGBG"); ok {
		return parseColorFGBG(raw)
	}

	return false, false
}

// parseColorFGBG interprets "fg;bg" or "fg;other;bg" using the ANSI colour index of the
// background.
func parseColorFGBG(raw string) (bool, bool) {
	parts := strings.Split(strings.TrimSpace(raw), ";")
	if len(parts) < 2 {
		return false, false
	}

	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || bg < 0 || bg > 15 {
		return false, false
	}

	switch {
	case bg == 7:
		return false, true
	case bg <= 6, bg == 8:
		return true, true
	default:
		return false, true
	}
}

// TerminalDetector asks the terminal for its background colour.
type TerminalDetector struct {
	Output *termenv.Output
}

// NewTerminalDetector queries the terminal behind w.
func NewTerminalDetector(w io.Writer) TerminalDetector {
	return TerminalDetector{Output: termenv.NewOutput(w)}
}

func (TerminalDetector) Name() string { return "terminal" }

func (d TerminalDetector) Detect() (bool, bool) {
	if d.Output == nil || d.Output.Profile == termenv.Ascii {
		return false, false
	}
	return d.Output.HasDarkBackground(), true
}

// AppearanceDetector reads the desktop appearance setting. Only macOS is supported.
type AppearanceDetector struct {
	GOOS string
	Read func() (string, error)
}

// NewAppearanceDetector returns a detector for the running OS.
func NewAppearanceDetector() AppearanceDetector {
	return AppearanceDetector{GOOS: runtime.GOOS, Read: readAppleInterfaceStyle}
}

func (AppearanceDetector) Name() string { return "appearance" }

func (d AppearanceDetector) Detect() (bool, bool) {
	if d.GOOS != "darwin" || d.Read == nil {
		return false, false
	}

	out, err := d.Read()
	if err != nil {
		// The key is absent when the system is in light mode.
		return false, true
	}
	return strings.Contains(strings.ToLower(out), "dark"), true
}

func readAppleInterfaceStyle() (string, error) {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// StaticDetector always reports the configured answer.
type StaticDetector struct {
	PrefersDark bool
	OK          bool
}

func (StaticDetector) Name() string { return "static" }

func (d StaticDetector) Detect() (bool, bool) {
	return d.PrefersDark, d.OK
}
