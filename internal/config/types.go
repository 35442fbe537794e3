package config

// Config is the folio application configuration document.
type Config struct {
	// PreferencesPath is the YAML file holding remembered choices such as the theme.
	PreferencesPath string `yaml:"preferences_path,omitempty" validate:"omitempty,filepath_ok"`
	// ContentPath optionally overrides the built-in page content.
	ContentPath string `yaml:"content_path,omitempty" validate:"omitempty,filepath_ok"`
	LogLevel    string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	// LogFile receives log output while the interactive UI owns the terminal. Empty discards it.
	LogFile  string      `yaml:"log_file,omitempty" validate:"omitempty,filepath_ok"`
	NoMotion bool        `yaml:"no_motion,omitempty"`
	Theme    ThemeConfig `yaml:"theme,omitempty"`
}

// ThemeConfig tunes startup theme resolution.
type ThemeConfig struct {
	// Default is used when nothing is stored and the environment does not report a dark preference.
	Default string `yaml:"default,omitempty" validate:"omitempty,oneof=dark light"`
	// DisableDetection skips environment probing entirely.
	DisableDetection bool `yaml:"disable_detection,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{LogLevel: "warn"}
}
