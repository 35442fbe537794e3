package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

const (
	// EnvConfig names an alternative config file.
	EnvConfig = "FOLIO_CONFIG"
	// EnvLogLevel overrides log_level.
	EnvLogLevel = "FOLIO_LOG_LEVEL"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, folioerrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, folioerrors.NewParseError(path, extractLine(err), err)
	}

	cfg.expandPaths()
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load resolves the effective configuration. An explicit path must exist. Without one,
// FOLIO_CONFIG is consulted and then ~/.folio/config.yaml, which may be absent.
// FOLIO_LOG_LEVEL is applied last.
func Load(path string, lookup func(string) (string, bool)) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	explicit := path != ""
	if !explicit {
		if v, ok := lookup(EnvConfig); ok && strings.TrimSpace(v) != "" {
			path, explicit = strings.TrimSpace(v), true
		}
	}
	if !explicit {
		if def, err := DefaultPath(); err == nil {
			path = def
		}
	}

	var cfg *Config
	if path != "" {
		parsed, err := ParseConfig(path)
		switch {
		case err == nil:
			cfg = parsed
		case !explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, err
		}
	}
	if cfg == nil {
		def := Default()
		cfg = &def
	}

	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overrides holds command-line values that take precedence over the loaded file.
// Empty strings and false leave the loaded value alone.
type Overrides struct {
	PreferencesPath string
	ContentPath     string
	NoMotion        bool
	Verbose         bool
}

// ApplyOverrides layers o over c and re-runs the same home expansion and validation a
// config file gets.
func (c *Config) ApplyOverrides(o Overrides) error {
	if o.PreferencesPath != "" {
		c.PreferencesPath = o.PreferencesPath
	}
	if o.ContentPath != "" {
		c.ContentPath = o.ContentPath
	}
	if o.NoMotion {
		c.NoMotion = true
	}
	if o.Verbose {
		c.LogLevel = "debug"
	}

	c.expandPaths()
	return ValidateConfig(c)
}

// DefaultPath returns ~/.folio/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".folio", "config.yaml"), nil
}

func (c *Config) expandPaths() {
	c.PreferencesPath = expandHome(c.PreferencesPath)
	c.ContentPath = expandHome(c.ContentPath)
	c.LogFile = expandHome(c.LogFile)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
