package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/components"
	"github.com/alexisbeaulieu97/folio/internal/preference"
	"github.com/alexisbeaulieu97/folio/internal/theme"
)

func storedTheme(t *testing.T, path string) (string, bool) {
	t.Helper()

	value, ok, err := preference.NewFileStore(path).Get(theme.StorageKey)
	require.NoError(t, err)
	return value, ok
}

func TestThemeShowsDefaultWithoutPreference(t *testing.T) {
	env := newCLIEnv(t, "")

	out, _, err := env.run(t, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Dark")
	assert.Contains(t, out, "source: default")

	_, ok := storedTheme(t, env.preferences)
	assert.False(t, ok, "inspecting the theme never persists")
}

func TestThemeHonoursConfiguredFallback(t *testing.T) {
	env := newCLIEnv(t, "theme:\n  default: light\n  disable_detection: true\n")

	out, _, err := env.run(t, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Light")
}

func TestThemeSetPersists(t *testing.T) {
	env := newCLIEnv(t, "")

	out, _, err := env.run(t, "theme", "set", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme set to light")

	value, ok := storedTheme(t, env.preferences)
	require.True(t, ok)
	assert.Equal(t, "light", value)

	out, _, err = env.run(t, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Light")
	assert.Contains(t, out, "source: stored in "+env.preferences)
}

func TestThemeSetRejectsUnknownMode(t *testing.T) {
	env := newCLIEnv(t, "")

	_, _, err := env.run(t, "theme", "set", "sepia")
	require.Error(t, err)

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, err.Error(), "Use dark or light.")

	_, ok := storedTheme(t, env.preferences)
	assert.False(t, ok)
}

func TestThemeToggleFlipsStoredValue(t *testing.T) {
	env := newCLIEnv(t, "")

	out, _, err := env.run(t, "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "from dark to light")

	out, _, err = env.run(t, "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "from light to dark")

	value, _ := storedTheme(t, env.preferences)
	assert.Equal(t, "dark", value)
}

func TestThemeResetForgetsPreference(t *testing.T) {
	env := newCLIEnv(t, "")

	_, _, err := env.run(t, "theme", "set", "light")
	require.NoError(t, err)

	out, _, err := env.run(t, "theme", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")

	_, ok := storedTheme(t, env.preferences)
	assert.False(t, ok)
}

func TestInvalidConfigSurfacesCommandError(t *testing.T) {
	env := newCLIEnv(t, "log_level: loud\n")

	_, _, err := env.run(t, "theme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to resolve theme: loading configuration")
}

func TestPreferencesFlagExpandsHome(t *testing.T) {
	env := newCLIEnv(t, "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, _, err := env.run(t, "--preferences", "~/folio/preferences.yaml", "theme", "set", "light")
	require.NoError(t, err)

	value, ok := storedTheme(t, filepath.Join(home, "folio", "preferences.yaml"))
	require.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestBlankContentFlagIsRejected(t *testing.T) {
	env := newCLIEnv(t, "")

	_, _, err := env.run(t, "--content", "  ", "projects")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "applying flags")
}

func TestThemeSetAppliesMarker(t *testing.T) {
	env := newCLIEnv(t, "")

	_, _, err := env.run(t, "theme", "set", "light")
	require.NoError(t, err)
	assert.False(t, components.Root().IsDark())

	_, _, err = env.run(t, "theme", "set", "dark")
	require.NoError(t, err)
	assert.True(t, components.Root().IsDark())
}

func TestThemeSetReportsUnwritableStore(t *testing.T) {
	env := newCLIEnv(t, "")
	blocker := env.writeFile(t, "blocker", "a file, not a directory")

	_, _, err := env.run(t, "--preferences", filepath.Join(blocker, "preferences.yaml"), "theme", "set", "light")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to set theme: writing")
}
