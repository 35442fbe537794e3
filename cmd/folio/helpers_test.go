package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/components"
)

type cliEnv struct {
	dir         string
	configPath  string
	preferences string
}

func newCLIEnv(t *testing.T, configYAML string) cliEnv {
	t.Helper()

	dir := t.TempDir()
	if configYAML == "" {
		configYAML = "log_level: warn\ntheme:\n  disable_detection: true\n"
	}
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o600))

	components.SetTheme(components.DarkTheme())
	t.Cleanup(func() { components.SetTheme(components.DarkTheme()) })

	return cliEnv{dir: dir, configPath: configPath, preferences: filepath.Join(dir, "preferences.yaml")}
}

func (e cliEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config", e.configPath, "--preferences", e.preferences}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func (e cliEnv) writeFile(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(e.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}
