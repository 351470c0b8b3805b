package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"igosint/pkg/config"
	"igosint/pkg/ui"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	prevOut := ui.Output()
	prevColor := ui.ColorEnabled()
	t.Cleanup(func() {
		ui.SetOutput(prevOut)
		ui.SetColorEnabled(prevColor)
		ui.SetQuietMode(false)
	})

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(withNoColor(args))

	err := cmd.Execute()
	return buf.String(), err
}

// withNoColor adds --no-color ahead of any "--" terminator
func withNoColor(args []string) []string {
	for i, a := range args {
		if a == "--" {
			out := append([]string{}, args[:i]...)
			out = append(out, "--no-color")
			return append(out, args[i:]...)
		}
	}
	return append(args, "--no-color")
}

// chdir moves into a scratch directory so no local config or .env is picked up
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	return dir
}

func TestNoArgsPrintsUsage(t *testing.T) {
	out, err := executeCommand(t)
	require.NoError(t, err)

	assert.Contains(t, out, "igosint <username> [options]")
	assert.Contains(t, out, "--social-search")
	assert.Contains(t, out, "--image-download")
}

func TestTooManyArgs(t *testing.T) {
	_, err := executeCommand(t, "one", "two")
	assert.Error(t, err)
}

func TestRejectsUnsafeUsernames(t *testing.T) {
	dir := chdir(t)

	for _, arg := range []string{"../x", "a/b", "..", "bad name", "@"} {
		t.Run(arg, func(t *testing.T) {
			_, err := executeCommand(t, arg, "-o", filepath.Join(dir, "output"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid Instagram username")
		})
	}

	_, err := os.Stat(filepath.Join(dir, "output"))
	assert.True(t, os.IsNotExist(err), "nothing is written for a rejected username")
}

func TestSubcommandNameAsUsername(t *testing.T) {
	chdir(t)

	// the username reaches the analysis path, which fails on the bad log level
	_, err := executeCommand(t, "--log-level", "bogus", "--", "config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestFlagsRegistered(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"social-search", "image-download", "output", "markdown"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	for _, name := range []string{"config", "log-level", "no-color", "quiet", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "c", cmd.PersistentFlags().Lookup("config").Shorthand)
	assert.Equal(t, "o", cmd.Flags().Lookup("output").Shorthand)
}

func TestCommandFlags(t *testing.T) {
	tests := []struct {
		name string
		opts rootOptions
		want map[string]interface{}
	}{
		{"none", rootOptions{}, map[string]interface{}{}},
		{"verbose", rootOptions{verbose: true}, map[string]interface{}{"log-level": "debug"}},
		{"explicit level wins", rootOptions{verbose: true, logLevel: "error"}, map[string]interface{}{"log-level": "error"}},
		{"output and markdown", rootOptions{outputDir: "out", markdown: true}, map[string]interface{}{"output": "out", "markdown": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.commandFlags())
		})
	}
}

func TestConfigInitAndShow(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yaml")

	_, err := executeCommand(t, "config", "init", "--config", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = executeCommand(t, "config", "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	out, err := executeCommand(t, "config", "show", "--config", path, "--log-level", "debug")
	require.NoError(t, err)

	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "debug", shown.Logging.Level)
	assert.Equal(t, config.DefaultSites, shown.Presence.Sites)
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))

	_, err := executeCommand(t, "config", "validate", "--config", path)
	assert.ErrorContains(t, err, "invalid log level")

	_, err = executeCommand(t, "config", "validate")
	assert.NoError(t, err)
}
