package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glorpus-work/foxfetch/internal/logger"
	"github.com/glorpus-work/foxfetch/pkg/config"
	"github.com/glorpus-work/foxfetch/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linuxNamespace = "gecko.v2.mozilla-release.nightly.latest.firefox.linux64-opt"

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var logs bytes.Buffer
	logger.SetTestOutput(&logs)
	t.Cleanup(logger.UnsetTestOutput)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// writeConfig writes a config pointing at indexURL and returns its path.
func writeConfig(t *testing.T, indexURL string) string {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	if indexURL != "" {
		cfg.Settings.IndexURL = indexURL
	}
	cfg.Settings.Hooks.Dir = filepath.Join(dir, "hooks")
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, cfg.SaveConfig(path))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "foxfetch version")
}

func TestDownloadCommand(t *testing.T) {
	srv := testutil.NewTaskClusterServer(t)
	srv.AddArtifact(linuxNamespace, "task-1", "public/build/target.tar.bz2",
		testutil.BuildArchive(t, "target.tar.bz2", testutil.FirefoxTree("firefox", "130.0a1")))

	cfgPath := writeConfig(t, srv.URL)
	dest := t.TempDir()

	out, err := runCLI(t, "download", "--config", cfgPath, "--dest", dest,
		"--platform", "linux", "--arch", "64-bit", "--no-progress")
	require.NoError(t, err)

	expected := filepath.Join(dest, "firefox", "firefox")
	assert.Equal(t, expected, strings.TrimSpace(out))
	assert.FileExists(t, expected)
	assert.NoFileExists(t, filepath.Join(dest, "target.tar.bz2"))

	out, err = runCLI(t, "info", "--config", cfgPath, dest)
	require.NoError(t, err)
	assert.Contains(t, out, "130.0a1")
	assert.Contains(t, out, "20240601093000")
}

func TestDownloadCommand_WithProgressAndHook(t *testing.T) {
	srv := testutil.NewTaskClusterServer(t)
	srv.AddArtifact(linuxNamespace, "task-1", "public/build/target.tar.bz2",
		testutil.BuildArchive(t, "target.tar.bz2", testutil.FirefoxTree("firefox", "130.0a1")))

	cfgPath := writeConfig(t, srv.URL)
	cfg, err := config.LoadConfig(cfgPath)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(cfg.Settings.Hooks.Dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Settings.Hooks.Dir, "post-download.tengo"),
		[]byte(`err := "rejected " + version`), 0o644))

	_, err = runCLI(t, "download", "--config", cfgPath, "--dest", t.TempDir(),
		"--platform", "linux", "--arch", "64-bit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected 130.0a1")
}

func TestDownloadCommand_MissingDestination(t *testing.T) {
	srv := testutil.NewTaskClusterServer(t)
	cfgPath := writeConfig(t, srv.URL)

	_, err := runCLI(t, "download", "--config", cfgPath, "--dest", filepath.Join(t.TempDir(), "missing"),
		"--platform", "linux", "--no-progress")
	require.Error(t, err)
	assert.Equal(t, "Directory doesn't exist", err.Error())
	assert.Zero(t, srv.Requests())
}

func TestNamespaceCommand(t *testing.T) {
	cfgPath := writeConfig(t, "")
	dest := t.TempDir()

	tests := []struct {
		platform  string
		arch      string
		namespace string
		artifact  string
	}{
		{"linux", "64-bit", linuxNamespace, "target.tar.bz2"},
		{"win32", "other", "gecko.v2.mozilla-release.nightly.latest.firefox.win32-opt", "target.zip"},
		{"darwin", "64-bit", "gecko.v2.mozilla-release.nightly.latest.firefox.macosx64-opt", "target.dmg"},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			out, err := runCLI(t, "namespace", "--config", cfgPath, "--dest", dest,
				"--platform", tt.platform, "--arch", tt.arch)
			require.NoError(t, err)
			assert.Contains(t, out, tt.namespace)
			assert.Contains(t, out, tt.artifact)
		})
	}

	_, err := runCLI(t, "namespace", "--config", cfgPath, "--platform", "aix")
	assert.ErrorContains(t, err, "Platform not supported")

	_, err = runCLI(t, "namespace", "--config", cfgPath, "--platform", "darwin", "--arch", "other")
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "foxfetch", "config.yaml")

	_, err := runCLI(t, "config", "init", "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, cfgPath)

	_, err = runCLI(t, "config", "init", "--config", cfgPath)
	assert.ErrorContains(t, err, "already exists")

	_, err = runCLI(t, "config", "set", "--config", cfgPath, "platform", "win32")
	require.NoError(t, err)

	_, err = runCLI(t, "config", "set", "--config", cfgPath, "platform", "aix")
	assert.Error(t, err)

	out, err := runCLI(t, "config", "get", "--config", cfgPath, "platform")
	require.NoError(t, err)
	assert.Equal(t, "win32", strings.TrimSpace(out))

	out, err = runCLI(t, "config", "show", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "index_url")
	assert.Contains(t, out, "win32")

	out, err = runCLI(t, "config", "path", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, strings.TrimSpace(out))
}

func TestHookCommands(t *testing.T) {
	out, err := runCLI(t, "hook", "template", "post-download")
	require.NoError(t, err)
	assert.Contains(t, out, "Post-download hook")

	_, err = runCLI(t, "hook", "template", "pre-install")
	assert.Error(t, err)

	out, err = runCLI(t, "hook", "list", "--config", writeConfig(t, ""))
	require.NoError(t, err)
	assert.Contains(t, out, "post-download: none")
}
