package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glorpus-work/foxfetch/pkg/buildindex"
	"github.com/glorpus-work/foxfetch/pkg/errors"
	"github.com/glorpus-work/foxfetch/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, "text", cfg.Settings.LogFormat)
	assert.Equal(t, buildindex.DefaultRootURL, cfg.Settings.IndexURL)
	assert.Equal(t, time.Duration(0), cfg.Settings.HTTPTimeout)
	assert.Empty(t, cfg.Settings.Destination)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configContent := `settings:
  destination: /opt/nightly
  platform: linux
  arch: 64-bit
  http_timeout: 90s
  log_level: debug
  hooks:
    post_download: /etc/foxfetch/check.tengo`

	require.NoError(t, os.WriteFile(configPath, []byte(configContent), fsutil.FileModeDefault))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/opt/nightly", cfg.Settings.Destination)
	assert.Equal(t, "linux", cfg.Settings.Platform)
	assert.Equal(t, "64-bit", cfg.Settings.Arch)
	assert.Equal(t, 90*time.Second, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.Equal(t, "/etc/foxfetch/check.tengo", cfg.Settings.Hooks.PostDownload)
	// defaults fill the gaps
	assert.Equal(t, buildindex.DefaultRootURL, cfg.Settings.IndexURL)
	assert.Equal(t, "text", cfg.Settings.LogFormat)
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorIs(t, err, errors.ErrEmptyConfigPath)
}

func TestLoadConfigFromReader_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{name: "bad yaml", content: "settings: [", expectedErr: errors.ErrConfigParse},
		{name: "unknown platform", content: "settings:\n  platform: aix", expectedErr: errors.ErrPlatformNotSupported},
		{name: "negative timeout", content: "settings:\n  http_timeout: -1s", expectedErr: errors.ErrHTTPTimeoutNegative},
		{name: "bad log level", content: "settings:\n  log_level: loud", expectedErr: errors.ErrInvalidLogLevel},
		{name: "bad index url", content: "settings:\n  index_url: example.com", expectedErr: errors.ErrInvalidIndexURL},
		{name: "bad log format", content: "settings:\n  log_format: xml", expectedErr: errors.ErrConfigValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFromReader(strings.NewReader(tt.content))
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestSaveConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.LogLevel = "debug"
	cfg.Settings.Platform = "win32"
	cfg.Settings.HTTPTimeout = time.Minute

	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.SaveConfig(configPath))
	assert.NoFileExists(t, configPath+".tmp")

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveConfig_EmptyPath(t *testing.T) {
	assert.ErrorIs(t, DefaultConfig().SaveConfig(""), errors.ErrEmptyConfigPath)
}

func TestSetGetValue(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		key   string
		value string
	}{
		{"destination", "/tmp/builds"},
		{"platform", "darwin"},
		{"arch", "other"},
		{"index_url", "https://tc.example.com"},
		{"http_timeout", "45s"},
		{"user_agent", "test/1.0"},
		{"log_level", "warn"},
		{"log_format", "json"},
		{"hooks.dir", "/tmp/hooks"},
		{"hooks.post_download", "/tmp/post.tengo"},
		{"hooks.download_failed", "/tmp/failed.tengo"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			require.NoError(t, cfg.SetValue(tt.key, tt.value))
			got, err := cfg.GetValue(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.ToMap(), len(Keys))
}

func TestSetGetValue_Errors(t *testing.T) {
	cfg := DefaultConfig()
	assert.ErrorIs(t, cfg.SetValue("cache_dir", "x"), errors.ErrUnknownConfigKey)
	_, err := cfg.GetValue("cache_dir")
	assert.ErrorIs(t, err, errors.ErrUnknownConfigKey)
	assert.ErrorIs(t, cfg.SetValue("http_timeout", "soon"), errors.ErrConfigValidation)
}

func TestGetDestination(t *testing.T) {
	cfg := DefaultConfig()
	wd, err := os.Getwd()
	require.NoError(t, err)

	dest, err := cfg.GetDestination()
	require.NoError(t, err)
	assert.Equal(t, wd, dest)

	cfg.Settings.Destination = "/opt/nightly"
	dest, err = cfg.GetDestination()
	require.NoError(t, err)
	assert.Equal(t, "/opt/nightly", dest)
}

func TestGetDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AppData", t.TempDir())

	path, err := GetDefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.Equal(t, "foxfetch", filepath.Base(filepath.Dir(path)))

	hooksDir, err := DefaultConfig().GetHooksDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "hooks"), hooksDir)
}
