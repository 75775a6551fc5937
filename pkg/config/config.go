// Package config loads, validates and saves the foxfetch YAML
// configuration file. A missing file yields the defaults.
package config

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glorpus-work/foxfetch/pkg/buildindex"
	"github.com/glorpus-work/foxfetch/pkg/download"
	"github.com/glorpus-work/foxfetch/pkg/errors"
	"github.com/glorpus-work/foxfetch/pkg/fsutil"
	"github.com/glorpus-work/foxfetch/pkg/platform"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// Destination is where builds are installed. Empty means the working directory.
	Destination string `yaml:"destination"`

	// Platform and Arch override the host values when set.
	Platform string `yaml:"platform"`
	Arch     string `yaml:"arch"`

	// Network settings
	IndexURL    string        `yaml:"index_url"`
	HTTPTimeout time.Duration `yaml:"http_timeout"` // 0 means no timeout
	UserAgent   string        `yaml:"user_agent"`

	// Output settings
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // text, json

	Hooks HooksConfig `yaml:"hooks"`

	// Auth is sent with index and download requests when set.
	Auth *AuthConfig `yaml:"auth,omitempty"`
}

// HooksConfig points at Tengo hook scripts.
type HooksConfig struct {
	// Dir holds <hook-type>.tengo scripts. Empty means the default hooks directory.
	Dir            string `yaml:"dir,omitempty"`
	PostDownload   string `yaml:"post_download"`
	DownloadFailed string `yaml:"download_failed"`
}

// Default configuration values.
const (
	// DefaultLogLevel is used when log_level is not set.
	DefaultLogLevel = "info"

	// DefaultLogFormat is used when log_format is not set.
	DefaultLogFormat = "text"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2

	appName = "foxfetch"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			IndexURL:  buildindex.DefaultRootURL,
			UserAgent: download.DefaultUserAgent,
			LogLevel:  DefaultLogLevel,
			LogFormat: DefaultLogFormat,
		},
	}
}

// LoadConfig loads configuration from a file. A missing file is not an
// error and yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrConfigValidation, err)
	}

	return &config, nil
}

// SaveConfig writes the configuration to path through a temporary file.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(absPath), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if err := validatePlatform(c.Settings); err != nil {
		return err
	}
	if err := validateSettings(c.Settings); err != nil {
		return err
	}
	return c.Settings.Auth.validate()
}

func validatePlatform(s Settings) error {
	if s.Platform != "" {
		if _, err := platform.ParseTarget(s.Platform); err != nil {
			return err
		}
	}
	if s.Arch != "" {
		if _, err := platform.ParseArch(s.Arch); err != nil {
			return err
		}
	}
	return nil
}

func validateSettings(s Settings) error {
	if s.HTTPTimeout < 0 {
		return errors.ErrHTTPTimeoutNegative
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.LogLevel)] {
		return errors.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}
	if s.LogFormat != "text" && s.LogFormat != "json" {
		return fmt.Errorf("invalid log_format '%s', must be one of: text, json", s.LogFormat)
	}
	if s.IndexURL != "" {
		u, err := url.Parse(s.IndexURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %s", errors.ErrInvalidIndexURL, s.IndexURL)
		}
	}
	return nil
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Settings.IndexURL == "" {
		c.Settings.IndexURL = defaults.Settings.IndexURL
	}
	if c.Settings.UserAgent == "" {
		c.Settings.UserAgent = defaults.Settings.UserAgent
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
	if c.Settings.LogFormat == "" {
		c.Settings.LogFormat = defaults.Settings.LogFormat
	}
}

// GetDestination returns the install directory, falling back to the
// working directory.
func (c *Config) GetDestination() (string, error) {
	if c.Settings.Destination != "" {
		return c.Settings.Destination, nil
	}
	return os.Getwd()
}

// GetHooksDir returns the directory scanned for hook scripts.
func (c *Config) GetHooksDir() (string, error) {
	if c.Settings.Hooks.Dir != "" {
		return c.Settings.Hooks.Dir, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, appName, "hooks"), nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, appName, "config.yaml"), nil
}
