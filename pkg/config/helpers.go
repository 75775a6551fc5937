package config

import (
	"time"

	"github.com/glorpus-work/foxfetch/pkg/errors"
)

// Keys lists the settings accepted by SetValue and GetValue, in display order.
var Keys = []string{
	"destination",
	"platform",
	"arch",
	"index_url",
	"http_timeout",
	"user_agent",
	"log_level",
	"log_format",
	"hooks.dir",
	"hooks.post_download",
	"hooks.download_failed",
}

// SetValue sets a configuration value by key. The result is not validated;
// call Validate before saving.
func (c *Config) SetValue(key, value string) error {
	s := &c.Settings
	switch key {
	case "destination":
		s.Destination = value
	case "platform":
		s.Platform = value
	case "arch":
		s.Arch = value
	case "index_url":
		s.IndexURL = value
	case "http_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(errors.ErrConfigValidation, "invalid duration for %s: %s", key, value)
		}
		s.HTTPTimeout = d
	case "user_agent":
		s.UserAgent = value
	case "log_level":
		s.LogLevel = value
	case "log_format":
		s.LogFormat = value
	case "hooks.dir":
		s.Hooks.Dir = value
	case "hooks.post_download":
		s.Hooks.PostDownload = value
	case "hooks.download_failed":
		s.Hooks.DownloadFailed = value
	default:
		return errors.Wrapf(errors.ErrUnknownConfigKey, "%s", key)
	}
	return nil
}

// GetValue returns the value of key as a string.
func (c *Config) GetValue(key string) (string, error) {
	s := c.Settings
	switch key {
	case "destination":
		return s.Destination, nil
	case "platform":
		return s.Platform, nil
	case "arch":
		return s.Arch, nil
	case "index_url":
		return s.IndexURL, nil
	case "http_timeout":
		return s.HTTPTimeout.String(), nil
	case "user_agent":
		return s.UserAgent, nil
	case "log_level":
		return s.LogLevel, nil
	case "log_format":
		return s.LogFormat, nil
	case "hooks.dir":
		return s.Hooks.Dir, nil
	case "hooks.post_download":
		return s.Hooks.PostDownload, nil
	case "hooks.download_failed":
		return s.Hooks.DownloadFailed, nil
	default:
		return "", errors.Wrapf(errors.ErrUnknownConfigKey, "%s", key)
	}
}

// ToMap returns every key with its value. This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string, len(Keys))
	for _, key := range Keys {
		value, _ := c.GetValue(key)
		result[key] = value
	}
	return result
}
