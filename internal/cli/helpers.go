package cli

import (
	"fmt"

	"github.com/glorpus-work/foxfetch/internal/logger"
	"github.com/glorpus-work/foxfetch/pkg/config"
	"github.com/glorpus-work/foxfetch/pkg/fetcher"
	"github.com/glorpus-work/foxfetch/pkg/hooks"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoProgress *bool
)

// loadConfig loads the configuration file and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	logger.InitLogger(cfg.Settings.LogLevel, logger.OutputFormat(cfg.Settings.LogFormat))

	return cfg, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		// an empty path makes LoadConfig report ErrEmptyConfigPath
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}

// targetFlags are the --platform and --arch overrides shared by commands.
type targetFlags struct {
	platform string
	arch     string
}

func (t targetFlags) apply(cfg *config.Config) {
	if t.platform != "" {
		cfg.Settings.Platform = t.platform
	}
	if t.arch != "" {
		cfg.Settings.Arch = t.arch
	}
}

// fetcherOptions maps the configuration onto fetcher options.
func fetcherOptions(cfg *config.Config) fetcher.Options {
	return fetcher.Options{
		Platform:    cfg.Settings.Platform,
		Arch:        cfg.Settings.Arch,
		IndexURL:    cfg.Settings.IndexURL,
		HTTPTimeout: cfg.Settings.HTTPTimeout,
		UserAgent:   cfg.Settings.UserAgent,
		Auth:        cfg.Authenticator(),
	}
}

// loadHookRunner registers the scripts from the hooks directory, then the
// explicitly configured files, which take precedence.
func loadHookRunner(cfg *config.Config) (*hooks.TengoExecutor, error) {
	executor := hooks.NewTengoExecutor()

	dir, err := cfg.GetHooksDir()
	if err != nil {
		logger.Warn("Failed to get hooks directory", logger.Fields{"error": err})
	} else if err := hooks.LoadHooksFromDir(executor, dir); err != nil {
		return nil, err
	}

	files := map[hooks.HookType]string{
		hooks.PostDownload:   cfg.Settings.Hooks.PostDownload,
		hooks.DownloadFailed: cfg.Settings.Hooks.DownloadFailed,
	}
	for hookType, path := range files {
		if path == "" {
			continue
		}
		if err := hooks.LoadHookFile(executor, hookType, path); err != nil {
			return nil, err
		}
	}
	return executor, nil
}
