// Package errors holds the sentinel errors shared across foxfetch and the
// small wrapping helpers used to add context while keeping errors.Is working.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Common error types.
var (
	// Construction errors.
	ErrPlatformNotSupported = fmt.Errorf("Platform not supported") //nolint:staticcheck // message is part of the public contract
	ErrNamespaceUndefined   = fmt.Errorf("no nightly build namespace for this platform and architecture")
	ErrInvalidArch          = fmt.Errorf("invalid architecture value")

	// Download errors.
	ErrDirectoryNotExist = fmt.Errorf("Directory doesn't exist") //nolint:staticcheck // message is part of the public contract
	ErrDownloadFailed    = fmt.Errorf("download failed")

	// Disk image errors.
	ErrMountFailed      = fmt.Errorf("mount failed")
	ErrUnmountFailed    = fmt.Errorf("unmount failed")
	ErrMountUnavailable = fmt.Errorf("hdiutil is not available on your platform")

	// Archive errors.
	ErrUnsafeArchivePath = fmt.Errorf("archive entry escapes destination")

	// Build index errors.
	ErrNamespaceNotIndexed = fmt.Errorf("namespace not found in build index")
	ErrArtifactNotFound    = fmt.Errorf("no artifact with the requested file ending")
	ErrIndexUnavailable    = fmt.Errorf("build index request failed")
	ErrAuthCredentials     = fmt.Errorf("incomplete credentials")

	// Build info errors.
	ErrBuildInfoNotFound = fmt.Errorf("application.ini not found")
	ErrBuildInfoInvalid  = fmt.Errorf("invalid application.ini")

	// Config errors.
	ErrEmptyConfigPath     = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath   = fmt.Errorf("invalid config file path")
	ErrConfigParse         = fmt.Errorf("failed to parse config")
	ErrConfigValidation    = fmt.Errorf("invalid configuration")
	ErrConfigEncode        = fmt.Errorf("failed to encode config")
	ErrConfigDirectory     = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate    = fmt.Errorf("failed to create config file")
	ErrConfigFileRename    = fmt.Errorf("failed to rename temporary config file")
	ErrConfigFileExists    = fmt.Errorf("configuration file already exists (use --force to overwrite)")
	ErrHTTPTimeoutNegative = fmt.Errorf("http_timeout cannot be negative")
	ErrInvalidLogLevel     = fmt.Errorf("invalid log level")
	ErrInvalidIndexURL     = fmt.Errorf("invalid index_url")
	ErrUnknownConfigKey    = fmt.Errorf("unknown configuration key")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
	ErrHookLoad      = fmt.Errorf("failed to load hook")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Join combines errs, dropping nil values. It returns nil when every error is nil.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// StatusError reports a nonzero exit status from an external tool.
// It unwraps to the sentinel describing the failed step.
type StatusError struct {
	Op     error
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s with status %d", e.Op, e.Status)
}

func (e *StatusError) Unwrap() error {
	return e.Op
}

// ErrInvalidLogLevelWithDetails is a helper to create a wrapped error with the invalid level and valid options.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: '%s', must be one of: debug, info, warn, error", ErrInvalidLogLevel, level)
}

// ErrInvalidArchWithDetails is a helper to create a wrapped error with the invalid value and valid options.
func ErrInvalidArchWithDetails(value string, valid []string) error {
	return fmt.Errorf("%w: %s. Valid values are: %v", ErrInvalidArch, value, valid)
}

// ErrPlatformNotSupportedWithValue includes the rejected platform name.
func ErrPlatformNotSupportedWithValue(value string) error {
	return fmt.Errorf("%w: %q", ErrPlatformNotSupported, value)
}
