package hooks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/foxfetch/pkg/errors"
)

// HookFileExtension is the extension of hook script files.
const HookFileExtension = ".tengo"

// LoadHookFile reads the script at path and registers it for hookType.
func LoadHookFile(executor *TengoExecutor, hookType HookType, path string) error {
	if filepath.Ext(path) != HookFileExtension {
		return errors.Wrapf(errors.ErrHookLoad, "hook file %s must have the %s extension", path, HookFileExtension)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrHookLoad, "error reading hooks file %s: %v", path, err)
	}
	return executor.AddHook(Hook{Type: hookType, Content: string(content), Path: path})
}

// LoadHooksFromDir registers every <hook-type>.tengo file found in dir.
// A missing directory loads nothing.
func LoadHooksFromDir(executor *TengoExecutor, dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read hooks directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != HookFileExtension {
			continue
		}

		hookType := HookType(strings.TrimSuffix(entry.Name(), HookFileExtension))
		if !isValidHookType(hookType) {
			continue
		}

		if err := LoadHookFile(executor, hookType, filepath.Join(dir, entry.Name())); err != nil {
			return errors.Wrapf(err, "error loading hooks from %s", dir)
		}
	}

	return nil
}

// HookTemplate generates a template for a hooks script.
func HookTemplate(hookType HookType) string {
	switch hookType {
	case PostDownload:
		return `// Post-download hook
// This script runs after a build was downloaded and extracted
// Available variables:
// - executable: string - path to the browser executable
// - destination: string - directory the build was extracted to
// - platform: string - win32, darwin or linux
// - arch: string - 64-bit or other
// - namespace: string - build index namespace the build came from
// - version: string - build version, empty when unknown
//
// Set err to a non-empty string to fail the download.

// Example: Refuse builds older than a given major version
/*
text := import("text")
err := ""
if version != "" && text.atoi(text.split(version, ".")[0]) < 120 {
    err = "build too old: " + version
}
*/`

	case DownloadFailed:
		return `// Download-failed hook
// This script runs when a download fails
// Available variables: same as post-download, plus
// - failure: string - the error message

// Example: Log the failure
/*
fmt := import("fmt")
fmt.println("download of " + namespace + " failed: " + failure)
*/`

	default:
		return "// Unknown hooks type: " + string(hookType)
	}
}
