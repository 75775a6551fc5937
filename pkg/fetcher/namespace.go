package fetcher

import (
	"fmt"
	"path/filepath"

	"github.com/glorpus-work/foxfetch/pkg/errors"
	"github.com/glorpus-work/foxfetch/pkg/platform"
)

const namespacePrefix = "gecko.v2.mozilla-release.nightly.latest.firefox."

var namespaces = map[platform.Target]map[platform.Arch]string{
	platform.Win32: {
		platform.Arch64:    namespacePrefix + "win64-opt",
		platform.ArchOther: namespacePrefix + "win32-opt",
	},
	platform.Darwin: {
		platform.Arch64: namespacePrefix + "macosx64-opt",
	},
	platform.Linux: {
		platform.Arch64:    namespacePrefix + "linux64-opt",
		platform.ArchOther: namespacePrefix + "linux-opt",
	},
}

var extensions = map[platform.Target]string{
	platform.Win32:  "target.zip",
	platform.Darwin: "target.dmg",
	platform.Linux:  "target.tar.bz2",
}

// NamespaceFor returns the build index namespace of the latest nightly for
// target and arch. There is no non-64-bit macOS build.
func NamespaceFor(target platform.Target, arch platform.Arch) (string, error) {
	ns, ok := namespaces[target][arch]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", errors.ErrNamespaceUndefined, target, arch)
	}
	return ns, nil
}

// ExtensionFor returns the suffix of the build artifact published for target.
func ExtensionFor(target platform.Target) (string, error) {
	ext, ok := extensions[target]
	if !ok {
		return "", errors.ErrPlatformNotSupportedWithValue(string(target))
	}
	return ext, nil
}

// ExecutablePath returns where the browser executable of a target build
// ends up once installed into destination.
func ExecutablePath(destination string, target platform.Target) string {
	switch target {
	case platform.Win32:
		return filepath.Join(destination, "firefox", "firefox.exe")
	case platform.Darwin:
		return filepath.Join(destination, "Firefox.app", "Contents", "MacOS", "firefox")
	default:
		return filepath.Join(destination, "firefox", "firefox")
	}
}
