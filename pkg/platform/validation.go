package platform

import (
	"strings"

	"github.com/glorpus-work/foxfetch/pkg/errors"
)

// ParseTarget normalizes name and checks it against the supported targets.
func ParseTarget(name string) (Target, error) {
	t := NormalizeOS(name)
	if !t.Supported() {
		return "", errors.ErrPlatformNotSupportedWithValue(name)
	}
	return t, nil
}

// Supported reports whether t is one of the supported targets.
func (t Target) Supported() bool {
	switch t {
	case Win32, Darwin, Linux:
		return true
	default:
		return false
	}
}

// knownMachines lists the machine names ParseArch accepts besides the Arch
// values themselves.
var knownMachines = map[string]Arch{
	"amd64":   Arch64,
	"x86_64":  Arch64,
	"x64":     Arch64,
	"x86-64":  Arch64,
	"386":     ArchOther,
	"i386":    ArchOther,
	"i686":    ArchOther,
	"x86":     ArchOther,
	"arm":     ArchOther,
	"armv6l":  ArchOther,
	"armv7l":  ArchOther,
	"arm64":   ArchOther,
	"aarch64": ArchOther,
	"ppc64le": ArchOther,
	"s390x":   ArchOther,
	"riscv64": ArchOther,
}

// ParseArch accepts either an Arch value or a known machine name such as
// "x86_64" or "aarch64". Anything else is rejected so a typo cannot
// silently select the other build.
func ParseArch(value string) (Arch, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch Arch(v) {
	case Arch64, ArchOther:
		return Arch(v), nil
	}
	if arch, ok := knownMachines[v]; ok {
		return arch, nil
	}
	return "", errors.ErrInvalidArchWithDetails(value, ValidArch())
}
