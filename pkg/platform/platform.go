package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v4/host"
)

// Host describes the machine the process runs on.
type Host struct {
	OS   Target `yaml:"os" json:"os"`
	Arch Arch   `yaml:"arch" json:"arch"`
	// Machine is the raw architecture string reported by the kernel.
	Machine string `yaml:"machine" json:"machine"`
}

// String returns a string representation of the host.
func (h Host) String() string {
	return fmt.Sprintf("%s/%s", h.OS, h.Arch)
}

var (
	currentHost     Host
	currentHostOnce sync.Once
)

// CurrentHost returns the host descriptor, detected once per process.
func CurrentHost() Host {
	currentHostOnce.Do(func() {
		currentHost = DetectHost(context.Background())
	})
	return currentHost
}

// DetectHost reads the host OS from the runtime and the architecture from
// the kernel, so a 32-bit binary on a 64-bit kernel still reports 64-bit.
// If the kernel query fails it falls back to runtime.GOARCH.
func DetectHost(ctx context.Context) Host {
	machine, err := host.KernelArchWithContext(ctx)
	if err != nil || machine == "" {
		machine = runtime.GOARCH
	}
	return Host{
		OS:      NormalizeOS(runtime.GOOS),
		Arch:    ClassifyArch(machine),
		Machine: machine,
	}
}

// NormalizeOS maps Go and Node style OS names onto a Target.
// Unknown names are returned lowercased so callers can report them.
func NormalizeOS(os string) Target {
	os = strings.ToLower(strings.TrimSpace(os))
	switch os {
	case "win32", "win", "windows", "win64":
		return Win32
	case "darwin", "macos", "mac", "osx":
		return Darwin
	case "linux":
		return Linux
	default:
		return Target(os)
	}
}

// ClassifyArch maps a machine name onto Arch64 or ArchOther.
// Only x86-64 counts as 64-bit: the 64-bit nightly builds are x86-64 builds.
func ClassifyArch(machine string) Arch {
	switch strings.ToLower(strings.TrimSpace(machine)) {
	case "amd64", "x86_64", "x64", "x86-64":
		return Arch64
	default:
		return ArchOther
	}
}
