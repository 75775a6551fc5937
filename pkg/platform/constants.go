// Package platform describes the operating systems and architectures that
// nightly builds are published for, and detects the host's own values.
package platform

// Target is an operating system that nightly builds are published for.
type Target string

const (
	// Win32 is Windows, 32 or 64-bit.
	Win32 Target = "win32"
	// Darwin is macOS.
	Darwin Target = "darwin"
	// Linux is Linux.
	Linux Target = "linux"
)

// Arch distinguishes 64-bit x86 hosts from everything else.
type Arch string

const (
	// Arch64 is a 64-bit x86 host.
	Arch64 Arch = "64-bit"
	// ArchOther is any other architecture.
	ArchOther Arch = "other"
)

// ValidTargets returns the supported targets.
func ValidTargets() []string {
	return []string{
		string(Win32),
		string(Darwin),
		string(Linux),
	}
}

// ValidArch returns the accepted architecture values.
func ValidArch() []string {
	return []string{
		string(Arch64),
		string(ArchOther),
	}
}
