package platform

import (
	"context"
	"errors"
	"runtime"
	"testing"

	pkgerrors "github.com/glorpus-work/foxfetch/pkg/errors"
)

func TestCurrentHost(t *testing.T) {
	h := CurrentHost()

	if h.OS == "" {
		t.Error("Expected OS to be non-empty")
	}
	if h.Arch != Arch64 && h.Arch != ArchOther {
		t.Errorf("Expected a known arch, got %q", h.Arch)
	}

	expectedOS := NormalizeOS(runtime.GOOS)
	if h.OS != expectedOS {
		t.Errorf("Expected OS %q, got %q", expectedOS, h.OS)
	}

	// Detected once per process.
	if again := CurrentHost(); again != h {
		t.Errorf("Expected stable host, got %v then %v", h, again)
	}
}

func TestDetectHost(t *testing.T) {
	h := DetectHost(context.Background())
	if h.Machine == "" {
		t.Error("Expected machine to be non-empty")
	}
	if h.Arch != ClassifyArch(h.Machine) {
		t.Errorf("Expected arch %q for machine %q, got %q", ClassifyArch(h.Machine), h.Machine, h.Arch)
	}
}

func TestHostString(t *testing.T) {
	h := Host{OS: Linux, Arch: Arch64}
	if h.String() != "linux/64-bit" {
		t.Errorf("Expected %q, got %q", "linux/64-bit", h.String())
	}
}

func TestNormalizeOS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Target
	}{
		{"win32", "win32", Win32},
		{"go windows", "windows", Win32},
		{"uppercase", "WINDOWS", Win32},
		{"darwin", "darwin", Darwin},
		{"macos", "macos", Darwin},
		{"darwin with spaces", " darwin ", Darwin},
		{"linux", "linux", Linux},
		{"unknown OS", "aix", Target("aix")},
		{"empty string", "", Target("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeOS(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeOS(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestClassifyArch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Arch
	}{
		{"amd64", "amd64", Arch64},
		{"x86_64", "x86_64", Arch64},
		{"node x64", "x64", Arch64},
		{"uppercase", "X86_64", Arch64},
		{"386", "386", ArchOther},
		{"i686", "i686", ArchOther},
		{"arm64", "arm64", ArchOther},
		{"aarch64", "aarch64", ArchOther},
		{"empty string", "", ArchOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyArch(tt.input)
			if result != tt.expected {
				t.Errorf("ClassifyArch(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Target
		expectError bool
	}{
		{name: "win32", input: "win32", expected: Win32},
		{name: "windows alias", input: "windows", expected: Win32},
		{name: "darwin", input: "darwin", expected: Darwin},
		{name: "linux", input: "linux", expected: Linux},
		{name: "aix", input: "aix", expectError: true},
		{name: "freebsd", input: "freebsd", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTarget(tt.input)
			if tt.expectError {
				if !errors.Is(err, pkgerrors.ErrPlatformNotSupported) {
					t.Fatalf("Expected ErrPlatformNotSupported, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("ParseTarget(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseArch(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Arch
		expectError bool
	}{
		{name: "64-bit", input: "64-bit", expected: Arch64},
		{name: "other", input: "other", expected: ArchOther},
		{name: "machine name", input: "x86_64", expected: Arch64},
		{name: "other machine name", input: "armv7l", expected: ArchOther},
		{name: "mixed case machine name", input: " AARCH64 ", expected: ArchOther},
		{name: "empty", input: "", expectError: true},
		{name: "unknown value", input: "banana", expectError: true},
		{name: "typo", input: "64bit", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseArch(tt.input)
			if tt.expectError {
				if !errors.Is(err, pkgerrors.ErrInvalidArch) {
					t.Fatalf("Expected ErrInvalidArch, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("ParseArch(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
