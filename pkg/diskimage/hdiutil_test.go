package diskimage

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/glorpus-work/foxfetch/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool writes a shell script that records its arguments and exits with status.
func fakeTool(t *testing.T, status string) (program, argsFile string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on Windows")
	}
	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args")
	program = filepath.Join(dir, "hdiutil")
	script := "#!/bin/sh\necho \"$@\" >> " + argsFile + "\nexit " + status + "\n"
	require.NoError(t, os.WriteFile(program, []byte(script), 0o755))
	return program, argsFile
}

func TestHdiutil_Available(t *testing.T) {
	tests := []struct {
		name     string
		host     platform.Host
		expected bool
	}{
		{name: "linux host", host: platform.Host{OS: platform.Linux, Arch: platform.Arch64}, expected: false},
		{name: "windows host", host: platform.Host{OS: platform.Win32, Arch: platform.Arch64}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewHdiutil(tt.host).Available())
		})
	}

	t.Run("darwin host with program", func(t *testing.T) {
		program, _ := fakeTool(t, "0")
		h := &Hdiutil{host: platform.Host{OS: platform.Darwin}, program: program}
		assert.True(t, h.Available())
	})

	t.Run("darwin host without program", func(t *testing.T) {
		h := &Hdiutil{host: platform.Host{OS: platform.Darwin}, program: filepath.Join(t.TempDir(), "missing")}
		assert.False(t, h.Available())
	})
}

func TestHdiutil_MountUnmount(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected int
	}{
		{name: "success", status: "0", expected: 0},
		{name: "failure status", status: "1", expected: 1},
		{name: "busy status", status: "16", expected: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, argsFile := fakeTool(t, tt.status)
			h := &Hdiutil{host: platform.Host{OS: platform.Darwin}, program: program}

			status, err := h.Mount(context.Background(), "/tmp/target.dmg", "/tmp/mnt")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)

			status, err = h.Unmount(context.Background(), "/tmp/mnt")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)

			recorded, err := os.ReadFile(argsFile)
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(string(recorded)), "\n")
			require.Len(t, lines, 2)
			assert.True(t, strings.HasPrefix(lines[0], "attach "))
			assert.Contains(t, lines[0], "-mountpoint /tmp/mnt /tmp/target.dmg")
			assert.Equal(t, "detach /tmp/mnt -force -quiet", lines[1])
		})
	}
}

func TestHdiutil_MissingProgram(t *testing.T) {
	h := &Hdiutil{host: platform.Host{OS: platform.Darwin}, program: filepath.Join(t.TempDir(), "missing")}
	status, err := h.Mount(context.Background(), "image.dmg", "mnt")
	require.Error(t, err)
	assert.Equal(t, -1, status)
}

func TestCopyBundle(t *testing.T) {
	mountpoint := t.TempDir()
	dest := t.TempDir()

	exe := filepath.Join(mountpoint, BundleName, "Contents", "MacOS", "firefox")
	require.NoError(t, os.MkdirAll(filepath.Dir(exe), 0o755))
	require.NoError(t, os.WriteFile(exe, []byte("bin"), 0o755))

	// stale copy from a previous download is replaced
	stale := filepath.Join(dest, BundleName, "stale")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	copied, err := CopyBundle(mountpoint, BundleName, dest)
	require.NoError(t, err)
	assert.True(t, copied)
	assert.FileExists(t, filepath.Join(dest, BundleName, "Contents", "MacOS", "firefox"))
	assert.NoFileExists(t, stale)
}

func TestCopyBundle_Missing(t *testing.T) {
	copied, err := CopyBundle(t.TempDir(), BundleName, t.TempDir())
	require.NoError(t, err)
	assert.False(t, copied)
}
