// Package diskimage mounts macOS disk images with hdiutil and copies
// application bundles out of them.
package diskimage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/glorpus-work/foxfetch/internal/logger"
	"github.com/glorpus-work/foxfetch/pkg/platform"
)

// Hdiutil runs the macOS hdiutil command.
type Hdiutil struct {
	host    platform.Host
	program string
}

// NewHdiutil creates a Tool for host. It is only Available on darwin hosts
// with hdiutil on the PATH.
func NewHdiutil(host platform.Host) *Hdiutil {
	return &Hdiutil{host: host, program: "hdiutil"}
}

// Available reports whether hdiutil can be run.
func (h *Hdiutil) Available() bool {
	if h.host.OS != platform.Darwin {
		return false
	}
	_, err := exec.LookPath(h.program)
	return err == nil
}

// Mount attaches image read-only at mountpoint without showing it in Finder.
func (h *Hdiutil) Mount(ctx context.Context, image, mountpoint string) (int, error) {
	return h.run(ctx, "attach", "-nobrowse", "-readonly", "-noautoopen", "-quiet", "-mountpoint", mountpoint, image)
}

// Unmount detaches the image mounted at mountpoint.
func (h *Hdiutil) Unmount(ctx context.Context, mountpoint string) (int, error) {
	return h.run(ctx, "detach", mountpoint, "-force", "-quiet")
}

func (h *Hdiutil) run(ctx context.Context, args ...string) (int, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, h.program, args...)
	cmd.Stderr = &stderr

	logger.Debug("running disk image tool", logger.Fields{"cmd": h.program + " " + strings.Join(args, " ")})

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		logger.Debug("disk image tool failed", logger.Fields{
			"status": exitErr.ExitCode(),
			"stderr": strings.TrimSpace(stderr.String()),
		})
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("failed to run %s: %w", h.program, err)
}
