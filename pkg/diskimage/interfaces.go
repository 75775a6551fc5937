//go:generate mockgen -destination=./mocks/diskimage.go . Tool

package diskimage

import "context"

// Tool mounts and unmounts disk images. Both calls return the exit status
// of the underlying utility; err is reserved for failing to run it at all.
type Tool interface {
	Mount(ctx context.Context, image, mountpoint string) (int, error)
	Unmount(ctx context.Context, mountpoint string) (int, error)
	// Available reports whether the utility can run on this host.
	Available() bool
}
