// Package fetcher downloads the latest nightly Firefox build for a platform
// and installs it into a local directory.
package fetcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/glorpus-work/foxfetch/internal/logger"
	"github.com/glorpus-work/foxfetch/pkg/archive"
	"github.com/glorpus-work/foxfetch/pkg/auth"
	"github.com/glorpus-work/foxfetch/pkg/buildindex"
	"github.com/glorpus-work/foxfetch/pkg/buildinfo"
	"github.com/glorpus-work/foxfetch/pkg/diskimage"
	"github.com/glorpus-work/foxfetch/pkg/download"
	"github.com/glorpus-work/foxfetch/pkg/errors"
	"github.com/glorpus-work/foxfetch/pkg/fsutil"
	"github.com/glorpus-work/foxfetch/pkg/hooks"
	"github.com/glorpus-work/foxfetch/pkg/platform"
)

// copyBundle is replaced in tests to simulate a failing copy.
var copyBundle = diskimage.CopyBundle

// Fetcher downloads one platform's nightly build into a destination
// directory. A Fetcher runs one download at a time.
type Fetcher struct {
	destination string
	target      platform.Target
	arch        platform.Arch
	namespace   string
	ext         string

	index      buildindex.Index
	downloader download.Streamer
	extractor  Extractor
	diskImage  diskimage.Tool
	runner     hooks.Runner
	hooks      Hooks

	mu         sync.Mutex
	state      State
	downloaded bool
}

// New creates a Fetcher that installs into destination. The destination is
// not checked until Download.
func New(destination string, opts Options) (*Fetcher, error) {
	host := opts.Host
	if host == (platform.Host{}) {
		host = platform.CurrentHost()
	}

	name := opts.Platform
	if name == "" {
		name = string(host.OS)
	}
	target, err := platform.ParseTarget(name)
	if err != nil {
		return nil, err
	}

	arch := host.Arch
	if opts.Arch != "" {
		if arch, err = platform.ParseArch(opts.Arch); err != nil {
			return nil, err
		}
	}
	if arch == "" {
		arch = platform.ClassifyArch(host.Machine)
	}

	namespace, err := NamespaceFor(target, arch)
	if err != nil {
		return nil, err
	}
	ext, err := ExtensionFor(target)
	if err != nil {
		return nil, err
	}

	f := &Fetcher{
		destination: destination,
		target:      target,
		arch:        arch,
		namespace:   namespace,
		ext:         ext,
		index:       opts.Index,
		downloader:  opts.Downloader,
		extractor:   opts.Extractor,
		diskImage:   opts.DiskImage,
		runner:      opts.Runner,
		hooks:       opts.Hooks,
	}

	if f.index == nil {
		tc, err := buildindex.NewTaskCluster(opts.IndexURL, opts.HTTPTimeout, opts.UserAgent)
		if err != nil {
			return nil, err
		}
		tc.SetAuthenticator(opts.Auth)
		f.index = tc
	}
	if f.downloader == nil {
		dl := download.NewManager(opts.HTTPTimeout, opts.UserAgent)
		dl.SetAuthenticator(opts.Auth)
		f.downloader = dl
	}
	if f.extractor == nil {
		f.extractor = archive.NewManager()
	}
	if f.diskImage == nil {
		f.diskImage = diskimage.NewHdiutil(host)
	}

	logger.Debug("fetcher created", logger.Fields{
		"destination": destination,
		"platform":    string(target),
		"arch":        string(arch),
		"namespace":   namespace,
		"auth":        string(auth.MethodOf(opts.Auth)),
	})
	return f, nil
}

// Namespace returns the build index namespace this Fetcher downloads from.
func (f *Fetcher) Namespace() string {
	return f.namespace
}

// PlatformExt returns the artifact suffix this Fetcher looks for.
func (f *Fetcher) PlatformExt() string {
	return f.ext
}

// Platform returns the target platform.
func (f *Fetcher) Platform() platform.Target {
	return f.target
}

// Arch returns the target architecture.
func (f *Fetcher) Arch() platform.Arch {
	return f.arch
}

// Destination returns the directory builds are installed into.
func (f *Fetcher) Destination() string {
	return f.destination
}

// Path returns the executable location inside the destination. It does not
// check that the file exists.
func (f *Fetcher) Path() string {
	return ExecutablePath(f.destination, f.target)
}

// IsDownloaded reports whether the last Download completed.
func (f *Fetcher) IsDownloaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.downloaded
}

// State returns the current step.
func (f *Fetcher) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Download fetches the latest build, installs it into the destination and
// returns the executable path. progress, when non-nil, is called with the
// size of every chunk written and the announced total (0 if unknown).
//
// Every call downloads and installs again.
func (f *Fetcher) Download(ctx context.Context, progress download.ProgressFunc) (string, error) {
	path, err := f.download(ctx, progress)
	if err != nil {
		f.setState(StateFailed, err.Error())
		if hookErr := f.runHook(context.WithoutCancel(ctx), hooks.DownloadFailed, err); hookErr != nil {
			logger.Warn("download-failed hook failed", logger.Fields{"error": hookErr.Error()})
		}
		return "", err
	}
	return path, nil
}

func (f *Fetcher) download(ctx context.Context, progress download.ProgressFunc) (string, error) {
	f.mu.Lock()
	f.downloaded = false
	f.mu.Unlock()

	if !fsutil.IsDir(f.destination) {
		return "", errors.ErrDirectoryNotExist
	}

	f.setState(StateDownloading, "resolving "+f.namespace)
	artifact, err := f.index.Resolve(ctx, f.namespace, f.ext)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", f.namespace)
	}

	archivePath := filepath.Join(f.destination, artifact.Filename)
	f.setState(StateDownloading, artifact.URL.String())
	written, err := f.downloader.Stream(ctx, artifact.URL, archivePath, progress)
	if err != nil {
		return "", errors.Wrapf(err, "failed to download %s", artifact.Name)
	}
	logger.Debug("download finished", logger.Fields{"path": archivePath, "bytes": written})

	if f.target == platform.Darwin {
		err = f.installDiskImage(ctx, archivePath)
	} else {
		err = f.extract(ctx, archivePath)
	}
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	f.downloaded = true
	f.mu.Unlock()

	path := f.Path()
	if err := f.runHook(ctx, hooks.PostDownload, nil); err != nil {
		return "", err
	}
	f.setState(StateCompleted, path)
	return path, nil
}

// extract unpacks a zip or tar.bz2 build. The archive is kept when
// extraction fails.
func (f *Fetcher) extract(ctx context.Context, archivePath string) error {
	f.setState(StateExtracting, archivePath)
	if err := f.extractor.ExtractAll(ctx, archivePath, f.destination); err != nil {
		return errors.Wrapf(err, "failed to extract %s", archivePath)
	}
	return removeArchive(archivePath)
}

// installDiskImage copies the application bundle out of a dmg build.
func (f *Fetcher) installDiskImage(ctx context.Context, archivePath string) error {
	if !f.diskImage.Available() {
		if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
			logger.Warn("failed to remove disk image", logger.Fields{"path": archivePath, "error": err.Error()})
		}
		return errors.ErrMountUnavailable
	}

	mountpoint, err := os.MkdirTemp(f.destination, ".mount-")
	if err != nil {
		return errors.Wrap(err, "failed to create mount point")
	}
	// Remove, not RemoveAll: after a failed unmount the image is still attached here.
	defer func() { _ = os.Remove(mountpoint) }()

	f.setState(StateMounting, mountpoint)
	status, err := f.diskImage.Mount(ctx, archivePath, mountpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrMountFailed, err)
	}
	if status != 0 {
		return &errors.StatusError{Op: errors.ErrMountFailed, Status: status}
	}

	f.setState(StateCopying, diskimage.BundleName)
	copied, copyErr := copyBundle(mountpoint, diskimage.BundleName, f.destination)
	if copyErr == nil && !copied {
		logger.Warn("disk image does not contain "+diskimage.BundleName, logger.Fields{"image": archivePath})
	}

	f.setState(StateUnmounting, mountpoint)
	if err := f.unmount(ctx, mountpoint); err != nil || copyErr != nil {
		return errors.Join(copyErr, err)
	}

	return removeArchive(archivePath)
}

// unmount detaches the image even when ctx is already cancelled.
func (f *Fetcher) unmount(ctx context.Context, mountpoint string) error {
	status, err := f.diskImage.Unmount(context.WithoutCancel(ctx), mountpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnmountFailed, err)
	}
	if status != 0 {
		return &errors.StatusError{Op: errors.ErrUnmountFailed, Status: status}
	}
	return nil
}

func removeArchive(archivePath string) error {
	if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove %s", archivePath)
	}
	return nil
}

func (f *Fetcher) runHook(ctx context.Context, hookType hooks.HookType, cause error) error {
	if f.runner == nil || !f.runner.HasScript(hookType) {
		return nil
	}

	hc := hooks.HookContext{
		Executable:  f.Path(),
		Destination: f.destination,
		Platform:    string(f.target),
		Arch:        string(f.arch),
		Namespace:   f.namespace,
	}
	if cause != nil {
		hc.Error = cause.Error()
	}
	if info, err := buildinfo.Read(f.destination); err == nil {
		hc.Version = info.Version.Original()
	}
	return f.runner.Execute(ctx, hookType, hc)
}

func (f *Fetcher) setState(s State, msg string) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()

	logger.Debug("fetcher "+s.String(), logger.Fields{"msg": msg})
	if f.hooks.OnEvent != nil {
		f.hooks.OnEvent(Event{Phase: s.String(), Msg: msg})
	}
}
