// Package archive unpacks downloaded build archives (zip, tar.bz2, tar.gz)
// and creates archives in the same formats.
package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/foxfetch/internal/logger"
	"github.com/glorpus-work/foxfetch/pkg/errors"
	"github.com/glorpus-work/foxfetch/pkg/fsutil"
	"github.com/mholt/archives"
)

// Manager handles archive extraction and creation operations.
type Manager struct{}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// ExtractAll extracts all files from an archive to the specified destination
// directory. The archive is read front to back once, so compressed tarballs
// are decompressed a single time regardless of how many entries they hold.
func (am *Manager) ExtractAll(ctx context.Context, archivePath, destDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive file: %w", err)
	}
	defer func() { _ = file.Close() }()

	logger.Debug("extracting archive", logger.Fields{"archive": archivePath, "dest": destDir})

	return am.extract(ctx, archivePath, file, destDir)
}

// extract identifies the format of stream by name and content and writes
// every entry below destDir. Zip archives need stream to be an
// io.ReaderAt and io.Seeker; tarballs only need an io.Reader.
func (am *Manager) extract(ctx context.Context, name string, stream io.Reader, destDir string) error {
	format, input, err := archives.Identify(ctx, name, stream)
	if err != nil {
		return fmt.Errorf("failed to identify archive format: %w", err)
	}
	extractor, ok := format.(archives.Extractor)
	if !ok {
		return fmt.Errorf("unsupported archive format: %s", filepath.Base(name))
	}

	if err := os.MkdirAll(destDir, fsutil.DirModeDefault); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	return extractor.Extract(ctx, input, func(ctx context.Context, f archives.FileInfo) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return am.extractEntry(destDir, f)
	})
}

// Create writes the contents of sourceDir into archivePath. The format is
// chosen from the file name: .zip, .tar.bz2 or .tar.gz.
func (am *Manager) Create(ctx context.Context, sourceDir, archivePath string) error {
	format, err := formatFor(archivePath)
	if err != nil {
		return err
	}

	absolutePath, err := filepath.Abs(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for source directory: %w", err)
	}

	archiveFiles, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		absolutePath + string(os.PathSeparator): "",
	})
	if err != nil {
		return fmt.Errorf("failed to read files from disk: %w", err)
	}

	file, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", archivePath, err)
	}
	defer func() {
		_ = file.Sync()
		_ = file.Close()
	}()

	if err := format.Archive(ctx, file, archiveFiles); err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	return nil
}

func formatFor(archivePath string) (archives.Archiver, error) {
	name := strings.ToLower(filepath.Base(archivePath))
	switch {
	case strings.HasSuffix(name, ".zip"):
		return archives.Zip{}, nil
	case strings.HasSuffix(name, ".tar.bz2"):
		return archives.CompressedArchive{Compression: archives.Bz2{}, Archival: archives.Tar{}}, nil
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return archives.CompressedArchive{Compression: archives.Gz{}, Archival: archives.Tar{}}, nil
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", name)
	}
}

// extractEntry writes a single archive entry below destDir. Entries whose
// name or link target would land outside destDir are rejected.
func (am *Manager) extractEntry(destDir string, f archives.FileInfo) error {
	if f.NameInArchive == "" {
		return nil
	}
	name := path.Clean(f.NameInArchive)
	if name == "." {
		return nil
	}
	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return errors.Wrapf(errors.ErrUnsafeArchivePath, "entry %s", f.NameInArchive)
	}

	targetPath := filepath.Join(destDir, rel)

	if f.IsDir() {
		return os.MkdirAll(targetPath, fsutil.DirModeDefault)
	}
	if f.Mode()&os.ModeSymlink != 0 {
		return am.writeSymlink(f, rel, targetPath)
	}
	if !f.Mode().IsRegular() {
		logger.Debug("skipping archive entry", logger.Fields{"entry": name, "mode": f.Mode().String()})
		return nil
	}
	return am.writeRegularFile(f, targetPath)
}

// writeSymlink creates a symlink at targetPath pointing where the archive
// entry points. The target must resolve inside the extraction root.
func (am *Manager) writeSymlink(f archives.FileInfo, rel, targetPath string) error {
	linkTarget := f.LinkTarget
	if linkTarget == "" {
		// zip stores the link target as the entry body
		src, err := f.Open()
		if err != nil {
			return fmt.Errorf("failed to read symlink %s: %w", rel, err)
		}
		targetBytes, err := io.ReadAll(src)
		_ = src.Close()
		if err != nil {
			return fmt.Errorf("failed to read symlink target %s: %w", rel, err)
		}
		linkTarget = string(targetBytes)
	}

	if !linkStaysInside(rel, linkTarget) {
		return errors.Wrapf(errors.ErrUnsafeArchivePath, "symlink %s -> %s", rel, linkTarget)
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), fsutil.DirModeDefault); err != nil {
		return fmt.Errorf("failed to create parent directory for symlink %s: %w", rel, err)
	}
	_ = os.Remove(targetPath)
	return os.Symlink(linkTarget, targetPath)
}

// linkStaysInside reports whether a link at rel pointing to target resolves
// within the extraction root.
func linkStaysInside(rel, target string) bool {
	target = filepath.FromSlash(target)
	if target == "" || filepath.IsAbs(target) || strings.HasPrefix(target, string(filepath.Separator)) {
		return false
	}
	return filepath.IsLocal(filepath.Join(filepath.Dir(rel), target))
}

// writeRegularFile writes a regular file from the archive entry to targetPath and preserves metadata.
func (am *Manager) writeRegularFile(f archives.FileInfo, targetPath string) error {
	srcFile, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", f.NameInArchive, err)
	}
	defer func() { _ = srcFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(targetPath), fsutil.DirModeDefault); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", f.NameInArchive, err)
	}

	perm := f.Mode().Perm()
	dstFile, err := fsutil.CreateFilePerm(targetPath, perm)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", targetPath, err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("failed to copy file %s: %w", f.NameInArchive, err)
	}
	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", targetPath, err)
	}

	if err := os.Chmod(targetPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions for %s: %w", targetPath, err)
	}
	if err := os.Chtimes(targetPath, f.ModTime(), f.ModTime()); err != nil {
		return fmt.Errorf("failed to set modification time for %s: %w", targetPath, err)
	}
	return nil
}
