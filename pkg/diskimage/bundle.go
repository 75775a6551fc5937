package diskimage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glorpus-work/foxfetch/pkg/fsutil"
)

// BundleName is the application bundle shipped inside Firefox disk images.
const BundleName = "Firefox.app"

// CopyBundle copies the bundle named name from mountpoint into destDir,
// replacing any previous copy. It reports false when the image does not
// contain the bundle.
func CopyBundle(mountpoint, name, destDir string) (bool, error) {
	src := filepath.Join(mountpoint, name)
	if !fsutil.IsDir(src) {
		return false, nil
	}

	dst := filepath.Join(destDir, name)
	if err := os.RemoveAll(dst); err != nil {
		return false, fmt.Errorf("failed to remove previous bundle %s: %w", dst, err)
	}
	if err := fsutil.CopyTree(src, dst); err != nil {
		return false, fmt.Errorf("failed to copy bundle %s: %w", name, err)
	}
	return true, nil
}
