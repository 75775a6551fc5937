// Package fsutil provides the file system helpers used while staging and
// unpacking builds: permission constants, copy and move helpers that keep
// modes and symlinks intact.
package fsutil

// File and directory permission constants.
const (
	FileModeDefault = 0o644 // -rw-r--r--
	FileModeSecure  = 0o640 // -rw-r-----

	DirModeDefault = 0o755 // drwxr-xr-x
)
