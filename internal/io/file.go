// Package ioutils provides file system utilities for the audiobook-downloader.
package ioutils

import (
	"os"
)

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755. If the directory already
// exists, no error is returned, which makes the per-item folder step
// idempotent across reruns.
//
// Example:
//
//	err := EnsureDir("/audiobooks/Story A")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FileExists reports whether a regular file exists at path.
//
// The pipeline uses this as its completion marker: an existing file at
// a computed target path means "already retrieved", regardless of its
// content. Directories do not count.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644 and truncated if it exists.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
