// Package fileutil provides filesystem helpers for robust file operations.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrEmptyPath indicates an empty file path was provided.
var ErrEmptyPath = errors.New("path is empty")

// dirPermissions is used when WriteAtomic creates missing parent directories.
const dirPermissions = 0o750

// WriteAtomic writes data to path atomically with the provided permissions.
// Missing parent directories are created. Data goes to a temp file in the
// target directory, is fsynced, then renamed over path.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	closed := false
	defer func() {
		if !closed {
			_ = tmpFile.Close()
		}
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Chmod(perm); err != nil {
		return fmt.Errorf("setting temp file permissions: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	closed = true

	if err := os.Rename(tmpPath, path); err != nil { //nolint:gosec // G703: path comes from config, not user input
		return fmt.Errorf("renaming temp file: %w", err)
	}

	syncDir(dir)
	return nil
}

// MoveAside renames path to "<path>.<tag>.<unix-nanos>" and returns the new name.
// It is used to keep an unreadable file for inspection without blocking a fresh write.
func MoveAside(path, tag string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	target := fmt.Sprintf("%s.%s.%d", path, tag, time.Now().UTC().UnixNano())
	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("moving %s aside: %w", filepath.Base(path), err)
	}

	syncDir(filepath.Dir(path))
	return target, nil
}

// syncDir is a best effort directory fsync so renames survive a crash.
func syncDir(dir string) {
	if dirFile, err := os.Open(dir); err == nil { //nolint:gosec // G304: dir is derived from a config path
		_ = dirFile.Sync()
		_ = dirFile.Close()
	}
}
