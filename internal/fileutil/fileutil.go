// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath       = errors.New("path cannot be empty")
	ErrProgramDirUnset = errors.New("cannot determine program directory")
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "portfolio" -> false (name)
//   - "./portfolio.yaml" -> true (relative path)
//   - "/etc/portfolio.yaml" -> true (absolute)
//   - "C:\portfolio.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ProgramDir returns the directory holding the running program.
// It prefers the resolved executable path and falls back to argv0, cutting
// at whichever separator (/ or \) appears last. An argv0 without a separator
// resolves to the current directory (".").
func ProgramDir(executable func() (string, error), argv0 string) (string, error) {
	if executable != nil {
		if exe, err := executable(); err == nil && exe != "" {
			if resolved, err := filepath.EvalSymlinks(exe); err == nil {
				exe = resolved
			}
			return filepath.Dir(exe), nil
		}
	}

	if argv0 == "" {
		return "", ErrProgramDirUnset
	}

	idx := strings.LastIndexAny(argv0, "/\\")
	if idx == -1 {
		return ".", nil
	}
	if idx == 0 {
		return argv0[:1], nil
	}
	return argv0[:idx], nil
}

// WriteFileAtomic writes data to a temp file beside path and renames it into
// place, so readers see either the old file or the complete new one.
// An existing file at path is replaced.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}
