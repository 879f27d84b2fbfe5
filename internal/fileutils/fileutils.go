// Package fileutils validates and opens the files named on the command line.
package fileutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/sheet-ledger/internal/parsererror"
)

// NormalizePath converts Windows separators to forward slashes and cleans the result.
func NormalizePath(path string) string {
	p := strings.TrimSpace(strings.ReplaceAll(path, `\`, "/"))
	if p == "" {
		return ""
	}
	return filepath.Clean(p)
}

// ValidFile normalizes path and checks that it names an existing regular file.
// A missing or empty path is a *parsererror.NotFoundError.
func ValidFile(path string) (string, error) {
	p := NormalizePath(path)
	if p == "" {
		return "", &parsererror.NotFoundError{Kind: "file", Name: path, Err: errors.New("no path given")}
	}
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &parsererror.NotFoundError{Kind: "file", Name: p, Err: err}
		}
		return "", fmt.Errorf("failed to stat %s: %w", p, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a file", p)
	}
	return p, nil
}

// HasExtension reports whether path ends in one of exts, case-insensitively.
// Extensions include the leading dot.
func HasExtension(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// OpenFile opens a file for reading, returning a NotFoundError if it doesn't exist
func OpenFile(filePath string) (*os.File, error) {
	p, err := ValidFile(filePath)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// CreateFile creates or truncates a file for writing, creating parent directories
func CreateFile(filePath string) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return nil, err
	}
	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}
