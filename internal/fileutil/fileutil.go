// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Permissions used for everything the converter writes.
const (
	DirPermissions  = 0o750
	FilePermissions = 0o644
)

// ErrNotMarkdown indicates a path without a markdown extension.
var ErrNotMarkdown = errors.New("not a markdown file")

var markdownExtensions = []string{".md", ".markdown"}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "plain" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "C:\styles\site.css" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsMarkdown reports whether the path has a markdown extension, case-insensitively.
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range markdownExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

// HTMLPath swaps the markdown extension of path for ".html".
func HTMLPath(path string) (string, error) {
	if !IsMarkdown(path) {
		return "", fmt.Errorf("%w: %s", ErrNotMarkdown, path)
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".html", nil
}

// WriteFile writes content to path, creating missing parent directories.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), FilePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
